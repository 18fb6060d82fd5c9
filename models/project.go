package models

import (
	"strings"
	"time"
)

// Project represents a portfolio project with engagement counters.
type Project struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"type:varchar(100);not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	LongDescription string    `json:"long_description" gorm:"type:text"`
	ImageURL        string    `json:"image_url" gorm:"type:varchar(255);not null"`
	DemoURL         string    `json:"demo_url" gorm:"type:varchar(255)"`
	GithubURL       string    `json:"github_url" gorm:"type:varchar(255)"`
	CategoryID      *uint     `json:"category_id" gorm:"index"`
	Category        *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Tags            string    `json:"tags" gorm:"type:varchar(255)"`
	Views           int       `json:"views" gorm:"not null;default:0"`
	Likes           int       `json:"likes" gorm:"not null;default:0"`
	Featured        bool      `json:"featured" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Comments        []Comment `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// ProjectResponse is the flat JSON shape served by the API: the category is
// nested (or null), the delimited tags column becomes a list, and the number
// of comments is included.
type ProjectResponse struct {
	ID              uint              `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	LongDescription string            `json:"long_description"`
	Image           string            `json:"image"`
	DemoURL         string            `json:"demo_url"`
	GithubURL       string            `json:"github_url"`
	Category        *CategoryResponse `json:"category"`
	Tags            []string          `json:"tags"`
	Views           int               `json:"views"`
	Likes           int               `json:"likes"`
	Featured        bool              `json:"featured"`
	CommentsCount   int               `json:"comments_count"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

func (p Project) Response() ProjectResponse {
	var category *CategoryResponse
	if p.Category != nil {
		c := p.Category.Response()
		category = &c
	}

	return ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Image:           p.ImageURL,
		DemoURL:         p.DemoURL,
		GithubURL:       p.GithubURL,
		Category:        category,
		Tags:            SplitTags(p.Tags),
		Views:           p.Views,
		Likes:           p.Likes,
		Featured:        p.Featured,
		CommentsCount:   len(p.Comments),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// SplitTags turns the comma-delimited tags column into a list, dropping empty
// segments so "a,,b" and "" behave sanely.
func SplitTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
