package models

import "time"

// Article is a blog post addressed by its unique slug.
type Article struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"type:varchar(200);not null"`
	Slug       string    `json:"slug" gorm:"type:varchar(200);uniqueIndex;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Excerpt    string    `json:"excerpt" gorm:"type:text"`
	CoverImage string    `json:"cover_image" gorm:"type:varchar(255)"`
	Tags       string    `json:"tags" gorm:"type:varchar(255)"`
	Views      int       `json:"views" gorm:"not null;default:0"`
	Published  bool      `json:"published" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ArticleResponse struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Views      int      `json:"views"`
	Published  bool     `json:"published"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func (a Article) Response() ArticleResponse {
	return ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Content:    a.Content,
		Excerpt:    a.Excerpt,
		CoverImage: a.CoverImage,
		Tags:       SplitTags(a.Tags),
		Views:      a.Views,
		Published:  a.Published,
		CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
