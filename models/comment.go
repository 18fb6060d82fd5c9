package models

import "time"

// Comment is visitor feedback on a project. New comments always start
// unapproved and stay invisible until an admin approves them.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(120);not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null;default:5"`
	Approved  bool      `json:"approved" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse is the public shape: the commenter's email stays private.
type CommentResponse struct {
	ID        uint   `json:"id"`
	ProjectID uint   `json:"project_id"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

func (c Comment) Response() CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ProjectID: c.ProjectID,
		Name:      c.Name,
		Message:   c.Message,
		Rating:    c.Rating,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
