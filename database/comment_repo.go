package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindApprovedByProject returns a project's approved comments, newest first.
// Unapproved comments are never listed publicly.
func (r *CommentRepo) FindApprovedByProject(projectID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Where("project_id = ? AND approved = ?", projectID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by ID, or nil if no such comment exists.
func (r *CommentRepo) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// Approve marks a comment as approved. Approving an already-approved comment
// is a no-op.
func (r *CommentRepo) Approve(id uint) error {
	return r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		UpdateColumn("approved", true).Error
}

// FindRecentUnapproved returns the newest comments awaiting moderation,
// capped at limit.
func (r *CommentRepo) FindRecentUnapproved(limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.
		Where("approved = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
