package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experiences, most recent first.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Order("start_date DESC").Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience by ID, or nil if no such entry exists.
func (r *ExperienceRepo) FindByID(id uint) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Delete removes an experience from the database by id
func (r *ExperienceRepo) Delete(id uint) error {
	return r.db.Delete(&models.Experience{}, id).Error
}
