package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns skills ordered by proficiency, optionally filtered to one
// category. An empty category means no filter.
func (r *SkillRepo) FindAll(category string) ([]*models.Skill, error) {
	query := r.db.Order("level DESC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var skills []*models.Skill
	err := query.Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by ID, or nil if no such skill exists.
func (r *SkillRepo) FindByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uint) error {
	return r.db.Delete(&models.Skill{}, id).Error
}
