package database

import (
	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db}
}

// Totals are the portfolio-wide aggregate counters, computed from current
// table state at request time.
type Totals struct {
	Projects       int64 `json:"total_projects"`
	Views          int64 `json:"total_views"`
	Likes          int64 `json:"total_likes"`
	Articles       int64 `json:"total_articles"`
	Skills         int64 `json:"total_skills"`
	Comments       int64 `json:"total_comments"`
	UnreadMessages int64 `json:"unread_messages"`
}

func (r *StatsRepo) Totals() (Totals, error) {
	var totals Totals

	if err := r.db.Model(&models.Project{}).Count(&totals.Projects).Error; err != nil {
		return totals, err
	}

	type sums struct {
		Views int64
		Likes int64
	}
	var s sums
	err := r.db.Model(&models.Project{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(likes), 0) AS likes").
		Scan(&s).Error
	if err != nil {
		return totals, err
	}
	totals.Views = s.Views
	totals.Likes = s.Likes

	if err := r.db.Model(&models.Article{}).Where("published = ?", true).Count(&totals.Articles).Error; err != nil {
		return totals, err
	}
	if err := r.db.Model(&models.Skill{}).Count(&totals.Skills).Error; err != nil {
		return totals, err
	}
	if err := r.db.Model(&models.Comment{}).Where("approved = ?", true).Count(&totals.Comments).Error; err != nil {
		return totals, err
	}
	if err := r.db.Model(&models.Contact{}).Where("read = ?", false).Count(&totals.UnreadMessages).Error; err != nil {
		return totals, err
	}

	return totals, nil
}
