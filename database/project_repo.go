package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter is the fixed set of optional list predicates. Each predicate
// composes with AND; values are always bound through parameterized
// placeholders, never interpolated.
type ProjectFilter struct {
	CategoryID *uint
	Search     string
	Featured   *bool
	Sort       string
	Page       int
	PerPage    int
}

// sortColumns maps the public sort keys to fixed ORDER BY clauses.
// Unrecognized keys fall back to newest-first.
var sortColumns = map[string]string{
	"created_at": "created_at DESC",
	"views":      "views DESC",
	"likes":      "likes DESC",
	"title":      "title ASC",
}

func byCategory(id *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if id == nil {
			return db
		}
		return db.Where("category_id = ?", *id)
	}
}

func bySearch(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := "%" + term + "%"
		return db.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
}

func byFeatured(featured *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if featured == nil {
			return db
		}
		return db.Where("featured = ?", *featured)
	}
}

// FindPage returns one page of projects matching the filter, plus the total
// number of matches before pagination.
func (r *ProjectRepo) FindPage(filter ProjectFilter) ([]*models.Project, int64, error) {
	query := r.db.Model(&models.Project{}).Scopes(
		byCategory(filter.CategoryID),
		bySearch(filter.Search),
		byFeatured(filter.Featured),
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy, ok := sortColumns[filter.Sort]
	if !ok {
		orderBy = sortColumns["created_at"]
	}

	var projects []*models.Project
	err := query.
		Preload("Category").
		Preload("Comments").
		Order(orderBy).
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&projects).Error
	return projects, total, err
}

// FindByID returns a project with its category and comments preloaded, or nil
// if no such project exists.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Category").Preload("Comments").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project and its comments in one transaction.
func (r *ProjectRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// IncrementViews bumps the view counter atomically in SQL so concurrent
// fetches never lose updates.
func (r *ProjectRepo) IncrementViews(id uint) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// IncrementLikes bumps the like counter atomically and returns the new count.
func (r *ProjectRepo) IncrementLikes(id uint) (int, error) {
	err := r.db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	if err != nil {
		return 0, err
	}

	var likes int
	err = r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Pluck("likes", &likes).Error
	return likes, err
}

// FindRecent returns the newest projects, capped at limit.
func (r *ProjectRepo) FindRecent(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").Preload("Comments").
		Order("created_at DESC").Limit(limit).Find(&projects).Error
	return projects, err
}

// FindPopular returns the most viewed projects, capped at limit.
func (r *ProjectRepo) FindPopular(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Preload("Category").Preload("Comments").
		Order("views DESC").Limit(limit).Find(&projects).Error
	return projects, err
}
