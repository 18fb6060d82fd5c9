package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/danupratama/portfolio-backend/models"
)

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

// FindPage returns one page of articles, newest first, plus the total count.
// When publishedOnly is set, drafts are excluded.
func (r *ArticleRepo) FindPage(publishedOnly bool, page, perPage int) ([]*models.Article, int64, error) {
	query := r.db.Model(&models.Article{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []*models.Article
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&articles).Error
	return articles, total, err
}

// FindBySlug returns an article by its unique slug, or nil if absent.
func (r *ArticleRepo) FindBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// SlugExists reports whether an article already uses the given slug.
func (r *ArticleRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new article into the database
func (r *ArticleRepo) Add(article *models.Article) error {
	return r.db.Create(article).Error
}

// IncrementViews bumps the view counter atomically in SQL so concurrent
// fetches never lose updates.
func (r *ArticleRepo) IncrementViews(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
