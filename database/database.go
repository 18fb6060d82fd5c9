package database

import (
	"errors"

	"gorm.io/gorm"
)

type Database struct {
	userRepo       *UserRepo
	categoryRepo   *CategoryRepo
	projectRepo    *ProjectRepo
	skillRepo      *SkillRepo
	experienceRepo *ExperienceRepo
	articleRepo    *ArticleRepo
	commentRepo    *CommentRepo
	contactRepo    *ContactRepo
	statsRepo      *StatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:       NewUserRepo(db),
		categoryRepo:   NewCategoryRepo(db),
		projectRepo:    NewProjectRepo(db),
		skillRepo:      NewSkillRepo(db),
		experienceRepo: NewExperienceRepo(db),
		articleRepo:    NewArticleRepo(db),
		commentRepo:    NewCommentRepo(db),
		contactRepo:    NewContactRepo(db),
		statsRepo:      NewStatsRepo(db),
	}
}

// IsDuplicate reports whether err is a unique-constraint violation. Requires
// the gorm connection to be opened with TranslateError.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) StatsRepo() *StatsRepo {
	return d.statsRepo
}
