package api

import (
	"github.com/danupratama/portfolio-backend/auth"
	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/services"
)

// handlerOptions carries the non-database collaborators handlers need.
type handlerOptions struct {
	tokens    auth.TokenIssuer
	notifier  *services.ContactNotifier
	uploadDir string
	maxUpload int64
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, opts handlerOptions) *routeHandlers {
	return &routeHandlers{
		authHandler:       newAuthHandler(database.UserRepo(), opts.tokens),
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		categoryHandler:   newCategoryHandler(database.CategoryRepo()),
		skillHandler:      newSkillHandler(database.SkillRepo()),
		experienceHandler: newExperienceHandler(database.ExperienceRepo()),
		articleHandler:    newArticleHandler(database.ArticleRepo()),
		commentHandler:    newCommentHandler(database.CommentRepo(), database.ProjectRepo()),
		contactHandler:    newContactHandler(database.ContactRepo(), opts.notifier),
		uploadHandler:     newUploadHandler(opts.uploadDir, opts.maxUpload),
		statsHandler:      newStatsHandler(database.StatsRepo(), database.ProjectRepo(), database.CommentRepo(), database.ContactRepo()),
	}
}
