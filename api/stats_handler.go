package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/models"
)

const dashboardSliceSize = 5

type statsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	statsRepo   *database.StatsRepo
	projectRepo *database.ProjectRepo
	commentRepo *database.CommentRepo
	contactRepo *database.ContactRepo
}

func newStatsHandler(
	statsRepo *database.StatsRepo,
	projectRepo *database.ProjectRepo,
	commentRepo *database.CommentRepo,
	contactRepo *database.ContactRepo,
) statsHandler {
	logger := log.With().Str("handlerName", "statsHandler").Logger()

	return statsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		statsRepo:   statsRepo,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		contactRepo: contactRepo,
	}
}

// getStats returns the public aggregate counters, computed from current table
// state on every request.
func (h statsHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		totals, err := h.statsRepo.Totals()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("compute", "stats", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"total_projects":  totals.Projects,
			"total_views":     totals.Views,
			"total_likes":     totals.Likes,
			"total_articles":  totals.Articles,
			"total_skills":    totals.Skills,
			"total_comments":  totals.Comments,
			"unread_messages": totals.UnreadMessages,
			"status":          "ok",
		})
	}
}

// getDashboard returns the admin overview: newest projects, comments awaiting
// moderation, unread messages, and the most viewed projects.
func (h statsHandler) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recentProjects, err := h.projectRepo.FindRecent(dashboardSliceSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent", "projects", err))
			return
		}

		recentComments, err := h.commentRepo.FindRecentUnapproved(dashboardSliceSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent", "comments", err))
			return
		}

		recentContacts, err := h.contactRepo.FindRecentUnread(dashboardSliceSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find recent", "contacts", err))
			return
		}

		popularProjects, err := h.projectRepo.FindPopular(dashboardSliceSize)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find popular", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"recent_projects":  serializeProjects(recentProjects),
			"recent_comments":  serializeComments(recentComments),
			"recent_contacts":  serializeContacts(recentContacts),
			"popular_projects": serializeProjects(popularProjects),
		})
	}
}

func serializeProjects(projects []*models.Project) []models.ProjectResponse {
	out := make([]models.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		out = append(out, project.Response())
	}
	return out
}

func serializeComments(comments []*models.Comment) []models.CommentResponse {
	out := make([]models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, comment.Response())
	}
	return out
}

func serializeContacts(contacts []*models.Contact) []models.ContactResponse {
	out := make([]models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, contact.Response())
	}
	return out
}
