package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/errs"
	"github.com/danupratama/portfolio-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectRequest carries create/update payloads. Pointer fields distinguish
// "absent" from "zero" so updates can merge partially.
type projectRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	LongDescription *string `json:"long_description"`
	Image           *string `json:"image"`
	DemoURL         *string `json:"demo_url"`
	GithubURL       *string `json:"github_url"`
	CategoryID      *uint   `json:"category_id"`
	Tags            *string `json:"tags"`
	Featured        *bool   `json:"featured"`
}

// getAllProjects returns one page of projects matching the optional category,
// search, and featured filters.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r, 10)
		query := r.URL.Query()

		filter := database.ProjectFilter{
			Search:  query.Get("search"),
			Sort:    query.Get("sort"),
			Page:    params.page,
			PerPage: params.perPage,
		}

		if raw := query.Get("category"); raw != "" {
			categoryID, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("category", "must be a category id"))
				return
			}
			id := uint(categoryID)
			filter.CategoryID = &id
		}

		if raw := query.Get("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("featured", "must be a boolean"))
				return
			}
			filter.Featured = &featured
		}

		projects, total, err := h.projectRepo.FindPage(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		serialized := make([]models.ProjectResponse, 0, len(projects))
		for _, project := range projects {
			serialized = append(serialized, project.Response())
		}

		pages := totalPages(total, params.perPage)
		h.responder.WriteJSON(w, map[string]any{
			"projects":     serialized,
			"total":        total,
			"pages":        pages,
			"current_page": params.page,
			"has_next":     params.page < pages,
			"has_prev":     params.page > 1,
		})
	}
}

// getProject returns one project. Fetching a project counts as a view, so the
// handler atomically increments the counter before reading. Not idempotent.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// No-op when the project doesn't exist; absence is reported below.
		if err := h.projectRepo.IncrementViews(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update views for", "project", err))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project.Response())
	}
}

// createProject creates a new project. Title, description, and image are
// required; everything else defaults.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil || *req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Description == nil || *req.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}
		if req.Image == nil || *req.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		project := models.Project{
			Title:       *req.Title,
			Description: *req.Description,
			ImageURL:    *req.Image,
			CategoryID:  req.CategoryID,
		}
		if req.LongDescription != nil {
			project.LongDescription = *req.LongDescription
		}
		if req.DemoURL != nil {
			project.DemoURL = *req.DemoURL
		}
		if req.GithubURL != nil {
			project.GithubURL = *req.GithubURL
		}
		if req.Tags != nil {
			project.Tags = *req.Tags
		}
		if req.Featured != nil {
			project.Featured = *req.Featured
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		// Reload so the response carries the nested category
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, created.Response())
	}
}

// updateProject applies a partial update: each absent field keeps its current
// value.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title != nil {
			project.Title = *req.Title
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.LongDescription != nil {
			project.LongDescription = *req.LongDescription
		}
		if req.Image != nil {
			project.ImageURL = *req.Image
		}
		if req.DemoURL != nil {
			project.DemoURL = *req.DemoURL
		}
		if req.GithubURL != nil {
			project.GithubURL = *req.GithubURL
		}
		if req.CategoryID != nil {
			project.CategoryID = req.CategoryID
		}
		if req.Tags != nil {
			project.Tags = *req.Tags
		}
		if req.Featured != nil {
			project.Featured = *req.Featured
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated.Response())
	}
}

// deleteProject removes a project together with all of its comments.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// likeProject bumps the like counter and returns only the new count.
func (h projectHandler) likeProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		likes, err := h.projectRepo.IncrementLikes(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update likes for", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int{"likes": likes})
	}
}
