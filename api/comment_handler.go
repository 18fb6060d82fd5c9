package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/errs"
	"github.com/danupratama/portfolio-backend/models"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.CommentRepo
	projectRepo *database.ProjectRepo
}

func newCommentHandler(commentRepo *database.CommentRepo, projectRepo *database.ProjectRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
	}
}

// getProjectComments lists a project's approved comments, newest first.
func (h commentHandler) getProjectComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindApprovedByProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		serialized := make([]models.CommentResponse, 0, len(comments))
		for _, comment := range comments {
			serialized = append(serialized, comment.Response())
		}

		h.responder.WriteJSON(w, serialized)
	}
}

type commentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  *int   `json:"rating"`
}

// createComment submits a comment for moderation. Comments are never
// auto-approved, regardless of who submits them.
func (h commentHandler) createComment() http.HandlerFunc {
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

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		rating := 5
		if req.Rating != nil {
			rating = *req.Rating
		}

		comment := models.Comment{
			ProjectID: projectID,
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Rating:    rating,
			Approved:  false,
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{
			"message": "Comment submitted for approval",
		})
	}
}

// approveComment is idempotent: approving an already-approved comment
// succeeds without change.
func (h commentHandler) approveComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := parseIDParam(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("comment not found"))
			return
		}

		if err := h.commentRepo.Approve(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("approve", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Comment approved"})
	}
}
