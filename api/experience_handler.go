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

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		serialized := make([]models.ExperienceResponse, 0, len(experiences))
		for _, experience := range experiences {
			serialized = append(serialized, experience.Response())
		}

		h.responder.WriteJSON(w, serialized)
	}
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req experienceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Company == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("company"))
			return
		}
		if req.StartDate == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("start_date"))
			return
		}

		experience := models.Experience{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Description: req.Description,
			Current:     req.Current,
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, experience.Response())
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseIDParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Experience deleted"})
	}
}
