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

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		serialized := make([]models.CategoryResponse, 0, len(categories))
		for _, category := range categories {
			serialized = append(serialized, category.Response())
		}

		h.responder.WriteJSON(w, serialized)
	}
}

type categoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		existing, err := h.categoryRepo.FindByName(req.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("category already exists"))
			return
		}

		category := models.Category{Name: req.Name, Icon: req.Icon}
		if err := h.categoryRepo.Add(&category); err != nil {
			if database.IsDuplicate(err) {
				h.responder.WriteError(w, errs.NewConflictError("category already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, category.Response())
	}
}
