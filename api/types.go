package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danupratama/portfolio-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler       authHandler
	projectHandler    projectHandler
	categoryHandler   categoryHandler
	skillHandler      skillHandler
	experienceHandler experienceHandler
	articleHandler    articleHandler
	commentHandler    commentHandler
	contactHandler    contactHandler
	uploadHandler     uploadHandler
	statsHandler      statsHandler
}

const maxPerPage = 100

// pageParams holds validated pagination query parameters.
type pageParams struct {
	page    int
	perPage int
}

func parsePageParams(r *http.Request, defaultPerPage int) pageParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return pageParams{page: page, perPage: perPage}
}

// totalPages is ceil(total / perPage).
func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// parseIDParam reads a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
