package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/errs"
	"github.com/danupratama/portfolio-backend/models"
)

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo *database.ArticleRepo
}

func newArticleHandler(articleRepo *database.ArticleRepo) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
	}
}

// getAllArticles returns one page of articles, newest first. Drafts are
// hidden unless published=false is requested.
func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := parsePageParams(r, 6)

		publishedOnly := true
		if raw := r.URL.Query().Get("published"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("published", "must be a boolean"))
				return
			}
			publishedOnly = parsed
		}

		articles, total, err := h.articleRepo.FindPage(publishedOnly, params.page, params.perPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "articles", err))
			return
		}

		serialized := make([]models.ArticleResponse, 0, len(articles))
		for _, article := range articles {
			serialized = append(serialized, article.Response())
		}

		pages := totalPages(total, params.perPage)
		h.responder.WriteJSON(w, map[string]any{
			"articles":     serialized,
			"total":        total,
			"pages":        pages,
			"current_page": params.page,
			"has_next":     params.page < pages,
			"has_prev":     params.page > 1,
		})
	}
}

// getArticle looks an article up by slug. Fetching counts as a view; the
// counter is incremented atomically, so the read is deliberately not
// idempotent.
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articleSlug := chi.URLParam(r, "slug")
		if articleSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		article, err := h.articleRepo.FindBySlug(articleSlug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("article not found"))
			return
		}

		if err := h.articleRepo.IncrementViews(article.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update views for", "article", err))
			return
		}
		article.Views++

		h.responder.WriteJSON(w, article.Response())
	}
}

type articleRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"cover_image"`
	Tags       string `json:"tags"`
	Published  bool   `json:"published"`
}

// createArticle derives the slug from the title and rejects collisions with
// 409 rather than silently disambiguating.
func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req articleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		articleSlug := slug.Make(req.Title)
		if articleSlug == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "must contain at least one alphanumeric character"))
			return
		}

		exists, err := h.articleRepo.SlugExists(articleSlug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewConflictError("an article with this slug already exists"))
			return
		}

		article := models.Article{
			Title:      req.Title,
			Slug:       articleSlug,
			Content:    req.Content,
			Excerpt:    req.Excerpt,
			CoverImage: req.CoverImage,
			Tags:       req.Tags,
			Published:  req.Published,
		}

		if err := h.articleRepo.Add(&article); err != nil {
			if database.IsDuplicate(err) {
				h.responder.WriteError(w, errs.NewConflictError("an article with this slug already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "article", err))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, article.Response())
	}
}
