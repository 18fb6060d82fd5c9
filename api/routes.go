package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires every route. Admin-only routes sit in the authenticated
// group; everything else is public.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, staticDir string) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
			NewResponder(log.Logger).WriteJSON(w, map[string]string{"status": "ok"})
		})

		r.Post("/api/auth/register", handlers.authHandler.register())
		r.Post("/api/auth/login", handlers.authHandler.login())

		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())
		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/api/projects/{projectID}/like", handlers.projectHandler.likeProject())

		r.Get("/api/projects/{projectID}/comments", handlers.commentHandler.getProjectComments())
		r.Post("/api/projects/{projectID}/comments", handlers.commentHandler.createComment())

		r.Get("/api/categories", handlers.categoryHandler.getAllCategories())
		r.Post("/api/categories", handlers.categoryHandler.createCategory())

		r.Get("/api/skills", handlers.skillHandler.getAllSkills())
		r.Post("/api/skills", handlers.skillHandler.createSkill())
		r.Delete("/api/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/api/experiences", handlers.experienceHandler.getAllExperiences())
		r.Post("/api/experiences", handlers.experienceHandler.createExperience())
		r.Delete("/api/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

		r.Get("/api/articles", handlers.articleHandler.getAllArticles())
		r.Get("/api/articles/{slug}", handlers.articleHandler.getArticle())
		r.Post("/api/articles", handlers.articleHandler.createArticle())

		r.Post("/api/contact", handlers.contactHandler.submitContact())

		r.Post("/api/upload", handlers.uploadHandler.upload())
		r.Get("/uploads/{filename}", handlers.uploadHandler.serveUpload())

		r.Get("/api/stats", handlers.statsHandler.getStats())

		r.Handle("/metrics", promhttp.Handler())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/auth/me", handlers.authHandler.me())
		r.Put("/api/comments/{commentID}/approve", handlers.commentHandler.approveComment())
		r.Get("/api/contacts", handlers.contactHandler.getAllContacts())
		r.Put("/api/contacts/{contactID}/read", handlers.contactHandler.markContactRead())
		r.Get("/api/dashboard", handlers.statsHandler.getDashboard())
	})

	// SPA fallback for everything the API doesn't claim
	r.NotFound(spaHandler(staticDir, NewResponder(log.Logger)))
}
