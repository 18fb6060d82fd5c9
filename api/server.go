package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/danupratama/portfolio-backend/auth"
	"github.com/danupratama/portfolio-backend/config"
	"github.com/danupratama/portfolio-backend/database"
	"github.com/danupratama/portfolio-backend/services"
)

const defaultMaxUploadBytes = 16 * 1024 * 1024 // 16 MiB

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router, err := newRouter(database, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 60)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	// No insecure fallback: a missing signing secret is a startup error.
	jwtSecret := config.GetString(router.config, "JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	tokenTTL := time.Duration(config.GetInt(router.config, "TOKEN_TTL_HOURS", 24)) * time.Hour
	tokens := auth.NewTokenIssuer(jwtSecret, tokenTTL)

	notifier := services.NewContactNotifier(
		config.GetString(router.config, "RESEND_API_KEY", ""),
		config.GetString(router.config, "RESEND_FROM_EMAIL", ""),
		config.GetString(router.config, "CONTACT_NOTIFY_EMAIL", ""),
	)

	handlers := initializeHandlers(database, handlerOptions{
		tokens:    tokens,
		notifier:  notifier,
		uploadDir: config.GetString(router.config, "UPLOAD_DIR", "./uploads"),
		maxUpload: config.GetInt64(router.config, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	})

	authMiddleware := newAuthMiddleware(tokens, database.UserRepo())

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(MetricsMiddleware)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ALLOWED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: config.GetBool(router.config, "CORS_ALLOW_CREDENTIALS", true),
	}))

	staticDir := config.GetString(router.config, "STATIC_DIR", "./static")
	setupRoutes(chiRouter, handlers, authMiddleware, staticDir)

	return chiRouter, nil
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
