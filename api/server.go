package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ahqjohn/portfolio-backend/auth"
	"github.com/ahqjohn/portfolio-backend/config"
	"github.com/ahqjohn/portfolio-backend/database"
	"github.com/ahqjohn/portfolio-backend/localstore"
	"github.com/ahqjohn/portfolio-backend/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// Deps carries everything the route handlers need, wired once at startup.
type Deps struct {
	Config     config.App
	Database   database.Database
	MediaStore MediaStore
	LocalStore *localstore.Store
	Mailer     services.Mailer
}

func NewServer(env map[string]string, deps Deps) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", deps.Config.Port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(deps, withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(env, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(env, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(env, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

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
	startupTime time.Time
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Deps, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := deps.Config.AcceptedOrigins
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{deps.Config.SiteOrigin}
	}

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handlers := initializeHandlers(deps)

	tokens := auth.NewTokenIssuer(deps.Config.JWTSecret)
	resolver := auth.NewResolver(deps.Config, tokens, deps.Database.SessionRepo(), deps.Database.UserRepo())
	authMiddleware := newAuthMiddleware(resolver)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
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
