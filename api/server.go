package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/agency-site-backend/config"
	"github.com/rpupo63/agency-site-backend/database"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	provider    *database.Provider
	startupTime time.Time
}

func NewServer(cfg config.Config, provider *database.Provider) (Server, error) {
	startupTime := time.Now()

	if cfg.AdminAPIToken == "" {
		log.Warn().Msg("ADMIN_API_TOKEN is not set: GET /contact and GET /newsletter are served without authentication")
	}

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      newRouter(cfg, provider),
		ReadTimeout:  cfg.ReadTimeout(),  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeout(), // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeout(),  // Timeout for idle connections
	}

	return Server{server, provider, startupTime}, nil
}

func newRouter(cfg config.Config, provider databaseProvider) *chi.Mux {
	logger := log.With().Str("component", "dispatcher").Logger()
	d := newDispatcher(cfg.APIPrefix, newAdminGate(cfg.AdminAPIToken), logger)

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.StripSlashes)
	chiRouter.Use(corsMiddleware(cfg.CORSOrigins))
	chiRouter.Use(httpLoggingMiddleware(log.With().Str("component", "http").Logger()))
	chiRouter.NotFound(d.notFound)
	chiRouter.MethodNotAllowed(d.notFound)

	apiRouter := chiRouter
	if cfg.APIPrefix != "/" {
		apiRouter = chi.NewRouter()
		apiRouter.NotFound(d.notFound)
		apiRouter.MethodNotAllowed(d.notFound)
	}

	for _, rt := range routeTable(initializeHandlers(provider)) {
		apiRouter.Method(rt.method, rt.pattern, d.wrap(rt))
	}

	if apiRouter != chiRouter {
		chiRouter.Mount(cfg.APIPrefix, apiRouter)
	}
	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}

	if s.provider == nil {
		return
	}
	if err := s.provider.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database connection")
	}
}
