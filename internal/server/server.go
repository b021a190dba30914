// Package server exposes the simplex engine as a JSON HTTP API and records
// every solve in the solve log.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tableau/internal/config"
	"github.com/katalvlaran/tableau/internal/store"
)

// Server is the simplexd HTTP server.
type Server struct {
	store    store.Store
	cfg      *config.Config
	router   *chi.Mux
	registry *prometheus.Registry
	metrics  *metrics
	server   *http.Server
}

// New wires routes and middleware around st.
func New(st store.Store, cfg *config.Config) *Server {
	s := &Server{
		store:    st,
		cfg:      cfg,
		router:   chi.NewRouter(),
		registry: prometheus.NewRegistry(),
	}
	s.metrics = newMetrics(s.registry)
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/solves", s.handleListSolves)
		r.Get("/solves/{id}", s.handleGetSolve)
		r.Get("/examples", s.handleExamples)
	})
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address and blocks until the server stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("server listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
