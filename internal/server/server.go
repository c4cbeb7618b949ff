// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the query engine, the health score and maintenance
// lookups over HTTP. Requests are form-encoded POSTs; responses are JSON.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pdiddy/autoaid/internal/maintenance"
	"github.com/pdiddy/autoaid/pkg/types"
)

// Defaults applied by New when the config leaves a field zero.
const (
	DefaultAddr            = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxUploadBytes  = 10 << 20
)

// Catalog answers the dataset queries.
type Catalog interface {
	FilterVehicles(keyword, priceText string) ([]types.VehicleRecord, error)
	FilterProblemsByKeyword(keyword string) ([]types.ProblemSolution, error)
	FilterProblemsByDealer(dealer string) ([]types.ProblemRecord, error)
	FilterParts(keyword string) ([]types.PartRecord, error)
	SuggestSolutions(keyword string) ([]map[string]string, error)
}

// Server holds the HTTP boundary's dependencies.
type Server struct {
	catalog Catalog
	store   maintenance.Store
	cfg     types.ServerConfig
	log     zerolog.Logger
}

// New builds a Server. store may be nil, in which case maintenance lookups
// answer 503.
func New(catalog Catalog, store maintenance.Store, cfg types.ServerConfig, log zerolog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Server{catalog: catalog, store: store, cfg: cfg, log: log}
}

// Router returns the route table with middleware installed.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/health", s.health)

	r.Post("/search", s.searchVehicles)
	r.Post("/search-problems", s.searchProblems)
	r.Post("/filter-by-dealer", s.filterByDealer)
	r.Post("/suggest_solutions", s.suggestSolutions)
	r.Post("/filterParts", s.filterParts)
	r.Post("/carscorefunc", s.carScore)
	r.Post("/maintenancelog", s.maintenanceLog)

	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("request_id", chimiddleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
