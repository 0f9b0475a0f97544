// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz                 liveness probe
//	POST   /v1/layouts              solve, store and return a layout
//	GET    /v1/layouts/{id}         fetch a stored layout
//	DELETE /v1/layouts/{id}         delete a stored layout
//	POST   /v1/render/{format}      render options (or a stored layout) to svg, png, pdf, json or txt
//	GET    /v1/stream               websocket: push size/count changes, receive layouts
//	GET    /v1/stats                solve, cache and request counters
//
// Errors are JSON objects {"code": "...", "message": "..."} with the HTTP
// status derived from the code.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tilegrid/pkg/observability"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
	"github.com/matzehuels/tilegrid/pkg/store"
)

// maxBodyBytes bounds request bodies; options are a few hundred bytes.
const maxBodyBytes = 1 << 20

// DefaultCleanupInterval is how often expired layouts are purged.
const DefaultCleanupInterval = time.Hour

// Server wires the pipeline runner and layout store to HTTP routes.
type Server struct {
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger

	// Stats, when set, is served at /v1/stats. It must also be registered
	// with observability to receive events.
	Stats *observability.Counters

	// CleanupInterval controls the store cleanup loop run by
	// ListenAndServe. Zero uses DefaultCleanupInterval.
	CleanupInterval time.Duration

	router chi.Router
}

// New creates a server. A nil store keeps layouts in memory.
func New(runner *pipeline.Runner, s store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if s == nil {
		s = store.NewMemoryStore(store.DefaultTTL)
	}
	srv := &Server{Runner: runner, Store: s, Logger: logger}
	srv.router = srv.routes()
	return srv
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Delete("/layouts/{id}", s.handleDeleteLayout)
		r.Post("/render/{format}", s.handleRender)
		r.Get("/stream", s.handleStream)
		r.Get("/stats", s.handleStats)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Logger.Info("shutting down")
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func (s *Server) cleanupLoop(ctx context.Context) {
	every := s.CleanupInterval
	if every <= 0 {
		every = DefaultCleanupInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Store.Cleanup(ctx); err != nil {
				s.Logger.Warn("store cleanup failed", "error", err)
			}
		}
	}
}
