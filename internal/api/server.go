// Package api exposes scenario generation and the saved library over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/chronos/internal/geo"
	"github.com/alexanderramin/chronos/internal/intelligence"
	"github.com/alexanderramin/chronos/internal/service"
	"github.com/gorilla/mux"
)

// SourceHeader reports which generator produced a scenario.
const SourceHeader = "X-Chronos-Source"

const maxBodyBytes = 4 << 20

// Server routes HTTP requests to the scenario services.
type Server struct {
	router    *mux.Router
	scenarios intelligence.ScenarioService
	library   service.ScenarioLibrary
	clusterer geo.Clusterer
	threshold float64
	logger    *slog.Logger
}

// NewServer builds the router. threshold is the clustering distance used when
// a request does not name one.
func NewServer(scenarios intelligence.ScenarioService, library service.ScenarioLibrary, threshold float64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if threshold <= 0 {
		threshold = geo.DefaultThreshold
	}
	s := &Server{
		router:    mux.NewRouter(),
		scenarios: scenarios,
		library:   library,
		clusterer: geo.NewClusterer(geo.DefaultProjector()),
		threshold: threshold,
		logger:    logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)

	r := s.router.PathPrefix("/scenarios").Subrouter()
	r.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	r.HandleFunc("/import", s.handleImport).Methods(http.MethodPost)
	r.HandleFunc("", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("", s.handleSave).Methods(http.MethodPost)
	r.HandleFunc("/{id}", s.handleGet).Methods(http.MethodGet)
	r.HandleFunc("/{id}", s.handleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/{id}/clusters", s.handleClusters).Methods(http.MethodGet)
	r.HandleFunc("/{id}/export", s.handleExport).Methods(http.MethodGet)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:        addr,
		Handler:     s.router,
		ReadTimeout: 15 * time.Second,
		// Remote generation can take minutes.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.DebugContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}
