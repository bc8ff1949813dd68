// Package api exposes the todo and label services as a REST API
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thenoetrevino/listo/internal/database"
	labelsvc "github.com/thenoetrevino/listo/internal/services/label"
	todosvc "github.com/thenoetrevino/listo/internal/services/todo"
)

var (
	errMalformedJSON  = errors.New("malformed JSON body")
	errInvalidIDParam = errors.New("id must be an integer")
)

// Server serves the REST API over the domain services
type Server struct {
	addr    string
	router  chi.Router
	todos   todosvc.Service
	labels  labelsvc.Service
	metrics *Metrics
}

// Options configures optional server behavior
type Options struct {
	// AllowedOrigins enables CORS for the listed browser origins.
	// "*" allows any origin.
	AllowedOrigins []string
}

// NewServer wires the repositories into services and builds the router
func NewServer(addr string, repo *database.Repository, opts Options) *Server {
	s := &Server{
		addr:    addr,
		todos:   todosvc.NewService(repo.TodoRepo, repo.LabelRepo),
		labels:  labelsvc.NewService(repo.LabelRepo),
		metrics: NewMetrics(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.metrics))
	if len(opts.AllowedOrigins) > 0 {
		r.Use(newCORSMiddleware(opts.AllowedOrigins).Handler)
	}

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", s.listTodos)
		r.Post("/", s.createTodo)
		r.Get("/{id}", s.getTodo)
		r.Put("/{id}", s.updateTodo)
		r.Delete("/{id}", s.deleteTodo)
	})

	r.Route("/labels", func(r chi.Router) {
		r.Get("/", s.listLabels)
		r.Post("/", s.createLabel)
		r.Delete("/{id}", s.deleteLabel)
	})

	r.Get("/healthz", s.healthz)
	r.Get("/metrics", s.metricsHandler)

	s.router = r
	return s
}

// Handler returns the HTTP handler, usable directly in tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("listo api listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("listo api shut down")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
