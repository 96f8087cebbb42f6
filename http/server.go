// Package http provides the inbound HTTP surface: the export endpoint, the
// chat endpoint, and a health check.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bhilliardga/canvex"
)

// Server routes export and chat requests to the domain services.
type Server struct {
	router *chi.Mux

	exports canvex.ExportService
	asker   canvex.Asker

	logger        *slog.Logger
	allowedOrigin string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithAllowedOrigin sets the CORS allowed origin. Defaults to "*".
func WithAllowedOrigin(origin string) Option {
	return func(s *Server) {
		if origin != "" {
			s.allowedOrigin = origin
		}
	}
}

// NewServer creates the HTTP server. asker may be nil when the chat
// subsystem is not configured; the chat endpoint then reports unavailable.
func NewServer(exports canvex.ExportService, asker canvex.Asker, opts ...Option) *Server {
	s := &Server{
		exports:       exports,
		asker:         asker,
		logger:        slog.Default(),
		allowedOrigin: "*",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.allowedOrigin},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/export", s.handleExport)
	r.Post("/chat", s.handleChat)

	s.router = r
}

// requestLogger logs one line per request with status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(begin),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
