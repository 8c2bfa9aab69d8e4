// Package server wires the catalog handlers into a chi router and runs the
// HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/carpenike/bibleheadings/internal/handlers"
	"github.com/carpenike/bibleheadings/internal/middleware"
	"github.com/carpenike/bibleheadings/internal/models"
)

// Config holds server configuration.
type Config struct {
	Addr            string
	AllowAllOrigins bool
	APIRateLimit    int // requests per minute per IP, 0 disables
	TrustedProxies  []string
}

// Server serves the catalog page and the JSON API.
type Server struct {
	cfg        Config
	books      []models.Book
	templates  handlers.TemplateCache
	assets     handlers.Assets
	limiter    *middleware.RateLimiter
	router     chi.Router
	httpServer *http.Server
}

// New builds a server around an already constructed catalog. books is shared
// by every request and must not be modified afterwards.
func New(cfg Config, books []models.Book, templates handlers.TemplateCache, assets handlers.Assets) *Server {
	s := &Server{
		cfg:       cfg,
		books:     books,
		templates: templates,
		assets:    assets,
	}
	if cfg.APIRateLimit > 0 {
		s.limiter = middleware.NewRateLimiter(cfg.APIRateLimit, time.Minute, cfg.TrustedProxies...)
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)

	pages := &handlers.Pages{
		Books:     s.books,
		Templates: s.templates,
		Assets:    s.assets,
	}
	books := &handlers.Books{Books: s.books}

	r.Get("/", pages.Index)
	r.Get("/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		corsOpts := cors.Options{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}
		if s.cfg.AllowAllOrigins {
			corsOpts.AllowedOrigins = []string{"*"}
		}
		r.Use(cors.Handler(corsOpts))
		if s.limiter != nil {
			r.Use(s.limiter.Limit)
		}

		r.Get("/books", books.List)
	})

	return r
}

// Router returns the configured handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start listens on the configured address and blocks until the server stops.
// A clean Shutdown returns nil.
func (s *Server) Start() error {
	log.Printf("server: listening on %s", s.cfg.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: listen on %s: %w", s.cfg.Addr, err)
	}
	return nil
}

// Shutdown gracefully stops the listener and background workers.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}
