package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ekozhina/bridgeway/internal/forms"
	"github.com/ekozhina/bridgeway/internal/news"
	"github.com/ekozhina/bridgeway/internal/watch"
)

// Config holds server configuration.
type Config struct {
	Port    int
	SiteDir string // directory containing the built site
	// AllowAll allows all CORS origins (dev mode).
	AllowAll bool
}

// Server serves the built site and its JSON API.
type Server struct {
	cfg        Config
	viewer     *news.Viewer
	formsStore *forms.Store
	forwarder  *forms.Forwarder
	hub        *watch.Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies. hub may be nil when live
// reload is disabled.
func New(cfg Config, viewer *news.Viewer, formsStore *forms.Store, forwarder *forms.Forwarder, hub *watch.Hub) *Server {
	s := &Server{
		cfg:        cfg,
		viewer:     viewer,
		formsStore: formsStore,
		forwarder:  forwarder,
		hub:        hub,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes are registered by feature packages.
	news.RegisterRoutes(r, s.viewer)
	forms.RegisterRoutes(r, s.formsStore, s.forwarder)

	if s.hub != nil {
		r.Get("/ws/reload", s.hub.Handler())
	}

	// Static site (must come after API routes).
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.SiteDir)))

	return r
}

// Router returns the chi router, mostly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("bridgeway listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
