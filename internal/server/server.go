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

	"github.com/rishi-212005/portfolio-server/internal/auth"
	"github.com/rishi-212005/portfolio-server/internal/chat"
	"github.com/rishi-212005/portfolio-server/internal/db"
	"github.com/rishi-212005/portfolio-server/internal/editmode"
	"github.com/rishi-212005/portfolio-server/internal/inbox"
	"github.com/rishi-212005/portfolio-server/internal/sections"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	AllowAll       bool // allow all CORS origins (dev mode)
}

// Deps are the feature components the server exposes over HTTP.
type Deps struct {
	Gate     *auth.Gate
	Session  *editmode.Session
	Fields   *editmode.Registry
	Sections *sections.Registry
	Inbox    *inbox.Store
	Engine   chat.Engine
}

// Server is the portfolio API server.
type Server struct {
	cfg        Config
	db         *db.DB
	deps       Deps
	router     chi.Router
	httpServer *http.Server
}

// New creates a server and mounts every feature's routes.
func New(cfg Config, database *db.DB, deps Deps) *Server {
	s := &Server{
		cfg:  cfg,
		db:   database,
		deps: deps,
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
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll || len(corsOpts.AllowedOrigins) == 0 {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.deps.Gate != nil {
		auth.RegisterRoutes(r, s.deps.Gate)
	}
	if s.deps.Session != nil && s.deps.Fields != nil {
		editmode.RegisterRoutes(r, s.deps.Session, s.deps.Fields)
	}
	if s.deps.Sections != nil && s.deps.Session != nil {
		sections.RegisterRoutes(r, s.deps.Sections, s.deps.Session)
	}
	if s.deps.Inbox != nil && s.deps.Gate != nil {
		inbox.RegisterRoutes(r, s.deps.Inbox, s.deps.Gate)
	}
	if s.deps.Engine != nil {
		chat.RegisterRoutes(r, s.deps.Engine)
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
