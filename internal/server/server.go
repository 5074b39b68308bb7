// Package server exposes the ingestion and retrieval pipeline over HTTP.
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

	"github.com/synapse-hq/synapse/internal/ingest"
	"github.com/synapse-hq/synapse/internal/registry"
	"github.com/synapse-hq/synapse/internal/search"
	"github.com/synapse-hq/synapse/internal/vectorstore"
)

// Config holds server configuration.
type Config struct {
	Port             int
	DataDir          string  // directory holding the vector store snapshot
	AllowAll         bool    // allow all CORS origins (dev mode)
	DefaultThreshold float64 // applied when a search omits threshold
	DefaultCount     int     // applied when a search omits limit
	MaxUploadBytes   int64   // multipart upload cap
}

// Server wires the pipeline components behind a chi router.
type Server struct {
	cfg        Config
	ingestor   *ingest.Ingestor
	planner    *search.Planner
	store      vectorstore.Store
	registry   *registry.Registry
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, ingestor *ingest.Ingestor, planner *search.Planner, store vectorstore.Store, reg *registry.Registry) *Server {
	s := &Server{
		cfg:      cfg,
		ingestor: ingestor,
		planner:  planner,
		store:    store,
		registry: reg,
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/upload", s.handleUpload)
		r.Get("/topics", s.handleTopics)
		r.Get("/projects", s.handleProjects)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

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

	log.Printf("synapse server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
