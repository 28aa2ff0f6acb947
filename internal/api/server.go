// Package api exposes the companion's deck builder services over REST.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lightdarktcg/companion/internal/api/handlers"
	"github.com/lightdarktcg/companion/internal/api/websocket"
	"github.com/lightdarktcg/companion/internal/storage"
	"github.com/lightdarktcg/companion/internal/synergy"
)

// Server represents the REST API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	port       int

	// WebSocket hub for real-time events
	wsHub *websocket.Hub

	catalogs    handlers.CatalogSource
	recommender *synergy.Recommender
	db          *storage.DB
}

// Config holds configuration for the API server.
type Config struct {
	Port           int
	AllowedOrigins []string // CORS origins
	RateLimit      float64  // Requests per second per client (0 = unlimited)
	RateLimitBurst int      // Burst size per client
}

// DefaultConfig returns the default API server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		RateLimit:      10,
		RateLimitBurst: 30,
	}
}

// NewServer creates a new API server. db may be nil when deck sharing is
// disabled; the shared-deck routes are omitted in that case.
func NewServer(cfg *Config, catalogs handlers.CatalogSource, db *storage.DB) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	s := &Server{
		router:      chi.NewRouter(),
		port:        cfg.Port,
		wsHub:       websocket.NewHub(),
		catalogs:    catalogs,
		recommender: synergy.NewRecommender(),
		db:          db,
	}

	s.setupMiddleware(cfg)
	s.setupRoutes()

	return s
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware(cfg *Config) {
	// Request ID for tracing
	s.router.Use(middleware.RequestID)

	// Real IP detection
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(middleware.Logger)

	// Panic recovery
	s.router.Use(middleware.Recoverer)

	// Request timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// Per-client rate limiting
	if cfg.RateLimit > 0 {
		rl := newRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)
		s.router.Use(rl.middleware)
	}

	// CORS configuration
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = DefaultConfig().AllowedOrigins
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Edit-Key"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Content-Type enforcement for POST only (not GET/DELETE/OPTIONS)
	s.router.Use(s.jsonContentTypeMiddleware)
}

// jsonContentTypeMiddleware enforces application/json content-type for requests with bodies.
func (s *Server) jsonContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}

			contentType := r.Header.Get("Content-Type")
			if contentType == "" || (contentType != "application/json" && !strings.HasPrefix(contentType, "application/json;")) {
				http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the API server in a goroutine.
func (s *Server) Start() error {
	// Start WebSocket hub
	go s.wsHub.Run()

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("API server starting on port %d", s.port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("API server error: %v", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.wsHub.Stop()

	if s.httpServer == nil {
		return nil
	}

	log.Println("Shutting down API server...")
	return s.httpServer.Shutdown(ctx)
}

// Port returns the port the server is configured to listen on.
func (s *Server) Port() int {
	return s.port
}

// Router returns the server's HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// WebSocketHub returns the WebSocket hub for external integration, such as
// broadcasting catalog reload events from the file watcher.
func (s *Server) WebSocketHub() *websocket.Hub {
	return s.wsHub
}
