// Package api provides the HTTP API server and handlers for the JournalScope service.
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/journalscope/journalscope-server/internal/config"
	"github.com/journalscope/journalscope-server/internal/logger"
	"github.com/journalscope/journalscope-server/internal/ratelimit"
	"github.com/journalscope/journalscope-server/internal/resolver"
	"github.com/journalscope/journalscope-server/internal/store"
)

// APIVersion is reported in the OpenAPI document.
const APIVersion = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store    *store.Store
	resolver *resolver.Resolver
	router   *chi.Mux
	api      huma.API
	limiter  *ratelimit.KeyedRateLimiter
	logger   *logger.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// The store may be nil (e.g. in tests); the journal lookup endpoint then
// reports the registry as unavailable.
func NewServer(cfg *config.ServerConfig, st *store.Store, res *resolver.Resolver, log *logger.Logger) *Server {
	s := &Server{
		store:    st,
		resolver: res,
		router:   chi.NewRouter(),
		limiter:  ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
		logger:   log,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("JournalScope API", APIVersion)
	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerStatusRoutes()
	s.registerResolveRoutes()
	s.registerJournalRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases server-owned resources.
func (s *Server) Close() {
	s.limiter.Stop()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(RateLimitMiddleware(s.limiter, s.logger))
}
