package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hongminglow/movies-be/internal/apperr"
	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/config"
	"github.com/hongminglow/movies-be/internal/http/handlers"
	"github.com/hongminglow/movies-be/internal/http/respond"
	"github.com/hongminglow/movies-be/internal/middleware"
	"github.com/hongminglow/movies-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner   *http.Server
	limiter *middleware.RateLimiter
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, tokens *auth.TokenManager, logger *slog.Logger) *Server {
	limiter := middleware.NewRateLimiter(cfg.LoginRateLimitRPS, cfg.LoginRateLimitBurst)
	service := auth.NewService(store, auth.NewHasher(cfg.BcryptCost), tokens, logger)

	router := NewRouter(cfg, tokens, limiter, logger,
		handlers.NewStatusHandler(time.Now()),
		handlers.NewAuthHandler(service, cfg.AllowAdminRegistration),
		handlers.NewMovieHandler(store),
		handlers.NewDirectorHandler(store),
	)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer, limiter: limiter}
}

// RouteSet is implemented by every handler group.
type RouteSet interface {
	Routes() []handlers.Route
}

// NewRouter mounts every route behind the access-control middleware for its policy.
func NewRouter(cfg config.Config, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter, logger *slog.Logger, sets ...RouteSet) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	for _, set := range sets {
		for _, route := range set.Routes() {
			chain := []func(http.Handler) http.Handler{}
			if route.RateLimited && limiter != nil {
				chain = append(chain, limiter.Middleware)
			}
			chain = append(chain, middleware.Authorize(verifier, route.Policy))
			r.With(chain...).Method(route.Method, route.Pattern, route.Handler)
		}
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, apperr.RouteNotFound())
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, req, apperr.MethodNotAllowed())
	})
	return r
}

// Start begins serving HTTP traffic. The rate limiter's janitor stops with ctx.
func (s *Server) Start(ctx context.Context) error {
	go s.limiter.Run(ctx)
	return s.inner.ListenAndServe()
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.inner.Addr
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
