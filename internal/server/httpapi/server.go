// Package httpapi exposes the Storefront HTTP API: registration, login,
// session-cookie authentication, and admin user maintenance. All failures
// raised by handlers and middleware funnel into a single normalization
// stage that decides what the caller sees.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avolkov/storefront/internal/logging"
	"github.com/avolkov/storefront/internal/server/config"
	"github.com/avolkov/storefront/internal/server/services"
)

type Server struct {
	address    string
	users      *services.UserService
	logger     logging.Logger
	jwtSecret  []byte
	tokenTTL   time.Duration
	production bool
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService) *Server {
	return &Server{
		address:    cfg.EndpointAddr,
		users:      us,
		logger:     l.With("module", "httpapi"),
		jwtSecret:  []byte(cfg.SecretKey),
		tokenTTL:   cfg.TokenTTL,
		production: cfg.IsProduction(),
	}
}

// Router builds the route table. Middleware is composed explicitly per
// route: requireAdmin always sits behind requireAuth, never alone.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/health", s.handle(s.health)).Methods(http.MethodGet)

	api.Handle("/users", s.handle(s.register)).Methods(http.MethodPost)
	api.Handle("/users/auth", s.handle(s.login)).Methods(http.MethodPost)
	api.Handle("/users/logout", s.handle(s.logout)).Methods(http.MethodPost)

	api.Handle("/users/profile", s.requireAuth(s.handle(s.getProfile))).Methods(http.MethodGet)
	api.Handle("/users/profile", s.requireAuth(s.handle(s.updateProfile))).Methods(http.MethodPut)

	api.Handle("/users", s.requireAuth(s.requireAdmin(s.handle(s.listUsers)))).Methods(http.MethodGet)
	api.Handle("/users/{id}", s.requireAuth(s.requireAdmin(s.handle(s.getUser)))).Methods(http.MethodGet)
	api.Handle("/users/{id}", s.requireAuth(s.requireAdmin(s.handle(s.updateUser)))).Methods(http.MethodPut)
	api.Handle("/users/{id}", s.requireAuth(s.requireAdmin(s.handle(s.deleteUser)))).Methods(http.MethodDelete)

	r.NotFoundHandler = s.handle(s.notFound)
	r.MethodNotAllowedHandler = s.handle(s.notFound)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
