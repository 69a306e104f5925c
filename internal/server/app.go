// Package server initializes and runs the storefront API server. It selects
// the persistence backend, applies database migrations, handles graceful
// shutdown on OS signals, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/avolkov/storefront/internal/logging"
	"github.com/avolkov/storefront/internal/server/config"
	"github.com/avolkov/storefront/internal/server/httpapi"
	"github.com/avolkov/storefront/internal/server/repositories/repomanager"
	"github.com/avolkov/storefront/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repoManager repomanager.RepositoryManager
	userService *services.UserService
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := newRepositoryManager(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(rm.Users())

	return &App{config: c, logger: logger, repoManager: rm, userService: us}, nil
}

// newRepositoryManager picks the backend: Postgres when a DSN is configured,
// an in-memory store otherwise.
func newRepositoryManager(c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return repomanager.NewInMemoryRepositoryManager(), nil
	}
	return repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", app.config.Env, "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	if err := app.repoManager.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migration error", "error", err)
		return
	}

	defer func() {
		if err := app.repoManager.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}()

	s := httpapi.NewServer(app.config, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server error", "error", err)
	}
}
