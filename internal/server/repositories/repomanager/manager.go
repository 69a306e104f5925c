// Package repomanager selects and wires the persistence backend for the
// server: Postgres when a DSN is configured, an in-memory store otherwise.
package repomanager

import (
	"context"

	"github.com/avolkov/storefront/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
