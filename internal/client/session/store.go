// Package session owns the client's durable local session state: the cached
// user returned by the last successful login or registration, and state
// derived from it (the cart). The raw session token is never stored here;
// it lives only in the HTTP cookie jar.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/avolkov/storefront/internal/client/models"
	"github.com/avolkov/storefront/internal/client/repositories/state"
	"github.com/avolkov/storefront/internal/dbx"
)

const (
	keyPrincipal = "principal"
	keyCart      = "cart"
)

// Store caches the current user in memory and persists it, together with
// the cart, in the local sqlite database. All methods are safe for
// concurrent use.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	repo state.Repository
	user *models.User
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, repo: state.NewSQLiteRepository(db)}
}

// Load restores the cached user from local storage. A missing record means
// no session; that is not an error.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.repo.Get(ctx, keyPrincipal)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if raw == nil {
		s.user = nil
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return fmt.Errorf("failed to decode cached user: %w", err)
	}
	s.user = &u
	return nil
}

// Current returns a copy of the cached user, or nil when logged out.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser replaces the cached user after a successful login, registration
// or profile refresh. When the user differs from the cached one, the whole
// store is wiped and rewritten in one transaction so the new session cannot
// inherit the previous user's cart.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if s.user != nil && s.user.ID == u.ID {
		if err := s.repo.Set(ctx, keyPrincipal, raw); err != nil {
			return err
		}
	} else {
		err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := state.NewSQLiteRepository(tx)
			if err := repo.Clear(ctx); err != nil {
				return err
			}
			return repo.Set(ctx, keyPrincipal, raw)
		})
		if err != nil {
			return err
		}
	}

	copied := *u
	s.user = &copied
	return nil
}

// Clear wipes the cached user and everything derived from it in one step,
// so a later session inherits nothing. Clearing an already empty store is
// a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.user = nil
	return nil
}

// AddCartItem appends a line to the persisted cart, merging quantities when
// the product is already present.
func (s *Store) AddCartItem(ctx context.Context, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cartItemsLocked(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range items {
		if items[i].Product == item.Product {
			items[i].Qty += item.Qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.repo.Set(ctx, keyCart, raw)
}

// CartItems returns the persisted cart lines.
func (s *Store) CartItems(ctx context.Context) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartItemsLocked(ctx)
}

func (s *Store) cartItemsLocked(ctx context.Context) ([]models.CartItem, error) {
	raw, err := s.repo.Get(ctx, keyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return items, nil
}
