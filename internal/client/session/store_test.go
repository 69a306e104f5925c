package session

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/storefront/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	return NewStore(db)
}

func TestSetUserAndLoad_Roundtrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	u := &models.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, s.SetUser(ctx, u))

	// simulate a process restart: a fresh in-memory cache over the same repo
	require.NoError(t, s.Load(ctx))

	got := s.Current()
	require.NotNil(t, got)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1", Name: "Alice"}))

	got := s.Current()
	got.Name = "Mallory"
	require.Equal(t, "Alice", s.Current().Name)
}

func TestClear_WipesUserAndCart(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1"}))
	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "mug", Qty: 2}))

	require.NoError(t, s.Clear(ctx))

	require.Nil(t, s.Current())
	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items, "the next session must inherit nothing")
}

func TestClear_IdempotentAndConcurrent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, s.Clear(ctx))
		}()
	}
	wg.Wait()

	require.Nil(t, s.Current())
}

func TestSetUser_DifferentUserDropsCart(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1", Email: "alice@example.com"}))
	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "mug", Qty: 2}))

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u2", Email: "bob@example.com"}))

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items, "another user's cart must not carry over")
	require.Equal(t, "bob@example.com", s.Current().Email)
}

func TestSetUser_SameUserKeepsCart(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1", Name: "Alice"}))
	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "mug", Qty: 2}))

	// a profile refresh re-caches the same user
	require.NoError(t, s.SetUser(ctx, &models.User{ID: "u1", Name: "Alice B."}))

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Alice B.", s.Current().Name)
}

func TestAddCartItem_MergesQuantities(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "mug", Qty: 1}))
	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "shirt", Qty: 1}))
	require.NoError(t, s.AddCartItem(ctx, models.CartItem{Product: "mug", Qty: 2}))

	items, err := s.CartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, models.CartItem{Product: "mug", Qty: 3}, items[0])
}

func TestLoad_EmptyStore(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Load(context.Background()))
	require.Nil(t, s.Current())
}
