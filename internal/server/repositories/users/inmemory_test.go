package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/storefront/internal/common"
	"github.com/avolkov/storefront/internal/server/models"
)

func newUser(id, email string, created time.Time) *models.User {
	return &models.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "digest-" + id,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestInMemory_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	u := newUser("u-1", "a@example.com", time.Now())
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "a@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", byEmail.ID)
}

func TestInMemory_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("u-1", "same@example.com", time.Now()))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("u-2", "same@example.com", time.Now()))
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestInMemory_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("u-1", "a@example.com", time.Now()))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	got.PasswordHash = "tampered"

	again, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "digest-u-1", again.PasswordHash, "mutating a returned record must not affect the store")
}

func TestInMemory_ListOrderedByCreation(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()
	base := time.Now()

	_, err := repo.Create(ctx, newUser("u-2", "b@example.com", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUser("u-1", "a@example.com", base))
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "u-1", list[0].ID)
	require.Equal(t, "u-2", list[1].ID)
}

func TestInMemory_UpdateEmailReindexes(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, newUser("u-1", "old@example.com", time.Now()))
	require.NoError(t, err)

	u.Email = "new@example.com"
	require.NoError(t, repo.Update(ctx, u))

	_, err = repo.GetByEmail(ctx, "old@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)

	got, err := repo.GetByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
}

func TestInMemory_UpdateToTakenEmail(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("u-1", "a@example.com", time.Now()))
	require.NoError(t, err)
	u2, err := repo.Create(ctx, newUser("u-2", "b@example.com", time.Now()))
	require.NoError(t, err)

	u2.Email = "a@example.com"
	require.ErrorIs(t, repo.Update(ctx, u2), common.ErrEmailTaken)
}

func TestInMemory_Delete(t *testing.T) {
	t.Parallel()

	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("u-1", "a@example.com", time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "u-1"))
	require.ErrorIs(t, repo.Delete(ctx, "u-1"), common.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}
