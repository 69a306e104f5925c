package users

import (
	"context"

	"github.com/avolkov/storefront/internal/server/models"
)

// Repository is the credential store. Implementations map missing records
// to common.ErrNotFound and duplicate emails to common.ErrEmailTaken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
