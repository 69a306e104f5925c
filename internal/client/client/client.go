package client

import (
	"context"

	"github.com/avolkov/storefront/internal/client/models"
)

// ProfileUpdate carries the fields of a profile edit. Empty strings mean
// "leave unchanged".
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Client is the API contract the CLI talks to. The session credential is
// opaque to callers; implementations carry it internally.
type Client interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
