// Package services contains server-side business logic. This file implements
// UserService: registration, credential verification, profile and admin
// maintenance of principals.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/storefront/internal/common"
	"github.com/avolkov/storefront/internal/cryptox"
	"github.com/avolkov/storefront/internal/server/models"
	usersrepo "github.com/avolkov/storefront/internal/server/repositories/users"
)

// UserUpdate names the fields a write may touch. A nil field is left as-is.
// Password is re-hashed only when it is set and non-empty; every other
// combination leaves PasswordHash byte-identical.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	IsAdmin  *bool
}

type UserService struct {
	repo usersrepo.Repository
}

func NewUserService(repo usersrepo.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a principal, hashing the password at creation.
// A duplicate email yields common.ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrInvalidInput)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInternal
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate verifies email+password. Both an unknown email and a bad
// password collapse into common.ErrInvalidCredentials so the response does
// not reveal which one failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !cryptox.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// Get resolves a principal by id. This lookup also gates token verification:
// a valid signature whose subject no longer exists must not authenticate.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

// Update applies upd to the stored record. The hashing decision is made
// here, at the call site of the write: the password is re-hashed only when
// upd.Password carries a new plaintext.
func (s *UserService) Update(ctx context.Context, id string, upd UserUpdate) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && *upd.Name != "" {
		user.Name = *upd.Name
	}
	if upd.Email != nil && *upd.Email != "" {
		user.Email = *upd.Email
	}
	if upd.IsAdmin != nil {
		user.IsAdmin = *upd.IsAdmin
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := cryptox.HashPassword(*upd.Password)
		if err != nil {
			return nil, common.ErrInternal
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a principal. Elevated-role accounts are protected:
// deleting an admin is rejected, leaving the record intact.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.IsAdmin {
		return fmt.Errorf("%w: can not delete admin user", common.ErrInvalidInput)
	}

	return s.repo.Delete(ctx, id)
}
