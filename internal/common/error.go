// Package common defines shared constants and sentinel errors used across
// client and server layers of Storefront. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	// Credential errors.
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Auth errors (session cookie missing, or an invalid/malformed token).
	ErrNoCredentials = errors.New("not authorized, no token")
	ErrInvalidToken  = errors.New("not authorized, token failed")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("not authorized, token expired")

	// Authorization error: a valid principal without the required capability.
	ErrInsufficientRole = errors.New("not authorized as an admin")
)
