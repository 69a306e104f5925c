package models

import "time"

// User is the credential record for a single principal.
// PasswordHash is always a bcrypt digest of the most recently set password;
// the plaintext is never persisted or logged.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the wire-safe projection of a User. It is the only user
// shape that crosses the verifier boundary or a JSON encoder.
type PublicUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// Public strips the password hash and returns the exposable fields.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
