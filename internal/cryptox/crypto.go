// Package cryptox wraps credential hashing for Storefront.
package cryptox

import "golang.org/x/crypto/bcrypt"

// PasswordHashCost is the bcrypt work factor. Raising it makes hashing
// slower and brute force more expensive.
const PasswordHashCost = 10

// HashPassword derives a salted one-way digest of the plaintext password.
// bcrypt embeds a random salt, so hashing the same plaintext twice yields
// two different digests that both verify.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// The underlying comparison is constant-time.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
