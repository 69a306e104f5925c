// Package models holds the client-side data shapes exchanged with the API
// and cached locally between commands.
package models

// User is the public view of an account as the API returns it. It never
// carries credential material.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// CartItem is a locally tracked cart line. The cart lives entirely in the
// client session and is wiped together with the cached user.
type CartItem struct {
	Product string `json:"product"`
	Qty     int    `json:"qty"`
}
