package auth

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the signed token. The value is
// opaque to clients; it never appears in JSON bodies or URLs.
const CookieName = "jwt"

// SetTokenCookie writes the session cookie: HTTP-only, SameSite=Strict,
// Secure outside development.
func SetTokenCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie overwrites the session cookie with an empty value and a
// past expiry. Logout is exactly this; there is no server-side token store
// to clean up.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
