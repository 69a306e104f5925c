package httpapi

import (
	"errors"
	"net/http"

	"github.com/avolkov/storefront/internal/common"
	"github.com/avolkov/storefront/internal/server/auth"
)

// requireAuth is the session middleware and the only component that reads
// the session cookie. Every verification failure is a hard rejection; the
// chain never continues without a principal.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			s.writeError(w, r, common.ErrNoCredentials)
			return
		}

		userID, err := auth.GetUserIDFromToken(cookie.Value, s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		// the lookup gates success too: a signed token for a deleted
		// principal must not authenticate
		user, err := s.users.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.writeError(w, r, common.ErrInvalidToken)
				return
			}
			s.writeError(w, r, err)
			return
		}

		ctx := contextWithPrincipal(r.Context(), user.Public())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates on the elevated-role capability. It composes strictly
// after requireAuth and does not re-check authentication.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok || !principal.IsAdmin {
			s.writeError(w, r, common.ErrInsufficientRole)
			return
		}

		next.ServeHTTP(w, r)
	})
}
