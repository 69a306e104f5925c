package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/avolkov/storefront/internal/common"
)

// handlerFunc is the shape of every route handler: any returned error is
// routed to the normalization stage instead of being written in place.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}

// notFound is the unmatched-route stage: it raises a not-found failure
// carrying the requested path.
func (s *Server) notFound(w http.ResponseWriter, r *http.Request) error {
	return fmt.Errorf("%w - %s", common.ErrNotFound, r.URL.Path)
}

type errorResponse struct {
	Message    string `json:"message"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// statusForError maps a failure kind to the client-visible status code.
// Authentication and authorization failures deliberately share 401 so the
// response does not reveal why access was denied.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrNoCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInsufficientRole):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// kindForError names the failure kind for structured logs. Kinds that
// collapse into the same status code stay distinguishable here.
func kindForError(err error) string {
	switch {
	case errors.Is(err, common.ErrNoCredentials):
		return "no_credentials"
	case errors.Is(err, common.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, common.ErrTokenExpired):
		return "expired_token"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, common.ErrInsufficientRole):
		return "insufficient_role"
	case errors.Is(err, common.ErrNotFound):
		return "not_found"
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrEmailTaken):
		return "invalid_input"
	default:
		return "unclassified"
	}
}

// writeError is the normalization stage, the single place a failure becomes
// a response. Outside production the body carries a diagnostic (error chain
// plus stack); production responses have the message only.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	kind := kindForError(err)

	s.logger.Warn(r.Context(), "request failed",
		"kind", kind,
		"status", status,
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error(),
	)

	body := errorResponse{Message: err.Error()}
	if !s.production {
		body.Diagnostic = fmt.Sprintf("%v\n%s", err, debug.Stack())
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
