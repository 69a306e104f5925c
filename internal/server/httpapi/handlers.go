package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avolkov/storefront/internal/common"
	"github.com/avolkov/storefront/internal/server/auth"
	"github.com/avolkov/storefront/internal/server/models"
	"github.com/avolkov/storefront/internal/server/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrInvalidInput)
	}
	return nil
}

// issueSession mints a token for the principal and sets the session cookie.
// The token travels only in the cookie, never in the response body.
func (s *Server) issueSession(w http.ResponseWriter, userID string) error {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return common.ErrInternal
	}
	auth.SetTokenCookie(w, token, s.tokenTTL, s.production)
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) error {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	s.logger.Info(r.Context(), "Registration request", "email", req.Email)

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := s.issueSession(w, user.ID); err != nil {
		return err
	}

	s.logger.Info(r.Context(), "Registered", "id", user.ID)
	return writeJSON(w, http.StatusCreated, user.Public())
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	if err := s.issueSession(w, user.ID); err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, user.Public())
}

// logout clears the session cookie and acknowledges regardless of whether
// the request carried a valid session.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) error {
	auth.ClearTokenCookie(w)
	return writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) error {
	principal, _ := PrincipalFromContext(r.Context())

	user, err := s.users.Get(r.Context(), principal.ID)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, user.Public())
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateProfile lets the principal edit its own record. IsAdmin is not
// touchable here; the re-hash decision is visible in the UserUpdate shape.
func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) error {
	principal, _ := PrincipalFromContext(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	upd := services.UserUpdate{}
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Email != "" {
		upd.Email = &req.Email
	}
	if req.Password != "" {
		upd.Password = &req.Password
	}

	user, err := s.users.Update(r.Context(), principal.ID, upd)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, user.Public())
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := s.users.List(r.Context())
	if err != nil {
		return err
	}

	result := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		result = append(result, u.Public())
	}

	return writeJSON(w, http.StatusOK, result)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, user.Public())
}

type updateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	upd := services.UserUpdate{IsAdmin: &req.IsAdmin}
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Email != "" {
		upd.Email = &req.Email
	}

	user, err := s.users.Update(r.Context(), id, upd)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, user.Public())
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]

	if err := s.users.Delete(r.Context(), id); err != nil {
		return err
	}

	s.logger.Info(r.Context(), "User removed", "id", id)
	return writeJSON(w, http.StatusOK, map[string]string{"message": "User removed"})
}
