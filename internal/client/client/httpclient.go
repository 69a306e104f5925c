package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/avolkov/storefront/internal/client/models"
)

// TeardownFunc is invoked whenever the server answers 401. It is expected to
// drop all locally cached session state.
type TeardownFunc func(ctx context.Context) error

// HTTPClient talks to the storefront API over HTTP. The session token
// travels in an HTTP-only cookie managed by the jar; the client never reads
// or stores the token itself.
//
// Every request funnels through do(): a 401 response first triggers the
// registered teardown and then surfaces as ErrUnauthorized, so local state
// can never outlive a rejected session.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	teardown TeardownFunc
}

func NewHTTPClient(baseURL string, timeout time.Duration, teardown TeardownFunc) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Jar: jar, Timeout: timeout},
		teardown: teardown,
	}, nil
}

// apiError is the failure body the server sends: a user-facing message plus
// an optional diagnostic outside production.
type apiError struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is gone as far as the server is concerned; wipe the
		// local copy before reporting the failure.
		terr := c.runTeardown(ctx)
		return errors.Join(c.decodeError(resp), terr)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) runTeardown(ctx context.Context) error {
	if c.teardown == nil {
		return nil
	}
	return c.teardown(ctx)
}

func (c *HTTPClient) decodeError(resp *http.Response) error {
	var body apiError
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("api error: %s (status %d)", msg, resp.StatusCode)
	}
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	req := map[string]string{"name": name, "email": email, "password": password}

	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := map[string]string{"email": email, "password": password}

	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/users/auth", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/users/logout", nil, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var status struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &status); err != nil {
		return err
	}
	if status.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}
