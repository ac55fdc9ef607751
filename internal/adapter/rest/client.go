// Package rest implements the repository ports against the QuickSales
// HTTP backend. One Client carries the base URL, the HTTP transport and
// the session store; every resource repository shares it.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dmungal1308/QuickSales-sub000/internal/platform/logger"
	"github.com/Dmungal1308/QuickSales-sub000/internal/repository"
	"github.com/Dmungal1308/QuickSales-sub000/internal/session"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	log      logger.Logger
}

func NewClient(cfg Config, sessions session.Store, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.NoOp()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		sessions: sessions,
		log:      log,
	}
}

// do performs one round trip. The bearer token is attached here, which is
// the single outgoing-request hook: no resource repository deals with auth.
// out may be nil for calls whose body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request for %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess, err := c.sessions.Current(ctx); err == nil && sess.LoggedIn() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("Client.do: transport failure on %s %s: %v", method, path, err)
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, method, path)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warnf("Client.do: decode failure on %s %s: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", repository.ErrDecode, method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// currentUserID returns the id of the logged-in user for the client-side
// derivations that need identity.
func (c *Client) currentUserID(ctx context.Context) (int64, error) {
	sess, err := c.sessions.Current(ctx)
	if err != nil {
		return 0, err
	}
	return sess.UserID, nil
}

// APIError is a server-reported business failure, decoded from the
// structured error payload.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"codigo,omitempty"`
	Message string `json:"mensaje"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Is maps HTTP statuses to the repository sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case repository.ErrNotFound:
		return e.Status == http.StatusNotFound
	case repository.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case repository.ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

func (c *Client) decodeError(resp *http.Response, method, path string) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: resp.Status}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		envelope.Error.Status = resp.StatusCode
		return envelope.Error
	}

	// Some endpoints answer with a flat {"mensaje": ...} payload.
	var flat APIError
	if err := json.Unmarshal(raw, &flat); err == nil && flat.Message != "" {
		flat.Status = resp.StatusCode
		return &flat
	}

	return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}

// AsAPIError unwraps err looking for a server-reported failure.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
