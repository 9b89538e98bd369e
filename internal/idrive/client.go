// Package idrive is the HTTP client for the iDrive REST backend. The backend
// owns all persistent state; this gateway only reads snapshots and forwards
// mutations. Every call takes an explicit Credential; there is no ambient
// token storage anywhere in the process.
package idrive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Credential is the bearer token a request acts under. It is minted by the
// backend at login and threaded through explicitly on each call.
type Credential struct {
	Token string
}

// Anonymous is the empty credential for unauthenticated endpoints (login,
// password reset request).
var Anonymous = Credential{}

// Config holds client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the iDrive backend
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates a backend client
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become *APIError carrying the backend's detail
// message when the body has one.
func (c *Client) do(ctx context.Context, cred Credential, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return &APIError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode}
		apiErr.Detail = decodeDetail(resp.Body)
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("detail", apiErr.Detail).
			Msg("Backend returned error status")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// errorBody is the backend's FastAPI-style error envelope
type errorBody struct {
	Detail string `json:"detail"`
}

func decodeDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil {
		return ""
	}
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
