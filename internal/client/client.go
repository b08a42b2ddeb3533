// Package client implements the JSON-over-HTTP client for the Booksy
// backend. Every request attaches the stored bearer token when one is
// present; any unauthorized response clears that token before the error is
// returned, so subsequent requests stop presenting a stale credential.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/booksy/internal/logging"
)

// TokenStore is the persistent slot holding the session token.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger
}

// New builds a Client for the backend at baseURL. A zero timeout leaves the
// http.Client without one; requests are still bounded by their context.
func New(baseURL string, timeout time.Duration, tokens TokenStore, log logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// do issues one request and decodes the 2xx response into out (when out is
// non-nil). Error mapping:
//   - transport failure   -> wraps ErrUnavailable
//   - 401                 -> token cleared, ErrUnauthorized
//   - other non-2xx       -> *APIError with the backend's message
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.ClearToken(ctx); err != nil {
			c.log.Error(ctx, "clearing token after 401", "error", err)
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: resp.Status}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Message != "" {
		apiErr.Message = eb.Message
	}
	return apiErr
}
