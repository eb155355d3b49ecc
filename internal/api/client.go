// Package api implements the HTTP client adapter all stores share:
// it attaches the bearer token to outgoing requests and transparently
// runs the refresh-and-retry protocol on authorization failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"portfolio-admin/internal/domain"
	"portfolio-admin/pkg/response"
)

const refreshPath = "/api/auth/refresh"

// TokenStorage is the durable token pair the client reads on every
// request. Only the client's refresh path and the session store may
// write it.
type TokenStorage interface {
	AccessToken() string
	RefreshToken() string
	SetAccessToken(token string) error
	Clear() error
}

// Client wraps an http.Client with the portfolio API conventions.
// Safe for concurrent use; the refresh protocol is a single-slot state
// machine (idle or refreshing with a waiter queue) guarded by mu.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokens      TokenStorage
	onSignedOut func()

	mu         sync.Mutex
	refreshing bool
	waiters    []chan error
}

type Option func(*Client)

// WithSignedOutHandler registers a callback fired after a terminal auth
// failure has cleared the session, so the UI can route to the login
// surface.
func WithSignedOutHandler(fn func()) Option {
	return func(c *Client) { c.onSignedOut = fn }
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, timeout time.Duration, tokens TokenStorage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends one request and decodes the envelope's data field into out
// (which may be nil). A 401 triggers at most one refresh-and-retry; a
// second 401 after retry is surfaced as a terminal *Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = encoded
	}

	env, status, err := c.send(ctx, method, path, payload, true)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		// With no refresh token there is no session to recover; the
		// original failure (e.g. bad login credentials) is surfaced.
		if c.tokens.RefreshToken() == "" {
			if c.tokens.AccessToken() != "" {
				c.signOut()
			}
			return &Error{StatusCode: status, Message: env.Message, Reason: env.Error}
		}
		if err := c.refresh(ctx); err != nil {
			return err
		}
		env, status, err = c.send(ctx, method, path, payload, true)
		if err != nil {
			return err
		}
	}

	if status >= 400 || !env.Success {
		return &Error{StatusCode: status, Message: env.Message, Reason: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, withAuth bool) (*response.Envelope, int, error) {
	var body *bytes.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if withAuth {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Some failures (proxies, timeouts mid-body) produce no valid
		// envelope; keep the status and synthesize an empty one.
		env = response.Envelope{}
	}

	return &env, resp.StatusCode, nil
}

// Refresh forces a token refresh, serialized with any refresh already
// in flight.
func (c *Client) Refresh(ctx context.Context) error {
	return c.refresh(ctx)
}

// refresh runs the single-flight refresh protocol. The first caller
// performs the refresh; every caller arriving while it is in flight
// queues and receives the same outcome, in the order they queued.
func (c *Client) refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.refreshing {
		ch := make(chan error, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()

		select {
		case err := <-ch:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	err := c.doRefresh(ctx)

	c.mu.Lock()
	c.refreshing = false
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}

	return err
}

func (c *Client) doRefresh(ctx context.Context) error {
	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		c.signOut()
		return ErrSessionExpired
	}

	payload, err := json.Marshal(domain.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return fmt.Errorf("failed to encode refresh request: %w", err)
	}

	env, status, err := c.send(ctx, http.MethodPost, refreshPath, payload, false)
	if err != nil {
		return err
	}

	if status >= 400 || !env.Success || len(env.Data) == 0 {
		c.signOut()
		return fmt.Errorf("%w: %s", ErrSessionExpired,
			ErrorMessage(&Error{StatusCode: status, Message: env.Message, Reason: env.Error}))
	}

	var tokens domain.TokenResponse
	if err := json.Unmarshal(env.Data, &tokens); err != nil {
		c.signOut()
		return fmt.Errorf("%w: malformed refresh response", ErrSessionExpired)
	}

	if err := c.tokens.SetAccessToken(tokens.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}

	return nil
}

func (c *Client) signOut() {
	c.tokens.Clear()
	if c.onSignedOut != nil {
		c.onSignedOut()
	}
}
