// Package session owns the auth session: the current user, the token
// pair, and the login/logout/refresh lifecycle. No other component
// mutates the session.
package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/domain"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// Store is the auth session store. Constructed once at startup and
// passed to consumers; restores a persisted session when one exists.
type Store struct {
	client  *api.Client
	storage *Storage

	mu      sync.Mutex
	user    *domain.User
	loading bool
	lastErr string
}

func NewStore(client *api.Client, storage *Storage) *Store {
	s := &Store{client: client, storage: storage}
	if persisted := storage.LoadSession(); persisted != nil {
		s.user = persisted.User
	}
	return s
}

// Login posts credentials and, on success, stores the user and token
// pair. Server failures are surfaced without retry.
func (s *Store) Login(ctx context.Context, credentials domain.LoginRequest) error {
	s.setLoading(true)

	var resp domain.LoginResponse
	if err := s.client.Do(ctx, http.MethodPost, loginPath, credentials, &resp); err != nil {
		s.fail(err)
		return err
	}

	if err := s.storage.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		s.fail(err)
		return err
	}
	if err := s.storage.SaveSession(&PersistedSession{
		User:         resp.User,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.user = resp.User
	s.loading = false
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Logout notifies the server best-effort (failures ignored, the logout
// happens locally regardless) and unconditionally clears the session.
func (s *Store) Logout(ctx context.Context) {
	if refreshToken := s.storage.RefreshToken(); refreshToken != "" {
		_ = s.client.Do(ctx, http.MethodPost, logoutPath,
			domain.RefreshTokenRequest{RefreshToken: refreshToken}, nil)
	}

	s.clearLocal()
}

// RefreshAccessToken forces a token refresh through the client's
// serialized refresh path. A failed refresh logs out locally.
func (s *Store) RefreshAccessToken(ctx context.Context) error {
	if s.storage.RefreshToken() == "" {
		err := fmt.Errorf("no refresh token available")
		s.fail(err)
		return err
	}

	if err := s.client.Refresh(ctx); err != nil {
		s.clearLocal()
		s.mu.Lock()
		s.lastErr = api.ErrorMessage(err)
		s.mu.Unlock()
		return err
	}

	// Keep the persisted session in step with the rotated access token.
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	return s.storage.SaveSession(&PersistedSession{
		User:         user,
		AccessToken:  s.storage.AccessToken(),
		RefreshToken: s.storage.RefreshToken(),
	})
}

// HandleSignedOut drops the in-memory user after the HTTP client has
// cleared the stored session on a terminal auth failure.
func (s *Store) HandleSignedOut() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.User() != nil && s.storage.AccessToken() != ""
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.lastErr = api.ErrorMessage(err)
	s.mu.Unlock()
}

func (s *Store) clearLocal() {
	s.storage.Clear()
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.lastErr = ""
	s.mu.Unlock()
}
