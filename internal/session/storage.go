package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portfolio-admin/internal/domain"
)

// Fixed storage keys. Tokens live under their own keys so the HTTP
// client can read them directly; the whole session is additionally
// persisted under a namespaced key and restored on startup.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keySession      = "portfolio-admin:session"
)

// PersistedSession is the durable shape of a signed-in session.
type PersistedSession struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// Storage is a small key-value file store for credentials. A Storage
// with no path keeps everything in memory, which tests use.
// Implements api.TokenStorage.
type Storage struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func NewFileStorage(path string) (*Storage, error) {
	s := &Storage{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("corrupt credentials file %s: %w", path, err)
	}

	return s, nil
}

func NewMemoryStorage() *Storage {
	return &Storage{data: make(map[string]json.RawMessage)}
}

func (s *Storage) AccessToken() string {
	return s.getString(keyAccessToken)
}

func (s *Storage) RefreshToken() string {
	return s.getString(keyRefreshToken)
}

func (s *Storage) SetAccessToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setString(keyAccessToken, token)
	return s.save()
}

func (s *Storage) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setString(keyAccessToken, access)
	s.setString(keyRefreshToken, refresh)
	return s.save()
}

// Clear removes tokens and the persisted session.
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, keyAccessToken)
	delete(s.data, keyRefreshToken)
	delete(s.data, keySession)
	return s.save()
}

func (s *Storage) SaveSession(sess *PersistedSession) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[keySession] = raw
	return s.save()
}

// LoadSession returns the persisted session, or nil when signed out.
func (s *Storage) LoadSession() *PersistedSession {
	s.mu.Lock()
	raw, ok := s.data[keySession]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	var sess PersistedSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil
	}
	return &sess
}

func (s *Storage) getString(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// setString must be called with mu held.
func (s *Storage) setString(key, value string) {
	raw, _ := json.Marshal(value)
	s.data[key] = raw
}

// save must be called with mu held.
func (s *Storage) save() error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
