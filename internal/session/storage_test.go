package session

import (
	"os"
	"path/filepath"
	"testing"

	"portfolio-admin/internal/domain"
)

func TestFileStoragePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "session.json")

	first, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}
	if err := first.SetTokens("AT1", "RT1"); err != nil {
		t.Fatalf("SetTokens() error = %v", err)
	}
	if err := first.SaveSession(&PersistedSession{
		User:         &domain.User{ID: "1", Email: "admin@example.com", Name: "Admin"},
		AccessToken:  "AT1",
		RefreshToken: "RT1",
	}); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	second, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage() reopen error = %v", err)
	}
	if second.AccessToken() != "AT1" || second.RefreshToken() != "RT1" {
		t.Errorf("reopened tokens = %q/%q", second.AccessToken(), second.RefreshToken())
	}

	sess := second.LoadSession()
	if sess == nil || sess.User == nil || sess.User.Email != "admin@example.com" {
		t.Errorf("reopened session = %+v", sess)
	}
}

func TestFileStoragePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}
	if err := s.SetTokens("AT1", "RT1"); err != nil {
		t.Fatalf("SetTokens() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("credentials file mode = %o, want 600", perm)
	}
}

func TestStorageClearRemovesEverything(t *testing.T) {
	s := NewMemoryStorage()
	s.SetTokens("AT1", "RT1")
	s.SaveSession(&PersistedSession{AccessToken: "AT1", RefreshToken: "RT1"})

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if s.AccessToken() != "" || s.RefreshToken() != "" {
		t.Errorf("tokens remain after Clear: %q/%q", s.AccessToken(), s.RefreshToken())
	}
	if s.LoadSession() != nil {
		t.Error("session remains after Clear")
	}
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStorage(path); err == nil {
		t.Error("NewFileStorage() on corrupt file expected error")
	}
}
