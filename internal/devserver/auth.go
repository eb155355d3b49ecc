package devserver

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-admin/internal/domain"
	"portfolio-admin/pkg/hash"
	"portfolio-admin/pkg/jwt"
)

// AuthService implements the token side of the API contract: a single
// admin account, JWT access tokens, and a registry of issued refresh
// tokens so logout and expiry actually invalidate them.
type AuthService struct {
	secret            string
	accessExpiration  time.Duration
	refreshExpiration time.Duration

	mu            sync.Mutex
	user          *domain.User
	passwordHash  string
	refreshTokens map[string]time.Time // token -> expiry
}

func NewAuthService(secret string, accessExp, refreshExp time.Duration) *AuthService {
	return &AuthService{
		secret:            secret,
		accessExpiration:  accessExp,
		refreshExpiration: refreshExp,
		refreshTokens:     make(map[string]time.Time),
	}
}

// Setup creates the admin account. It can only run once.
func (s *AuthService) Setup(req *domain.SetupRequest) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		return nil, fmt.Errorf("admin account already exists")
	}

	passwordHash, err := hash.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s.user = &domain.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.passwordHash = passwordHash

	return s.user, nil
}

func (s *AuthService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.Email != req.Email {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := hash.Compare(s.passwordHash, req.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	accessToken, err := jwt.GenerateToken(s.user.ID, s.accessExpiration, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(s.user.ID, s.refreshExpiration, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.refreshTokens[refreshToken] = time.Now().Add(s.refreshExpiration)

	return &domain.LoginResponse{
		User:         s.user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpiration.Seconds()),
	}, nil
}

// Refresh mints a new access token for a refresh token that is both
// cryptographically valid and still registered (not logged out).
func (s *AuthService) Refresh(req *domain.RefreshTokenRequest) (*domain.TokenResponse, error) {
	claims, err := jwt.ValidateToken(req.RefreshToken, s.secret)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	s.mu.Lock()
	expiry, ok := s.refreshTokens[req.RefreshToken]
	if ok && time.Now().After(expiry) {
		delete(s.refreshTokens, req.RefreshToken)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("refresh token revoked or expired")
	}

	accessToken, err := jwt.GenerateToken(claims.UserID, s.accessExpiration, s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessExpiration.Seconds()),
	}, nil
}

// Logout invalidates the refresh token. Unknown tokens are fine; the
// client logs out locally regardless.
func (s *AuthService) Logout(refreshToken string) {
	s.mu.Lock()
	delete(s.refreshTokens, refreshToken)
	s.mu.Unlock()
}

// RevokeAll drops every issued refresh token. Tests use this to force
// the refresh-failure path.
func (s *AuthService) RevokeAll() {
	s.mu.Lock()
	s.refreshTokens = make(map[string]time.Time)
	s.mu.Unlock()
}
