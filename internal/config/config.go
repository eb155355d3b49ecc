package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	DevServer   DevServerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CredentialsConfig struct {
	// Path of the JSON file holding the persisted session.
	Path string
}

type DevServerConfig struct {
	Host              string
	Port              string
	JWTSecret         string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	accessExp, err := time.ParseDuration(getEnv("JWT_EXPIRATION", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION: %w", err)
	}

	refreshExp, err := time.ParseDuration(getEnv("REFRESH_TOKEN_EXPIRATION", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_TOKEN_EXPIRATION: %w", err)
	}

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: timeout,
		},
		Credentials: CredentialsConfig{
			Path: getEnv("CREDENTIALS_PATH", defaultCredentialsPath()),
		},
		DevServer: DevServerConfig{
			Host:              getEnv("HOST", "0.0.0.0"),
			Port:              getEnv("PORT", "8080"),
			JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			AccessExpiration:  accessExp,
			RefreshExpiration: refreshExp,
		},
	}, nil
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".portfolio-admin/session.json"
	}
	return filepath.Join(home, ".portfolio-admin", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
