package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingJWTSecret is returned when production boots without a
// session-signing secret. An empty HMAC key would let anyone mint valid
// admin tokens.
var ErrMissingJWTSecret = errors.New("BRK_JWT_SECRET must be set in production")

// Config captures runtime configuration sourced from environment variables.
type Config struct {
	Environment  string
	HTTPPort     string
	DatabasePath string
	BackupDir    string
	JWTSecret    string
	FrontendDir  string
}

// Load reads env vars and falls back to defaults so the server can boot with zero configuration.
func Load() (Config, error) {
	cfg := Config{
		Environment:  getEnv("BRK_ENV", "development"),
		HTTPPort:     getEnv("BRK_HTTP_PORT", "8080"),
		DatabasePath: getEnv("BRK_DB_PATH", filepath.Join("data", "barakatna.db")),
		BackupDir:    getEnv("BRK_BACKUP_DIR", filepath.Join("data", "backups")),
		JWTSecret:    getEnv("BRK_JWT_SECRET", ""),
		FrontendDir:  getEnv("BRK_FRONTEND_DIR", filepath.Clean(filepath.Join("..", "frontend", "dist"))),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, ErrMissingJWTSecret
		}
		// Development fallback: a random per-boot secret. Sessions do not
		// survive a restart, but tokens cannot be forged either.
		secret, err := randomSecret()
		if err != nil {
			return Config{}, fmt.Errorf("generate session secret: %w", err)
		}
		cfg.JWTSecret = secret
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure data directory: %w", err)
	}
	if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure backup directory: %w", err)
	}

	return cfg, nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}
