// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" env-default:"8080" env-description:"HTTP listen port"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL" env-description:"Postgres connection string (required)"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to the Vite dev server. CORS_ORIGINS takes a comma-separated list.
	CORSOrigins Origins `env:"CORS_ORIGINS" env-default:"http://localhost:5173" env-description:"comma-separated allowed origins"`

	// RedisAddr enables Idempotency-Key support when set (host:port).
	RedisAddr string `env:"REDIS_ADDR" env-description:"Redis host:port; enables Idempotency-Key support"`

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" env-default:"1048576" env-description:"maximum request body size in bytes"`

	// UserHeader names the header the upstream auth proxy puts the user ID in.
	UserHeader string `env:"USER_HEADER" env-default:"X-User-ID" env-description:"header carrying the authenticated user ID"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.UserHeader == "" {
		missing = append(missing, "USER_HEADER")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

// Usage describes every supported environment variable, for --help output.
func Usage() string {
	var cfg Config
	u, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return u
}

// Origins is a list of CORS origins parsed from a comma-separated value.
type Origins []string

// SetValue implements cleanenv.Setter. Entries are trimmed and empty ones dropped.
func (o *Origins) SetValue(s string) error {
	*o = splitCSV(s)
	return nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
