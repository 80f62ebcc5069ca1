// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings. Every field is populated from the
// environment with sensible defaults for local development, except the JWT
// secret which must be set explicitly.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the filesystem path to the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"./data/splitkaro.db"`

	// JWTSecret signs session tokens. Required.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// TokenTTL is how long issued session tokens stay valid.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
