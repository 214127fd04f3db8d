package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
}

type BackendConfig struct {
	// BaseURL of the remote marketplace API, read once at startup.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8000/api/"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	// RedisAddr empty selects the in-memory store (dev only).
	RedisAddr  string        `env:"REDIS_ADDR"`
	RedisDB    int           `env:"REDIS_DB,     default=0"`
	TTL        time.Duration `env:"SESSION_TTL,  default=24h"`
	CookieName string        `env:"SESSION_COOKIE, default=storefront_session"`
}

// Development reports whether the gateway runs in development mode.
func (c *Config) Development() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
