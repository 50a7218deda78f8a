// config/config.go - process configuration, loaded once at startup
package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every knob the server reads. It is loaded once in main
// and never mutated afterwards; the JWT secret in particular is
// injected here instead of living in a package-level variable.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	JWTSecret   string `env:"JWT_SECRET"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"fittracker"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	RateLimitMaxRequests int `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"100"`
	RateLimitWindowMS    int `env:"RATE_LIMIT_WINDOW_MS" envDefault:"900000"`
	AuthRateLimitMax     int `env:"AUTH_RATE_LIMIT_MAX" envDefault:"5"`
	AuthRateLimitWindow  int `env:"AUTH_RATE_LIMIT_WINDOW_MS" envDefault:"300000"`

	NotificationRetentionDays int  `env:"NOTIFICATION_RETENTION_DAYS" envDefault:"30"`
	NotificationCleanup       bool `env:"NOTIFICATION_CLEANUP_ENABLED" envDefault:"true"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}
	return nil
}

// DSN builds the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
