// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development production testing"`
	LogLevel string `validate:"oneof=debug info warn error"`

	// PostgreSQL connection
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBName     string `validate:"required"`

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `validate:"required"`
	ValkeyPort     string `validate:"required,numeric"`
	ValkeyPassword string

	// S3-compatible object storage; uploads are disabled without endpoint and keys.
	S3Endpoint  string `validate:"omitempty,url"`
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string `validate:"required_with=S3Endpoint"`
	S3PublicURL string `validate:"omitempty,url"`

	// Comma-separated origins allowed to call the API with credentials.
	FrontendOrigins string

	// Rate limiting
	RateLimitBackend  string        `validate:"oneof=valkey memory"`
	RateLimitRequests int           `validate:"min=1"`
	RateLimitWindow   time.Duration `validate:"min=1s"`
	LoginRateLimit    int           `validate:"min=1"`

	// Public response cache TTL
	CacheTTL time.Duration `validate:"min=1s"`

	// Development seed account
	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string
}

var validate = validator.New()

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is read first; variables already set in the environment win. Returns an
// error if a value is malformed or critical values are missing in
// production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: strings.ToLower(envOrDefault("LOG_LEVEL", "info")),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "portfolio"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "portfolio"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "portfolio"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		FrontendOrigins: envOrDefault("FRONTEND_ORIGINS", "http://localhost:3000"),

		RateLimitBackend:  strings.ToLower(envOrDefault("RATE_LIMIT_BACKEND", "valkey")),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 120, &errs),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", time.Minute, &errs),
		LoginRateLimit:    envInt("LOGIN_RATE_LIMIT", 10, &errs),

		CacheTTL: envDuration("CACHE_TTL", 5*time.Minute, &errs),

		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@portfolio.local"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return net.JoinHostPort(c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SecureCookies reports whether cookies must be marked Secure. Outside
// development the admin frontend is served over HTTPS from another origin.
func (c *Config) SecureCookies() bool {
	return !c.IsDev()
}

// StorageEnabled returns true if object storage is configured.
func (c *Config) StorageEnabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// Origins returns the CORS allow list.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.FrontendOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, v))
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a duration", key, v))
		return fallback
	}
	return d
}
