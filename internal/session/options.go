package session

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/mission/internal/seed"
)

// Option is a functional option for configuring Session initialization
type Option func(*sessionConfig)

// sessionConfig holds the configuration for Session initialization
type sessionConfig struct {
	logger   *slog.Logger
	now      func() time.Time
	ttl      time.Duration
	recorder MoveRecorder
	catalog  *seed.Catalog
}

// WithLogger sets the logger for the session
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *sessionConfig) {
		cfg.logger = logger
	}
}

// WithClock replaces time.Now (tests)
func WithClock(now func() time.Time) Option {
	return func(cfg *sessionConfig) {
		cfg.now = now
	}
}

// WithNotificationTTL sets how long workflow notifications stay visible
func WithNotificationTTL(ttl time.Duration) Option {
	return func(cfg *sessionConfig) {
		cfg.ttl = ttl
	}
}

// WithMoveRecorder records every successful move in a history log
func WithMoveRecorder(r MoveRecorder) Option {
	return func(cfg *sessionConfig) {
		cfg.recorder = r
	}
}

// WithSeed replaces the default board used on first launch and reset
func WithSeed(c *seed.Catalog) Option {
	return func(cfg *sessionConfig) {
		cfg.catalog = c
	}
}
