package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trendfeed/internal/config"
)

// Cache is a byte-oriented response cache with per-entry freshness windows.
type Cache interface {
	// Get returns the value and true on a fresh hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// New builds the backend selected by cfg.Cache.Backend.
func New(cfg config.Config) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", "memory":
		return NewMemory(10 * time.Minute), nil
	case "redis":
		return NewRedis(DialRedis(cfg.Redis)), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Cache.Backend)
	}
}
