package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	NoneBackend   = "none"
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes a cache backend
type Config struct {
	Backend       string        `env:"CACHE_BACKEND" env-default:"none" validate:"oneof=none memory redis"`
	TTL           time.Duration `env:"CACHE_TTL" env-default:"5m"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	RedisPrefix   string        `env:"REDIS_KEY_PREFIX" env-default:"countryconfig:"`
	OpTimeout     time.Duration `env:"CACHE_OP_TIMEOUT" env-default:"50ms"`
}

// New builds the backend named by cfg.Backend
func New[V any](cfg *Config) (Cache[V], error) {
	switch cfg.Backend {
	case "", NoneBackend:
		return NoopCache[V]{}, nil
	case MemoryBackend:
		return NewMemoryCache[V](), nil
	case RedisBackend:
		return NewRedisCache[V](&RedisOptions{
			Addr:            cfg.RedisAddr,
			Password:        cfg.RedisPassword,
			DB:              cfg.RedisDB,
			KeyPrefix:       cfg.RedisPrefix,
			OpTimeout:       cfg.OpTimeout,
			PoolSize:        10,
			MinIdleConns:    1,
			MaxRetries:      2,
			MinRetryBackoff: 8 * time.Millisecond,
			MaxRetryBackoff: 512 * time.Millisecond,
		}), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// NoopCache never stores anything; every Get is a miss.
type NoopCache[V any] struct{}

func (NoopCache[V]) Get(_ context.Context, _ string) (V, error) {
	var zero V
	return zero, ErrCacheMiss
}

func (NoopCache[V]) Set(_ context.Context, _ string, _ V, _ time.Duration) error { return nil }

func (NoopCache[V]) Delete(_ context.Context, _ string) error { return nil }
