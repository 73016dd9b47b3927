// Package kvstore provides the durable key-value backends that hold
// persisted dashboard layouts: memory, file, sqlite and redis.
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"widgetdeck/internal/config"
)

// Store is a byte-oriented key-value backend.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the value for key, or (nil, nil) when the key does not exist.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases backend resources.
	Close() error
}

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kvstore: closed")

// Open builds the backend selected by cfg.Backend.
func Open(cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		return NewFileStore(cfg.Dir)
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.SQLitePath)
	case config.BackendRedis:
		return NewRedisStore(cfg.Redis), nil
	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", cfg.Backend)
	}
}
