package kvstore

import (
	"context"
	"time"
)

// Store is the key-value capability shared by the availability cache and the slot lock.
type Store interface {
	// Get returns ErrNotFound when the key is absent or expired
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX sets the key only if it is absent and reports whether it did
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FallbackRecorder counts calls served by the secondary store
type FallbackRecorder interface {
	IncStoreFallback(operation string)
}
