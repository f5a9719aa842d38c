package slotcache

import (
	"context"
	"time"
)

// Store хранилище ключ-значение с TTL
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Recorder счётчик попаданий в кэш
type Recorder interface {
	IncSlotCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
