package slotlock

import (
	"context"
	"time"
)

// Store хранилище с атомарной операцией set-if-absent
type Store interface {
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// Recorder счётчик попыток взять блокировку
type Recorder interface {
	IncSlotLock(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
