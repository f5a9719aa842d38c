package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsActiveAt(ctx context.Context, groundID int64, date time.Time, startTime types.TimeString) (bool, error)
}

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
}

// SlotsProvider расчёт доступных слотов (предварительная проверка)
type SlotsProvider interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// SlotLocker короткая блокировка слота на время оформления
type SlotLocker interface {
	Acquire(ctx context.Context, groundID int64, date time.Time, slotTime string) (*domain.LockToken, error)
	Release(ctx context.Context, token *domain.LockToken) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация событий о бронированиях
type EventPublisher interface {
	BookingCreated(ctx context.Context, booking *domain.Booking) error
}

// OutcomeRecorder счётчик исходов бронирования
type OutcomeRecorder interface {
	IncBookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
