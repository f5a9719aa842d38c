package get_available_slots

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
	// GetEffectiveOperatingHours расписание площадки, либо общее расписание заведения
	GetEffectiveOperatingHours(ctx context.Context, ground *domain.Ground) ([]domain.OperatingWindow, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByGroundWithFilter(ctx context.Context, filter domain.GroundBookingsFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository интерфейс репозитория ручных блокировок
type BlockedSlotRepository interface {
	GetByGroundAndDate(ctx context.Context, groundID int64, date time.Time) ([]domain.BlockedSlot, error)
}

// SlotCache кэш рассчитанных слотов
type SlotCache interface {
	Get(ctx context.Context, groundID int64, date time.Time, durationHours int) ([]domain.Slot, bool)
	Put(ctx context.Context, groundID int64, date time.Time, durationHours int, slots []domain.Slot)
}

// SlotEngine расчёт допустимых времён начала
type SlotEngine interface {
	AvailableSlots(
		window domain.OperatingWindow,
		occupied []domain.OccupiedInterval,
		durationMinutes int,
		price decimal.Decimal,
	) []domain.Slot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
