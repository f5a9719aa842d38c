package bookings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByGroundWithFilter(ctx context.Context, filter domain.GroundBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, refundAmount decimal.Decimal) error
}

// GroundRepository интерфейс репозитория площадок
type GroundRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ground, error)
	GetVenueOwnerID(ctx context.Context, venueID int64) (int64, error)
}

// EventPublisher публикация событий об изменении бронирований
type EventPublisher interface {
	BookingCancelled(ctx context.Context, booking *domain.Booking) error
	BookingStatusChanged(ctx context.Context, booking *domain.Booking) error
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
