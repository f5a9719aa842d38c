package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// Outcome итоговое состояние попытки бронирования
type Outcome string

const (
	// OutcomePending блокировка взята, идёт повторная проверка
	OutcomePending Outcome = "pending"
	// OutcomeConfirmed бронирование сохранено
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeRejected повторная проверка нашла конфликт
	OutcomeRejected Outcome = "rejected"
	// OutcomeConflict блокировка уже была занята
	OutcomeConflict Outcome = "conflict"
	// OutcomeFailed внутренняя ошибка
	OutcomeFailed Outcome = "failed"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64            // ID пользователя
	GroundID      int64            // ID площадки
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота, "HH:MM"
	DurationHours int              // 2 или 3
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	BookingCode   string
	UserID        int64
	GroundID      int64
	VenueID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	Price         decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
