package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	GroundID      int64     // ID площадки
	Date          time.Time // Дата (без времени)
	DurationHours int       // Длительность пакета: 2 или 3 часа

	// BypassCache считать по хранилищу, кэш не читается и не пишется
	BypassCache bool
}

// Response модель ответа со списком доступных слотов
type Response struct {
	GroundID      int64
	Date          time.Time
	DurationHours int
	Slots         []domain.Slot // В хронологическом порядке от открытия
}
