package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroundID <= 0 {
		return fmt.Errorf("%w: groundID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationHours) {
		return fmt.Errorf("%w: got %d", ErrInvalidDuration, req.DurationHours)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (по времени заведения)
func validateDate(date time.Time, now time.Time, loc *time.Location) error {
	localNow := now.In(loc)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC)
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if requested.Before(today) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	return nil
}
