package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.GroundID <= 0 {
		return fmt.Errorf("%w: groundID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationHours) {
		return fmt.Errorf("%w: durationHours must be 2 or 3, got %d", ErrInvalidInput, req.DurationHours)
	}

	return nil
}

// validateStartTime проверяет формат HH:MM и попадание на сетку слотов.
// Возвращает время в каноничном виде "HH:MM".
func validateStartTime(startTime types.TimeString, granularity int) (types.TimeString, error) {
	minutes, err := startTime.Minutes()
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if minutes%granularity != 0 {
		return "", fmt.Errorf("%w: %s is not a multiple of %d minutes", ErrInvalidTimeSlot, startTime, granularity)
	}

	return types.NewTimeStringFromMinutes(minutes), nil
}

// slotOffered проверяет, что время есть среди доступных слотов
func slotOffered(slots []domain.Slot, startTime types.TimeString) bool {
	for _, s := range slots {
		if s.Available && s.Time == startTime.String() {
			return true
		}
	}
	return false
}
