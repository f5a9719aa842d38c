package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/internal/slots"
)

// occupiedIntervals переводит бронирования и блокировки в интервалы относительно окна работы
func occupiedIntervals(
	window domain.OperatingWindow,
	bookings []*domain.Booking,
	blocks []domain.BlockedSlot,
) ([]domain.OccupiedInterval, error) {
	occupied := make([]domain.OccupiedInterval, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		start, err := b.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("booking id=%d: %w", b.ID, err)
		}
		occupied = append(occupied, slots.BookingInterval(window, start, b.DurationMinutes()))
	}

	for _, bl := range blocks {
		start, err := bl.StartTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("blocked slot id=%d: %w", bl.ID, err)
		}
		end, err := bl.EndTime.Minutes()
		if err != nil {
			return nil, fmt.Errorf("blocked slot id=%d: %w", bl.ID, err)
		}
		occupied = append(occupied, slots.BlockInterval(window, start, end))
	}

	return occupied, nil
}
