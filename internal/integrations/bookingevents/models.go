package bookingevents

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// EventType тип события о бронировании
type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingCancelled     EventType = "booking.cancelled"
	EventBookingStatusChanged EventType = "booking.status_changed"
)

// HeaderEventType заголовок сообщения с типом события
const HeaderEventType = "event-type"

// Event тело сообщения
type Event struct {
	Type          EventType        `json:"type"`
	OccurredAt    time.Time        `json:"occurredAt"`
	BookingID     int64            `json:"bookingId"`
	BookingCode   string           `json:"bookingCode"`
	UserID        int64            `json:"userId"`
	GroundID      int64            `json:"groundId"`
	VenueID       int64            `json:"venueId"`
	BookingDate   string           `json:"bookingDate"`
	StartTime     string           `json:"startTime"`
	DurationHours int              `json:"durationHours"`
	Price         decimal.Decimal  `json:"price"`
	Status        string           `json:"status"`
	RefundAmount  *decimal.Decimal `json:"refundAmount,omitempty"`
}

func newEvent(eventType EventType, b *domain.Booking, now time.Time) Event {
	return Event{
		Type:          eventType,
		OccurredAt:    now.UTC(),
		BookingID:     b.ID,
		BookingCode:   b.BookingCode,
		UserID:        b.UserID,
		GroundID:      b.GroundID,
		VenueID:       b.VenueID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		DurationHours: b.DurationHours,
		Price:         b.Price,
		Status:        string(b.Status),
		RefundAmount:  b.RefundAmount,
	}
}
