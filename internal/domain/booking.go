package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusStarted   BookingStatus = "started"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a ground booking
type Booking struct {
	ID            int64
	BookingCode   string
	UserID        int64
	GroundID      int64
	VenueID       int64
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	Price         decimal.Decimal
	Status        BookingStatus

	RefundAmount *decimal.Decimal
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// DurationMinutes returns the booked length in minutes
func (b *Booking) DurationMinutes() int {
	return b.DurationHours * 60
}

// StartsAt returns the booking start instant in loc
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc), nil
}

// GroundBookingsFilter selects bookings of one ground
type GroundBookingsFilter struct {
	GroundID        int64
	Date            *time.Time     // nil = all dates
	StartTime       *types.TimeString
	Status          *BookingStatus // explicit status wins over IncludeInactive
	IncludeInactive bool
	Limit           uint64 // 0 = no limit
}

// IsSingleDate returns true if the filter targets one calendar day
func (f *GroundBookingsFilter) IsSingleDate() bool {
	return f.Date != nil
}
