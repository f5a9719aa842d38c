package domain

import "time"

// Engine constants
const (
	MinutesPerDay = 24 * 60

	// DefaultGranularityMinutes is the step between candidate start times
	DefaultGranularityMinutes = 30

	// MaxLenientRightGapMinutes is the trailing gap accepted even when it cannot be filled
	MaxLenientRightGapMinutes = 180
)

// AllowedDurationsMinutes are the sellable package lengths
var AllowedDurationsMinutes = []int{120, 180}

// AllowedDurationHours are the sellable package lengths in hours
var AllowedDurationHours = []int{2, 3}

// Default configuration values
const (
	DefaultSlotsCacheTTL      = 300 * time.Second
	DefaultSlotLockTTL        = 300 * time.Second
	DefaultRefundWindow       = 4 * time.Hour
	DefaultRefundPercent      = 80
	DefaultStoreSweepInterval = time.Minute
)

// Booking code format
const (
	BookingCodePrefix   = "BK"
	BookingCodeLength   = 4
	BookingCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, которые не занимают слот
// Используется для фильтрации при расчёте доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusStarted,
	StatusCompleted,
}

// IsAllowedDuration returns true if hours is a sellable package length
func IsAllowedDuration(hours int) bool {
	for _, h := range AllowedDurationHours {
		if h == hours {
			return true
		}
	}
	return false
}
