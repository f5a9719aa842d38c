package slots

import (
	"sort"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// anchorMinute places a time of day on the window's date basis.
// For an overnight window, times before closing belong to the next day.
func anchorMinute(window domain.OperatingWindow, minute int) int {
	if window.IsOvernight() && minute < window.OpenMinute && minute < window.CloseMinute {
		return minute + domain.MinutesPerDay
	}
	return minute
}

// BookingInterval maps a booking starting at startMinute onto the window's date basis.
func BookingInterval(window domain.OperatingWindow, startMinute, durationMinutes int) domain.OccupiedInterval {
	start := anchorMinute(window, startMinute)
	return domain.OccupiedInterval{Start: start, End: start + durationMinutes}
}

// BlockInterval maps a block [startMinute, endMinute) onto the window's date basis.
// An end not after the start means the block runs past midnight.
func BlockInterval(window domain.OperatingWindow, startMinute, endMinute int) domain.OccupiedInterval {
	length := endMinute - startMinute
	if length <= 0 {
		length += domain.MinutesPerDay
	}
	start := anchorMinute(window, startMinute)
	return domain.OccupiedInterval{Start: start, End: start + length}
}

// Reduce subtracts occupied intervals from the operating window.
// The result is sorted, non-overlapping, clipped to the window and has no empty segments,
// whatever the order or overlap of the input.
func Reduce(window domain.OperatingWindow, occupied []domain.OccupiedInterval) []domain.FreeSegment {
	windowStart, windowEnd := window.Bounds()

	sorted := make([]domain.OccupiedInterval, 0, len(occupied))
	for _, iv := range occupied {
		if iv.End > iv.Start {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	segments := make([]domain.FreeSegment, 0, len(sorted)+1)
	cursor := windowStart

	for _, iv := range sorted {
		if iv.Start >= windowEnd {
			break
		}
		if cursor < iv.Start {
			segments = append(segments, domain.FreeSegment{Start: cursor, End: iv.Start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}

	if cursor < windowEnd {
		segments = append(segments, domain.FreeSegment{Start: cursor, End: windowEnd})
	}

	return segments
}
