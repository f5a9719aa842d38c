package domain

import "time"

// OperatingWindow is the opening time of a ground (or of its whole venue) on one weekday.
// Times are minutes from midnight; CloseMinute <= OpenMinute means closing on the next day.
type OperatingWindow struct {
	ID          int64
	GroundID    *int64 // nil = venue-wide window
	VenueID     *int64
	DayOfWeek   time.Weekday
	OpenMinute  int
	CloseMinute int
}

// IsOvernight returns true if the window closes on the following calendar day
func (w OperatingWindow) IsOvernight() bool {
	return w.CloseMinute <= w.OpenMinute
}

// Bounds returns the window as [start, end) minutes from midnight of its opening day.
func (w OperatingWindow) Bounds() (start, end int) {
	start, end = w.OpenMinute, w.CloseMinute
	if w.IsOvernight() {
		end += MinutesPerDay
	}
	return start, end
}

// IsGroundLevel returns true if the window belongs to a single ground
func (w OperatingWindow) IsGroundLevel() bool {
	return w.GroundID != nil
}

// WindowForDay picks the window for day, ok is false when the ground is closed that day.
func WindowForDay(windows []OperatingWindow, day time.Weekday) (OperatingWindow, bool) {
	for _, w := range windows {
		if w.DayOfWeek == day {
			return w, true
		}
	}
	return OperatingWindow{}, false
}
