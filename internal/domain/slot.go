package domain

import "github.com/shopspring/decimal"

// OccupiedInterval is time taken by a booking or a block.
// Start and End are minutes from midnight of the query date; End may pass 1440.
type OccupiedInterval struct {
	Start int
	End   int
}

// FreeSegment is a maximal stretch of operating time with nothing booked or blocked.
// Minutes from midnight of the query date, half-open [Start, End).
type FreeSegment struct {
	Start int
	End   int
}

// Length returns the segment length in minutes
func (s FreeSegment) Length() int {
	return s.End - s.Start
}

// IsOvernight returns true if the segment reaches or crosses midnight,
// i.e. its wall-clock end is not after its wall-clock start.
func (s FreeSegment) IsOvernight() bool {
	return s.End%MinutesPerDay <= s.Start%MinutesPerDay
}

// Slot is a bookable start time
type Slot struct {
	Time      string          `json:"time"` // HH:MM
	Available bool            `json:"available"`
	Price     decimal.Decimal `json:"price"`
}
