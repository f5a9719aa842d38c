package slots

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// Engine computes bookable start times for one operating window.
type Engine struct {
	table       FeasibilityTable
	granularity int
}

// NewEngine uses the shared feasibility table. Non-positive granularity means the default.
func NewEngine(granularity int) *Engine {
	if granularity <= 0 {
		granularity = domain.DefaultGranularityMinutes
	}
	return &Engine{
		table:       Feasibility(),
		granularity: granularity,
	}
}

// AvailableSlots reduces the window by the occupied intervals and enumerates start times.
func (e *Engine) AvailableSlots(
	window domain.OperatingWindow,
	occupied []domain.OccupiedInterval,
	durationMinutes int,
	price decimal.Decimal,
) []domain.Slot {
	segments := Reduce(window, occupied)
	return Enumerate(segments, durationMinutes, e.table, price, e.granularity)
}

// Granularity returns the step between candidate start times.
func (e *Engine) Granularity() int {
	return e.granularity
}
