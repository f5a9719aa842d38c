package slots

import (
	"sync"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// FeasibilityTable answers whether a gap of t minutes can be filled exactly
// by a sequence of allowed package durations.
type FeasibilityTable []bool

// BuildFeasibilityTable fills table[0..maxMinutes]:
// table[0] = true, table[t] = OR over d <= t of table[t-d].
func BuildFeasibilityTable(maxMinutes int, durations []int) FeasibilityTable {
	if maxMinutes < 0 {
		maxMinutes = 0
	}

	table := make(FeasibilityTable, maxMinutes+1)
	table[0] = true

	for t := 1; t <= maxMinutes; t++ {
		for _, d := range durations {
			if d > 0 && d <= t && table[t-d] {
				table[t] = true
				break
			}
		}
	}

	return table
}

// Feasible reports table[minutes]; values outside the table are infeasible.
func (t FeasibilityTable) Feasible(minutes int) bool {
	return minutes >= 0 && minutes < len(t) && t[minutes]
}

// MaxMinutes returns the largest gap the table covers.
func (t FeasibilityTable) MaxMinutes() int {
	return len(t) - 1
}

var (
	defaultTableOnce sync.Once
	defaultTable     FeasibilityTable
)

// Feasibility returns the process-wide table for the sellable durations over one day.
// It is built on first use and never changes afterwards.
func Feasibility() FeasibilityTable {
	defaultTableOnce.Do(func() {
		defaultTable = BuildFeasibilityTable(domain.MinutesPerDay, domain.AllowedDurationsMinutes)
	})
	return defaultTable
}
