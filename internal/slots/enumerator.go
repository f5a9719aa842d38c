package slots

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

type candidate struct {
	at   int
	slot domain.Slot
}

// Enumerate walks every free segment in steps of granularity and returns the start times
// whose surrounding gaps can still be sold. Output is ordered chronologically.
func Enumerate(
	segments []domain.FreeSegment,
	durationMinutes int,
	table FeasibilityTable,
	price decimal.Decimal,
	granularity int,
) []domain.Slot {
	if granularity <= 0 {
		granularity = domain.DefaultGranularityMinutes
	}

	if durationMinutes <= 0 {
		return []domain.Slot{}
	}

	found := make([]candidate, 0)

	for _, seg := range segments {
		for c := seg.Start; c+durationMinutes <= seg.End; c += granularity {
			if !accept(seg, c, durationMinutes, table) {
				continue
			}
			found = append(found, candidate{
				at: c,
				slot: domain.Slot{
					Time:      types.NewTimeStringFromMinutes(c).String(),
					Available: true,
					Price:     price,
				},
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].at < found[j].at
	})

	result := make([]domain.Slot, len(found))
	for i, f := range found {
		result[i] = f.slot
	}
	return result
}

// gaps returns the free minutes of seg before and after a booking at c.
func gaps(seg domain.FreeSegment, c, durationMinutes int) (left, right int) {
	left = c - seg.Start
	right = seg.Length() - left - durationMinutes
	return left, right
}

// accept applies the left and right gap rules. The left gap must be sellable exactly.
// The right gap may also be up to one largest package of unsold time, and is not
// checked at all for segments that reach past midnight.
func accept(seg domain.FreeSegment, c, durationMinutes int, table FeasibilityTable) bool {
	left, right := gaps(seg, c, durationMinutes)

	if left != 0 && !table.Feasible(left) {
		return false
	}

	if seg.IsOvernight() {
		return true
	}

	return right == 0 || table.Feasible(right) || right <= domain.MaxLenientRightGapMinutes
}
