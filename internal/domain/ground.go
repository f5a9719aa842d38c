package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/pkg/types"
)

// Ground is a bookable playing area inside a venue
type Ground struct {
	ID       int64
	VenueID  int64
	Name     string
	IsActive bool
	Price2Hr decimal.Decimal
	Price3Hr decimal.Decimal
}

// PriceFor returns the package price for the given duration.
// ok is false for durations that are not sold.
func (g *Ground) PriceFor(durationHours int) (price decimal.Decimal, ok bool) {
	switch durationHours {
	case 2:
		return g.Price2Hr, true
	case 3:
		return g.Price3Hr, true
	default:
		return decimal.Zero, false
	}
}

// BlockedSlot is an owner-defined period when the ground cannot be booked
type BlockedSlot struct {
	ID        int64
	GroundID  int64
	BlockDate time.Time
	StartTime types.TimeString
	EndTime   types.TimeString // not after StartTime means the next day
	Reason    *string
}
