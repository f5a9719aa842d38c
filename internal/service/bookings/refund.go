package bookings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GroundBookingService/internal/domain"
)

// RefundPolicy возврат части стоимости при ранней отмене
type RefundPolicy struct {
	Window  time.Duration // отмена раньше чем за Window до начала даёт возврат
	Percent int64         // процент возврата
}

// DefaultRefundPolicy 80% при отмене более чем за 4 часа
func DefaultRefundPolicy() RefundPolicy {
	return RefundPolicy{
		Window:  domain.DefaultRefundWindow,
		Percent: domain.DefaultRefundPercent,
	}
}

// Refund считает сумму и процент возврата
func (p RefundPolicy) Refund(price decimal.Decimal, startsAt, now time.Time) (decimal.Decimal, int64) {
	if startsAt.Sub(now) <= p.Window {
		return decimal.Zero, 0
	}
	amount := price.Mul(decimal.NewFromInt(p.Percent)).Div(decimal.NewFromInt(100)).Round(2)
	return amount, p.Percent
}
