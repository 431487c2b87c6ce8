package calculation

import (
	"github.com/openbps/bpscalc/internal/domain"
	"github.com/shopspring/decimal"
)

// NPVEngine discounts a penalty schedule to present value at a base year.
// It operates on a copy and never mutates its input, so discounting is
// idempotent and side-effect free.
type NPVEngine struct {
	DiscountRate decimal.Decimal
	BaseYear     int
}

// NewNPVEngine creates an NPV engine from the config's discount rate and
// base year.
func NewNPVEngine(cfg *domain.PenaltyConfig) *NPVEngine {
	return &NPVEngine{DiscountRate: cfg.DiscountRate, BaseYear: cfg.BaseYear}
}

// Discount returns a copy of the schedule with PenaltyNPV filled in:
// penalty_amount / (1 + rate)^(payment_year - base_year). A payment year
// before the base year is a configuration error, not a silent negative
// discount.
func (e *NPVEngine) Discount(schedule *domain.PenaltySchedule) (*domain.PenaltySchedule, error) {
	if e.DiscountRate.IsNegative() {
		return nil, &domain.InvalidConfigurationError{Field: "discount_rate", Reason: "must not be negative"}
	}

	discounted := schedule.Clone()
	onePlusRate := decimal.NewFromInt(1).Add(e.DiscountRate)

	for i := range discounted.Items {
		item := &discounted.Items[i]
		yearsFromBase := item.PaymentYear - e.BaseYear
		if yearsFromBase < 0 {
			return nil, &domain.InvalidConfigurationError{
				Field:  "base_year",
				Reason: "payment year precedes NPV base year",
			}
		}
		factor := onePlusRate.Pow(decimal.NewFromInt(int64(yearsFromBase)))
		item.PenaltyNPV = item.PenaltyAmount.Div(factor)
	}

	discounted.Discounted = true
	return discounted, nil
}
