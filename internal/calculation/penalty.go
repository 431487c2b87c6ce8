package calculation

import (
	"fmt"
	"sort"

	"github.com/openbps/bpscalc/internal/domain"
	"github.com/shopspring/decimal"
)

// PenaltyCalculator computes per-year penalties and expands a building's
// full multi-year penalty schedule for a compliance path.
type PenaltyCalculator struct {
	Config   *domain.PenaltyConfig
	Adjuster *TargetAdjuster
	Resolver *MAIResolver
}

// NewPenaltyCalculator creates a calculator. A nil resolver leaves MAI
// status entirely to the building record's own flag.
func NewPenaltyCalculator(cfg *domain.PenaltyConfig, resolver *MAIResolver) *PenaltyCalculator {
	return &PenaltyCalculator{
		Config:   cfg,
		Adjuster: NewTargetAdjuster(cfg),
		Resolver: resolver,
	}
}

// CalculatePenalty computes the dollar penalty for a single year:
// max(0, actual - target) * sqft * rate. Never negative.
func (pc *PenaltyCalculator) CalculatePenalty(actualEUI, targetEUI, sqft, rate decimal.Decimal) (decimal.Decimal, error) {
	if sqft.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &domain.InvalidAreaError{AreaSqFt: sqft}
	}
	gap := actualEUI.Sub(targetEUI)
	if gap.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	return gap.Mul(sqft).Mul(rate), nil
}

// NeverBenchmarkedPenalty computes the one-time flat penalty for a building
// that never reported benchmarking data. Not EUI-gap-based.
func (pc *PenaltyCalculator) NeverBenchmarkedPenalty(sqft decimal.Decimal) (decimal.Decimal, error) {
	if sqft.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &domain.InvalidAreaError{AreaSqFt: sqft}
	}
	return sqft.Mul(pc.Config.NeverBenchmarkedRate), nil
}

// BuildSchedule expands a building's penalty schedule for one compliance
// path: one line item per target year carrying a raw target, plus the
// continuation items when the building is still non-compliant at the final
// target year. Payment is due the year after each assessment.
func (pc *PenaltyCalculator) BuildSchedule(b *domain.BuildingRecord, path domain.CompliancePath) (*domain.PenaltySchedule, error) {
	if b.GrossFloorAreaSqFt.LessThanOrEqual(decimal.Zero) {
		return nil, &domain.InvalidAreaError{BuildingID: b.BuildingID, AreaSqFt: b.GrossFloorAreaSqFt}
	}

	rate := path.PenaltyRate(pc.Config)
	years := path.TargetYears(pc.Config, b.FirstInterimYear)
	sort.Ints(years)

	schedule := &domain.PenaltySchedule{
		BuildingID: b.BuildingID,
		Path:       path.Kind,
	}

	if path.Kind == domain.PathNeverBenchmarked {
		amount, err := pc.NeverBenchmarkedPenalty(b.GrossFloorAreaSqFt)
		if err != nil {
			return nil, err
		}
		year := years[0]
		schedule.Items = append(schedule.Items, domain.PenaltyLineItem{
			TargetYear:     year,
			PaymentYear:    year + 1,
			PenaltyRate:    rate,
			PenaltyAmount:  amount,
			CompliancePath: path.Kind,
		})
		return schedule, nil
	}

	isMAI := b.IsMAI
	if !isMAI && pc.Resolver != nil {
		isMAI = pc.Resolver.IsMAIDesignated(b.BuildingID, b.PropertyType)
	}

	for _, year := range years {
		rawTarget, ok := b.RawTargets[year]
		if !ok {
			continue
		}
		finalTarget, adjustment, err := pc.Adjuster.Adjust(b.BuildingID, rawTarget, b.BaselineEUI, isMAI, b.MAIAdjustedTarget)
		if err != nil {
			return nil, fmt.Errorf("adjusting %d target: %w", year, err)
		}
		actual := b.ActualEUIForYear(year)
		gap := decimal.Max(decimal.Zero, actual.Sub(finalTarget))
		schedule.Items = append(schedule.Items, domain.PenaltyLineItem{
			TargetYear:       year,
			PaymentYear:      year + 1,
			ActualEUI:        actual,
			RawTargetEUI:     rawTarget,
			FinalTargetEUI:   finalTarget,
			TargetAdjustment: adjustment,
			GapEUI:           gap,
			PenaltyRate:      rate,
			PenaltyAmount:    gap.Mul(b.GrossFloorAreaSqFt).Mul(rate),
			CompliancePath:   path.Kind,
		})
	}

	// Penalties continue annually after the final target year until the
	// building complies; the schedule assumes no further improvement and
	// repeats the final year's gap for the continuation window.
	if n := len(schedule.Items); n > 0 {
		final := schedule.Items[n-1]
		if final.PenaltyAmount.IsPositive() {
			for i := 1; i <= pc.Config.ContinuationYears; i++ {
				item := final
				item.TargetYear = final.TargetYear + i
				item.PaymentYear = item.TargetYear + 1
				item.Continuation = true
				schedule.Items = append(schedule.Items, item)
			}
		}
	}

	return schedule, nil
}
