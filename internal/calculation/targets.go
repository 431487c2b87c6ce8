package calculation

import (
	"fmt"

	"github.com/openbps/bpscalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TargetAdjuster applies the regulatory cap and floors to a raw target EUI
// before it is used in penalty math. The less stringent (numerically
// higher) candidate always wins.
type TargetAdjuster struct {
	Config *domain.PenaltyConfig
}

// NewTargetAdjuster creates a target adjuster for the given config.
func NewTargetAdjuster(cfg *domain.PenaltyConfig) *TargetAdjuster {
	return &TargetAdjuster{Config: cfg}
}

// Adjust returns the final target EUI and a short description of which
// adjustment applied.
//
// Non-MAI buildings get the maximum-reduction cap only. MAI buildings take
// the maximum over four named candidates: the raw target, the MAI reduction
// cap, the MAI floor, and the MAI-specific adjusted target when present.
// The relief-floor rule is deliberately an explicit max over candidates so
// it stays auditable.
func (ta *TargetAdjuster) Adjust(buildingID string, rawTarget, baselineEUI decimal.Decimal, isMAI bool, maiOverride *decimal.Decimal) (decimal.Decimal, string, error) {
	one := decimal.NewFromInt(1)

	if baselineEUI.LessThanOrEqual(decimal.Zero) {
		if !isMAI || maiOverride == nil {
			return decimal.Zero, "", &domain.MissingBaselineError{BuildingID: buildingID, BaselineEUI: baselineEUI}
		}
		// No percentage-based candidate is computable; the override and the
		// MAI floor still provide a defensible target.
		final := decimal.Max(rawTarget, ta.Config.MAIFloorEUI, *maiOverride)
		return final, ta.maiReason(final, rawTarget, decimal.Zero, maiOverride), nil
	}

	if !isMAI {
		capTarget := baselineEUI.Mul(one.Sub(ta.Config.MaxReductionPct))
		final := decimal.Max(rawTarget, capTarget)
		if final.Equal(rawTarget) {
			return final, "no adjustment needed", nil
		}
		return final, fmt.Sprintf("%s%% reduction cap applied", ta.Config.MaxReductionPct.Mul(decimal.NewFromInt(100)).StringFixed(0)), nil
	}

	maiCap := baselineEUI.Mul(one.Sub(ta.Config.MAIReductionPct))
	candidates := []decimal.Decimal{maiCap, ta.Config.MAIFloorEUI}
	if maiOverride != nil {
		candidates = append(candidates, *maiOverride)
	}
	final := decimal.Max(rawTarget, candidates...)
	return final, ta.maiReason(final, rawTarget, maiCap, maiOverride), nil
}

func (ta *TargetAdjuster) maiReason(final, rawTarget, maiCap decimal.Decimal, maiOverride *decimal.Decimal) string {
	switch {
	case maiOverride != nil && final.Equal(*maiOverride):
		return "MAI adjusted target applied"
	case final.Equal(ta.Config.MAIFloorEUI):
		return fmt.Sprintf("MAI floor applied (%s kBtu/sqft)", ta.Config.MAIFloorEUI.String())
	case !maiCap.IsZero() && final.Equal(maiCap):
		return fmt.Sprintf("MAI %s%% reduction cap applied", ta.Config.MAIReductionPct.Mul(decimal.NewFromInt(100)).StringFixed(0))
	case final.Equal(rawTarget):
		return "no adjustment needed"
	default:
		return "adjusted"
	}
}
