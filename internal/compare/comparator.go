package compare

import (
	"fmt"

	"github.com/openbps/bpscalc/internal/calculation"
	"github.com/openbps/bpscalc/internal/domain"
	"github.com/shopspring/decimal"
)

// difficultyForcesAlternate is the technical-difficulty score at or above
// which the alternate path is forced regardless of NPV.
const difficultyForcesAlternate = 80

// PathComparator runs the penalty engine once per elective compliance path
// and recommends the financially or technically superior one.
type PathComparator struct {
	Engine *calculation.Engine
}

// NewPathComparator creates a comparator over an engine.
func NewPathComparator(engine *calculation.Engine) *PathComparator {
	return &PathComparator{Engine: engine}
}

// Compare builds and discounts the standard-path and alternate-path
// schedules for a building, then applies the documented decision rule:
// hard triggers first, then the technical-difficulty score, then the sign
// and magnitude of the NPV advantage. Identical inputs always produce an
// identical decision.
func (pc *PathComparator) Compare(b *domain.BuildingRecord) (*domain.ComplianceDecision, error) {
	standard, err := pc.Engine.DiscountedSchedule(b, domain.StandardPath())
	if err != nil {
		return nil, fmt.Errorf("standard path: %w", err)
	}
	alternate, err := pc.Engine.DiscountedSchedule(b, domain.AlternatePath())
	if err != nil {
		return nil, fmt.Errorf("alternate path: %w", err)
	}

	decision := &domain.ComplianceDecision{
		BuildingID:            b.BuildingID,
		StandardTotalNominal:  standard.TotalNominal(),
		StandardTotalNPV:      standard.TotalNPV(),
		AlternateTotalNominal: alternate.TotalNominal(),
		AlternateTotalNPV:     alternate.TotalNPV(),
	}
	decision.NPVAdvantageOfAlternate = decision.StandardTotalNPV.Sub(decision.AlternateTotalNPV)

	targetItems := standard.TargetItems()
	decision.FinalReductionPct = finalReductionPct(targetItems)
	decision.DifficultyScore = difficultyScore(decision.FinalReductionPct)

	pc.applyDecisionRule(decision, targetItems)

	pc.Engine.Logger.Infof("building %s: recommend %s (%s, %s confidence, NPV advantage %s)",
		b.BuildingID, decision.RecommendedPath, decision.Rationale,
		decision.ConfidenceTier, decision.NPVAdvantageOfAlternate.StringFixed(0))

	return decision, nil
}

// applyDecisionRule fills in RecommendedPath, Rationale and ConfidenceTier.
func (pc *PathComparator) applyDecisionRule(d *domain.ComplianceDecision, standardItems []domain.PenaltyLineItem) {
	cfg := pc.Engine.Config

	// Hard triggers force a path regardless of NPV.
	if missesEveryTarget(standardItems) {
		d.RecommendedPath = domain.PathAlternate
		d.Rationale = domain.RationaleCannotMeetAnyTarget
		d.ConfidenceTier = domain.ConfidenceHigh
		return
	}
	if meetsFirstTarget(standardItems) {
		d.RecommendedPath = domain.PathStandard
		d.Rationale = domain.RationaleAlreadyCompliant
		d.ConfidenceTier = domain.ConfidenceHigh
		return
	}
	if d.DifficultyScore >= difficultyForcesAlternate {
		d.RecommendedPath = domain.PathAlternate
		d.Rationale = domain.RationaleTechnicalInfeasibility
		d.ConfidenceTier = domain.ConfidenceHigh
		return
	}

	// Otherwise the NPV advantage decides, with a materiality threshold:
	// small advantages are marginal, not decisive.
	advantage := d.NPVAdvantageOfAlternate
	switch {
	case advantage.GreaterThan(cfg.MaterialityThreshold):
		d.RecommendedPath = domain.PathAlternate
		d.Rationale = domain.RationaleSignificantAdvantage
		d.ConfidenceTier = domain.ConfidenceMedium
	case advantage.LessThan(cfg.ExpensiveThreshold.Neg()):
		d.RecommendedPath = domain.PathStandard
		d.Rationale = domain.RationaleAlternateTooExpensive
		d.ConfidenceTier = domain.ConfidenceMedium
	case advantage.IsPositive():
		d.RecommendedPath = domain.PathAlternate
		d.Rationale = domain.RationaleModestAdvantage
		d.ConfidenceTier = domain.ConfidenceLow
	default:
		d.RecommendedPath = domain.PathStandard
		d.Rationale = domain.RationaleMarginal
		d.ConfidenceTier = domain.ConfidenceLow
	}
}

// missesEveryTarget reports whether the building has a positive gap at
// every standard target year.
func missesEveryTarget(items []domain.PenaltyLineItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.GapEUI.IsPositive() {
			return false
		}
	}
	return true
}

// meetsFirstTarget reports whether the building already complies at the
// first standard target year.
func meetsFirstTarget(items []domain.PenaltyLineItem) bool {
	return len(items) > 0 && !items[0].GapEUI.IsPositive()
}

// finalReductionPct returns the percentage reduction still required at the
// final standard target, floored at zero.
func finalReductionPct(items []domain.PenaltyLineItem) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	final := items[len(items)-1]
	if !final.ActualEUI.IsPositive() {
		return decimal.Zero
	}
	pct := final.ActualEUI.Sub(final.FinalTargetEUI).
		Div(final.ActualEUI).
		Mul(decimal.NewFromInt(100))
	return decimal.Max(decimal.Zero, pct)
}

// difficultyScore buckets the required reduction into a 0-100 technical
// difficulty score.
func difficultyScore(reductionPct decimal.Decimal) int {
	switch {
	case reductionPct.GreaterThan(decimal.NewFromInt(50)):
		return 100
	case reductionPct.GreaterThan(decimal.NewFromInt(40)):
		return 80
	case reductionPct.GreaterThan(decimal.NewFromInt(30)):
		return 60
	case reductionPct.GreaterThan(decimal.NewFromInt(20)):
		return 40
	default:
		return 20
	}
}
