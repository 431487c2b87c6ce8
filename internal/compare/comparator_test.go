package compare

import (
	"errors"
	"testing"

	"github.com/openbps/bpscalc/internal/calculation"
	"github.com/openbps/bpscalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparator(t *testing.T) *PathComparator {
	t.Helper()
	engine, err := calculation.NewEngine(domain.DefaultPenaltyConfig(), calculation.NewMAIResolver(nil))
	require.NoError(t, err)
	return NewPathComparator(engine)
}

// targets builds a raw target map over both paths' years.
func targets(y2025, y2027, y2030, y2028, y2032 int64) map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		2025: decimal.NewFromInt(y2025),
		2027: decimal.NewFromInt(y2027),
		2030: decimal.NewFromInt(y2030),
		2028: decimal.NewFromInt(y2028),
		2032: decimal.NewFromInt(y2032),
	}
}

func TestCompare_CannotMeetAnyTargetForcesAlternate(t *testing.T) {
	comparator := testComparator(t)
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.NewFromInt(100),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(90, 85, 80, 90, 80),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathAlternate, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleCannotMeetAnyTarget, decision.Rationale)
	assert.Equal(t, domain.ConfidenceHigh, decision.ConfidenceTier)
}

func TestCompare_FirstTargetMetForcesStandard(t *testing.T) {
	comparator := testComparator(t)
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.NewFromInt(100),
		CurrentEUI:         decimal.NewFromInt(90),
		RawTargets:         targets(90, 85, 80, 90, 80),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathStandard, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleAlreadyCompliant, decision.Rationale)
	assert.Equal(t, domain.ConfidenceHigh, decision.ConfidenceTier)
}

func TestCompare_TechnicalInfeasibilityForcesAlternate(t *testing.T) {
	comparator := testComparator(t)
	// Misses the first target, meets the second, and faces a 42% reduction
	// at the final target (the cap holds the target at 58): difficulty 80.
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.NewFromInt(100),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(90, 100, 55, 100, 100),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathAlternate, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleTechnicalInfeasibility, decision.Rationale)
	assert.Equal(t, domain.ConfidenceHigh, decision.ConfidenceTier)
	assert.Equal(t, 80, decision.DifficultyScore)
	assert.True(t, decision.FinalReductionPct.Equal(decimal.NewFromInt(42)),
		"got %s", decision.FinalReductionPct)
}

func TestCompare_SignificantFinancialAdvantage(t *testing.T) {
	comparator := testComparator(t)
	// Standard path: 5 kBtu gap in 2025 (75k penalty), compliant after.
	// Alternate path: fully compliant. Advantage well over the $50k
	// materiality threshold.
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(100000),
		BaselineEUI:        decimal.NewFromInt(120),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(95, 100, 100, 100, 100),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathAlternate, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleSignificantAdvantage, decision.Rationale)
	assert.Equal(t, domain.ConfidenceMedium, decision.ConfidenceTier)
	assert.True(t, decision.NPVAdvantageOfAlternate.GreaterThan(decimal.NewFromInt(50000)))
	assert.True(t, decision.AlternateTotalNPV.IsZero())
}

func TestCompare_ModestFinancialAdvantage(t *testing.T) {
	comparator := testComparator(t)
	// Same shape at a tenth of the size: the advantage is positive but
	// under the materiality threshold.
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.NewFromInt(120),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(95, 100, 100, 100, 100),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathAlternate, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleModestAdvantage, decision.Rationale)
	assert.Equal(t, domain.ConfidenceLow, decision.ConfidenceTier)
}

func TestCompare_AlternateTooExpensive(t *testing.T) {
	comparator := testComparator(t)
	// Standard: 1 kBtu gap in 2025 only. Alternate: 5 kBtu gap in 2028 at
	// the higher rate on a large building; the alternate path costs over
	// $100k more in present value.
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(200000),
		BaselineEUI:        decimal.NewFromInt(120),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(99, 100, 100, 95, 100),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathStandard, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleAlternateTooExpensive, decision.Rationale)
	assert.Equal(t, domain.ConfidenceMedium, decision.ConfidenceTier)
	assert.True(t, decision.NPVAdvantageOfAlternate.LessThan(decimal.NewFromInt(-100000)))
}

func TestCompare_MarginalDecision(t *testing.T) {
	comparator := testComparator(t)
	// Small standard gap, slightly larger alternate exposure: advantage is
	// negative but nowhere near the expensive threshold.
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.NewFromInt(120),
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(99, 100, 100, 95, 100),
	}

	decision, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, domain.PathStandard, decision.RecommendedPath)
	assert.Equal(t, domain.RationaleMarginal, decision.Rationale)
	assert.Equal(t, domain.ConfidenceLow, decision.ConfidenceTier)
	assert.True(t, decision.NPVAdvantageOfAlternate.IsNegative())
}

func TestCompare_Deterministic(t *testing.T) {
	comparator := testComparator(t)
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(52826),
		BaselineEUI:        decimal.NewFromFloat(70.5),
		CurrentEUI:         decimal.NewFromFloat(65.3),
		RawTargets:         targets(66, 63, 52, 66, 52),
	}

	first, err := comparator.Compare(building)
	require.NoError(t, err)
	second, err := comparator.Compare(building)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical decisions")
}

func TestCompare_MissingBaselinePropagates(t *testing.T) {
	comparator := testComparator(t)
	building := &domain.BuildingRecord{
		BuildingID:         "bldg-1",
		GrossFloorAreaSqFt: decimal.NewFromInt(10000),
		BaselineEUI:        decimal.Zero,
		CurrentEUI:         decimal.NewFromInt(100),
		RawTargets:         targets(90, 85, 80, 90, 80),
	}

	_, err := comparator.Compare(building)

	var missingBaseline *domain.MissingBaselineError
	require.True(t, errors.As(err, &missingBaseline),
		"a zero baseline is a data-quality gap, not evidence of compliance")
}

func TestComparePortfolio_RecordsFailuresAndContinues(t *testing.T) {
	comparator := testComparator(t)
	buildings := []domain.BuildingRecord{
		{
			BuildingID:         "good-1",
			GrossFloorAreaSqFt: decimal.NewFromInt(10000),
			BaselineEUI:        decimal.NewFromInt(100),
			CurrentEUI:         decimal.NewFromInt(90),
			RawTargets:         targets(90, 85, 80, 90, 80),
		},
		{
			BuildingID:         "no-baseline",
			GrossFloorAreaSqFt: decimal.NewFromInt(10000),
			BaselineEUI:        decimal.Zero,
			CurrentEUI:         decimal.NewFromInt(100),
			RawTargets:         targets(90, 85, 80, 90, 80),
		},
		{
			BuildingID:         "good-2",
			GrossFloorAreaSqFt: decimal.NewFromInt(10000),
			BaselineEUI:        decimal.NewFromInt(100),
			CurrentEUI:         decimal.NewFromInt(100),
			RawTargets:         targets(90, 85, 80, 90, 80),
		},
	}

	result := comparator.ComparePortfolio(buildings)

	require.Len(t, result.Decisions, 2)
	assert.Equal(t, "good-1", result.Decisions[0].BuildingID)
	assert.Equal(t, "good-2", result.Decisions[1].BuildingID)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "no-baseline", result.Failures[0].BuildingID)
	var missingBaseline *domain.MissingBaselineError
	assert.True(t, errors.As(result.Failures[0].Err, &missingBaseline))
}
