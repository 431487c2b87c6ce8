package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompliancePath_PenaltyRate(t *testing.T) {
	cfg := DefaultPenaltyConfig()

	tests := []struct {
		name string
		path CompliancePath
		want float64
	}{
		{"standard", StandardPath(), 0.15},
		{"alternate", AlternatePath(), 0.23},
		{"extension", ExtensionPath(2030, false), 0.35},
		{"late extension", ExtensionPath(2032, true), 0.45},
		{"never benchmarked", NeverBenchmarkedPath(), 10.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.path.PenaltyRate(cfg)
			assert.True(t, got.Equal(decimal.NewFromFloat(tt.want)), "expected %v, got %s", tt.want, got)
		})
	}
}

func TestCompliancePath_TargetYears(t *testing.T) {
	cfg := DefaultPenaltyConfig()

	assert.Equal(t, []int{2025, 2027, 2030}, StandardPath().TargetYears(cfg, 0))
	assert.Equal(t, []int{2025, 2027, 2030}, StandardPath().TargetYears(cfg, 2025))
	assert.Equal(t, []int{2026, 2028, 2031}, StandardPath().TargetYears(cfg, 2026),
		"standard timeline shifts as a block with the first interim year")
	assert.Equal(t, []int{2024, 2026, 2029}, StandardPath().TargetYears(cfg, 2024))

	assert.Equal(t, []int{2028, 2032}, AlternatePath().TargetYears(cfg, 0))
	assert.Equal(t, []int{2028, 2032}, AlternatePath().TargetYears(cfg, 2026),
		"alternate timeline is fixed regardless of first interim year")

	assert.Equal(t, []int{2032}, ExtensionPath(2032, false).TargetYears(cfg, 0))
	assert.Equal(t, []int{2025}, NeverBenchmarkedPath().TargetYears(cfg, 0))
	assert.Equal(t, []int{2026}, NeverBenchmarkedPath().TargetYears(cfg, 2026))
}

func TestCompliancePath_TargetYearsDoesNotAliasConfig(t *testing.T) {
	cfg := DefaultPenaltyConfig()

	years := StandardPath().TargetYears(cfg, 2026)
	years[0] = 1999

	assert.Equal(t, []int{2025, 2027, 2030}, cfg.StandardTargetYears, "config must stay immutable")
}

func TestPenaltySchedule_TotalsAndClone(t *testing.T) {
	schedule := &PenaltySchedule{
		BuildingID: "bldg-1",
		Path:       PathStandard,
		Items: []PenaltyLineItem{
			{PenaltyAmount: decimal.NewFromInt(100), PenaltyNPV: decimal.NewFromInt(90)},
			{PenaltyAmount: decimal.NewFromInt(200), PenaltyNPV: decimal.NewFromInt(150), Continuation: true},
		},
	}

	assert.True(t, schedule.TotalNominal().Equal(decimal.NewFromInt(300)))
	assert.True(t, schedule.TotalNPV().Equal(decimal.NewFromInt(240)))
	assert.Len(t, schedule.TargetItems(), 1)

	clone := schedule.Clone()
	clone.Items[0].PenaltyAmount = decimal.NewFromInt(999)
	assert.True(t, schedule.Items[0].PenaltyAmount.Equal(decimal.NewFromInt(100)), "clone must not share items")
}

func TestBuildingRecord_ActualEUIForYear(t *testing.T) {
	building := BuildingRecord{
		CurrentEUI: decimal.NewFromInt(90),
		ActualEUIByYear: map[int]decimal.Decimal{
			2027: decimal.NewFromInt(85),
		},
	}

	assert.True(t, building.ActualEUIForYear(2027).Equal(decimal.NewFromInt(85)))
	assert.True(t, building.ActualEUIForYear(2025).Equal(decimal.NewFromInt(90)))
}
