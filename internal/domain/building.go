package domain

import (
	"github.com/shopspring/decimal"
)

// BuildingRecord is the engine's input: one covered building with its
// baseline, actuals and raw (unadjusted) targets. Records are immutable for
// the duration of an analysis run; the engine never writes to them.
type BuildingRecord struct {
	BuildingID         string          `yaml:"building_id" json:"building_id"`
	PropertyType       string          `yaml:"property_type,omitempty" json:"property_type,omitempty"`
	GrossFloorAreaSqFt decimal.Decimal `yaml:"gross_floor_area_sqft" json:"gross_floor_area_sqft"`

	BaselineEUI  decimal.Decimal `yaml:"baseline_eui" json:"baseline_eui"`
	BaselineYear int             `yaml:"baseline_year,omitempty" json:"baseline_year,omitempty"`

	// CurrentEUI is the weather-normalized actual for the evaluation year.
	// ActualEUIByYear optionally supplies per-target-year readings; years
	// without an entry fall back to CurrentEUI.
	CurrentEUI      decimal.Decimal         `yaml:"current_eui" json:"current_eui"`
	ActualEUIByYear map[int]decimal.Decimal `yaml:"actual_eui_by_year,omitempty" json:"actual_eui_by_year,omitempty"`

	// IsMAI may be supplied directly or resolved from the MAI designation
	// lookup. MAIAdjustedTarget, when present, takes precedence over every
	// computed target candidate.
	IsMAI             bool             `yaml:"is_mai,omitempty" json:"is_mai,omitempty"`
	MAIAdjustedTarget *decimal.Decimal `yaml:"mai_adjusted_target,omitempty" json:"mai_adjusted_target,omitempty"`

	// RawTargets maps target year to the unadjusted target EUI for that
	// year, one entry per target year in the chosen path.
	RawTargets map[int]decimal.Decimal `yaml:"raw_targets" json:"raw_targets"`

	// FirstInterimYear shifts the standard path timeline when it differs
	// from the program's first standard target year. Zero means default.
	FirstInterimYear int `yaml:"first_interim_year,omitempty" json:"first_interim_year,omitempty"`
}

// ActualEUIForYear returns the actual EUI reading for a target year,
// falling back to CurrentEUI when no per-year reading was supplied.
func (b *BuildingRecord) ActualEUIForYear(year int) decimal.Decimal {
	if actual, ok := b.ActualEUIByYear[year]; ok {
		return actual
	}
	return b.CurrentEUI
}
