package domain

import (
	"github.com/shopspring/decimal"
)

// PenaltyConfig contains every rate, cap, floor and threshold the engine
// uses. It is an immutable value passed into each call; callers running a
// batch must use the same config for every building in the batch so all
// buildings are evaluated under identical rules.
type PenaltyConfig struct {
	// Penalty rates ($/kBtu over target, except the flat never-benchmarked
	// rate which is $/sqft).
	StandardRate         decimal.Decimal `yaml:"standard_rate" json:"standard_rate"`
	AlternateRate        decimal.Decimal `yaml:"alternate_rate" json:"alternate_rate"`
	ExtensionRate        decimal.Decimal `yaml:"extension_rate" json:"extension_rate"`
	LateExtensionAddon   decimal.Decimal `yaml:"late_extension_addon" json:"late_extension_addon"`
	NeverBenchmarkedRate decimal.Decimal `yaml:"never_benchmarked_rate" json:"never_benchmarked_rate"`

	// Target adjustment caps and floors.
	MaxReductionPct decimal.Decimal `yaml:"max_reduction_pct" json:"max_reduction_pct"`
	MAIReductionPct decimal.Decimal `yaml:"mai_reduction_pct" json:"mai_reduction_pct"`
	MAIFloorEUI     decimal.Decimal `yaml:"mai_floor_eui" json:"mai_floor_eui"`

	// NPV parameters.
	DiscountRate decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
	BaseYear     int             `yaml:"base_year" json:"base_year"`

	// Schedule shape.
	ContinuationYears    int   `yaml:"continuation_years" json:"continuation_years"`
	AnalysisHorizonYears int   `yaml:"analysis_horizon_years" json:"analysis_horizon_years"`
	StandardTargetYears  []int `yaml:"standard_target_years" json:"standard_target_years"`
	AlternateTargetYears []int `yaml:"alternate_target_years" json:"alternate_target_years"`

	// Decision thresholds for the path comparator.
	MaterialityThreshold decimal.Decimal `yaml:"materiality_threshold" json:"materiality_threshold"`
	ExpensiveThreshold   decimal.Decimal `yaml:"expensive_threshold" json:"expensive_threshold"`
}

// DefaultPenaltyConfig returns the program defaults per the April 2025
// technical guidance.
func DefaultPenaltyConfig() *PenaltyConfig {
	return &PenaltyConfig{
		StandardRate:         decimal.NewFromFloat(0.15),
		AlternateRate:        decimal.NewFromFloat(0.23),
		ExtensionRate:        decimal.NewFromFloat(0.35),
		LateExtensionAddon:   decimal.NewFromFloat(0.10),
		NeverBenchmarkedRate: decimal.NewFromFloat(10.00),
		MaxReductionPct:      decimal.NewFromFloat(0.42),
		MAIReductionPct:      decimal.NewFromFloat(0.30),
		MAIFloorEUI:          decimal.NewFromFloat(52.9),
		DiscountRate:         decimal.NewFromFloat(0.07),
		BaseYear:             2024,
		ContinuationYears:    12,
		AnalysisHorizonYears: 15,
		StandardTargetYears:  []int{2025, 2027, 2030},
		AlternateTargetYears: []int{2028, 2032},
		MaterialityThreshold: decimal.NewFromInt(50000),
		ExpensiveThreshold:   decimal.NewFromInt(100000),
	}
}

// Validate checks the configuration for values that would make penalty or
// NPV math meaningless.
func (pc *PenaltyConfig) Validate() error {
	if pc.DiscountRate.IsNegative() {
		return &InvalidConfigurationError{Field: "discount_rate", Reason: "must not be negative"}
	}
	if len(pc.StandardTargetYears) == 0 {
		return &InvalidConfigurationError{Field: "standard_target_years", Reason: "must not be empty"}
	}
	if len(pc.AlternateTargetYears) == 0 {
		return &InvalidConfigurationError{Field: "alternate_target_years", Reason: "must not be empty"}
	}
	if pc.ContinuationYears < 0 {
		return &InvalidConfigurationError{Field: "continuation_years", Reason: "must not be negative"}
	}
	if pc.AnalysisHorizonYears <= 0 {
		return &InvalidConfigurationError{Field: "analysis_horizon_years", Reason: "must be positive"}
	}
	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"standard_rate", pc.StandardRate},
		{"alternate_rate", pc.AlternateRate},
		{"extension_rate", pc.ExtensionRate},
		{"never_benchmarked_rate", pc.NeverBenchmarkedRate},
	} {
		if rate.value.IsNegative() {
			return &InvalidConfigurationError{Field: rate.name, Reason: "must not be negative"}
		}
	}
	if pc.MaxReductionPct.IsNegative() || pc.MaxReductionPct.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return &InvalidConfigurationError{Field: "max_reduction_pct", Reason: "must be in [0, 1)"}
	}
	if pc.MAIReductionPct.IsNegative() || pc.MAIReductionPct.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return &InvalidConfigurationError{Field: "mai_reduction_pct", Reason: "must be in [0, 1)"}
	}
	return nil
}
