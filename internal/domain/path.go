package domain

import (
	"github.com/shopspring/decimal"
)

// PathKind identifies a compliance timeline.
type PathKind string

const (
	PathStandard         PathKind = "standard"
	PathAlternate        PathKind = "alternate"
	PathExtension        PathKind = "extension"
	PathNeverBenchmarked PathKind = "never_benchmarked"
)

// CompliancePath is a tagged variant carrying everything needed to resolve
// a path's penalty rate and target years, so rate/year selection happens in
// one place instead of at every call site.
type CompliancePath struct {
	Kind PathKind `yaml:"kind" json:"kind"`

	// TargetYear applies to extension paths only (2030 or 2032 depending on
	// which timeline the extension was granted against).
	TargetYear int `yaml:"target_year,omitempty" json:"target_year,omitempty"`

	// LateExtension adds the late-filing surcharge to the extension rate.
	LateExtension bool `yaml:"late_extension,omitempty" json:"late_extension,omitempty"`
}

// StandardPath is the default three-target timeline.
func StandardPath() CompliancePath {
	return CompliancePath{Kind: PathStandard}
}

// AlternatePath is the two-target opt-in (ACO) timeline.
func AlternatePath() CompliancePath {
	return CompliancePath{Kind: PathAlternate}
}

// ExtensionPath is a single-target timeline extension ending in targetYear.
func ExtensionPath(targetYear int, late bool) CompliancePath {
	return CompliancePath{Kind: PathExtension, TargetYear: targetYear, LateExtension: late}
}

// NeverBenchmarkedPath is the flat per-sqft penalty class for buildings
// that never reported benchmarking data.
func NeverBenchmarkedPath() CompliancePath {
	return CompliancePath{Kind: PathNeverBenchmarked}
}

// PenaltyRate resolves the path's penalty rate from the config. For the
// never-benchmarked path the rate is $/sqft rather than $/kBtu.
func (p CompliancePath) PenaltyRate(cfg *PenaltyConfig) decimal.Decimal {
	switch p.Kind {
	case PathAlternate:
		return cfg.AlternateRate
	case PathExtension:
		rate := cfg.ExtensionRate
		if p.LateExtension {
			rate = rate.Add(cfg.LateExtensionAddon)
		}
		return rate
	case PathNeverBenchmarked:
		return cfg.NeverBenchmarkedRate
	default:
		return cfg.StandardRate
	}
}

// TargetYears resolves the path's target years. The standard timeline
// shifts as a block when the building's first interim year differs from the
// program default; the alternate timeline is fixed.
func (p CompliancePath) TargetYears(cfg *PenaltyConfig, firstInterimYear int) []int {
	switch p.Kind {
	case PathAlternate:
		years := make([]int, len(cfg.AlternateTargetYears))
		copy(years, cfg.AlternateTargetYears)
		return years
	case PathExtension:
		return []int{p.TargetYear}
	case PathNeverBenchmarked:
		// One-time penalty, assessed at the first standard target year.
		return []int{shiftedStandardYears(cfg, firstInterimYear)[0]}
	default:
		return shiftedStandardYears(cfg, firstInterimYear)
	}
}

func shiftedStandardYears(cfg *PenaltyConfig, firstInterimYear int) []int {
	years := make([]int, len(cfg.StandardTargetYears))
	copy(years, cfg.StandardTargetYears)
	if firstInterimYear == 0 || len(years) == 0 {
		return years
	}
	shift := firstInterimYear - years[0]
	for i := range years {
		years[i] += shift
	}
	return years
}
