package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MissingBaselineError indicates a building whose baseline EUI is zero or
// negative, so no percentage-based reduction target can be computed for it.
// Buildings that fail this way must be excluded from path comparison rather
// than scored at $0.
type MissingBaselineError struct {
	BuildingID  string
	BaselineEUI decimal.Decimal
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("building %s: baseline EUI %s is zero or negative, cannot compute reduction target",
		e.BuildingID, e.BaselineEUI.String())
}

// InvalidAreaError indicates a non-positive gross floor area; per-sqft
// penalty math is undefined for such a building.
type InvalidAreaError struct {
	BuildingID string
	AreaSqFt   decimal.Decimal
}

func (e *InvalidAreaError) Error() string {
	return fmt.Sprintf("building %s: gross floor area %s sqft must be positive",
		e.BuildingID, e.AreaSqFt.String())
}

// InvalidConfigurationError indicates a malformed PenaltyConfig or a
// discounting setup that would produce meaningless results (for example a
// payment year before the NPV base year).
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}
