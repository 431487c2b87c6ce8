package domain

import (
	"github.com/shopspring/decimal"
)

// Rationale is the fixed taxonomy of reasons the path comparator may emit.
// The strings are part of the engine's contract and are matched by both
// downstream tooling and tests.
type Rationale string

const (
	RationaleCannotMeetAnyTarget    Rationale = "cannot_meet_any_target"
	RationaleAlreadyCompliant       Rationale = "already_compliant_at_first_target"
	RationaleTechnicalInfeasibility Rationale = "technical_infeasibility"
	RationaleSignificantAdvantage   Rationale = "significant_financial_advantage"
	RationaleModestAdvantage        Rationale = "modest_financial_advantage"
	RationaleAlternateTooExpensive  Rationale = "alternate_path_too_expensive"
	RationaleMarginal               Rationale = "marginal_decision"
)

// ConfidenceTier expresses how decisively the decision rules resolved.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// ComplianceDecision is the comparator's output for one building: penalty
// exposure under each elective path and the recommended choice with a
// machine-checkable rationale.
type ComplianceDecision struct {
	BuildingID string `yaml:"building_id" json:"building_id"`

	StandardTotalNominal  decimal.Decimal `yaml:"standard_total_nominal" json:"standard_total_nominal"`
	StandardTotalNPV      decimal.Decimal `yaml:"standard_total_npv" json:"standard_total_npv"`
	AlternateTotalNominal decimal.Decimal `yaml:"alternate_total_nominal" json:"alternate_total_nominal"`
	AlternateTotalNPV     decimal.Decimal `yaml:"alternate_total_npv" json:"alternate_total_npv"`

	// NPVAdvantageOfAlternate is standard NPV minus alternate NPV; positive
	// means switching to the alternate path saves money in present-value
	// terms.
	NPVAdvantageOfAlternate decimal.Decimal `yaml:"npv_advantage_of_alternate" json:"npv_advantage_of_alternate"`

	RecommendedPath PathKind       `yaml:"recommended_path" json:"recommended_path"`
	Rationale       Rationale      `yaml:"rationale" json:"rationale"`
	ConfidenceTier  ConfidenceTier `yaml:"confidence_tier" json:"confidence_tier"`

	// FinalReductionPct is the percentage reduction still required at the
	// final standard target; DifficultyScore is its bucketed 0-100 score.
	FinalReductionPct decimal.Decimal `yaml:"final_reduction_pct" json:"final_reduction_pct"`
	DifficultyScore   int             `yaml:"difficulty_score" json:"difficulty_score"`
}
