package domain

import (
	"github.com/shopspring/decimal"
)

// PenaltyLineItem is one row of a penalty schedule: a single assessment
// year for one building under one compliance path. PenaltyNPV is zero until
// the schedule has been discounted.
type PenaltyLineItem struct {
	TargetYear       int             `yaml:"target_year" json:"target_year"`
	PaymentYear      int             `yaml:"payment_year" json:"payment_year"`
	ActualEUI        decimal.Decimal `yaml:"actual_eui" json:"actual_eui"`
	RawTargetEUI     decimal.Decimal `yaml:"raw_target_eui" json:"raw_target_eui"`
	FinalTargetEUI   decimal.Decimal `yaml:"final_target_eui" json:"final_target_eui"`
	TargetAdjustment string          `yaml:"target_adjustment,omitempty" json:"target_adjustment,omitempty"`
	GapEUI           decimal.Decimal `yaml:"gap_eui" json:"gap_eui"`
	PenaltyRate      decimal.Decimal `yaml:"penalty_rate" json:"penalty_rate"`
	PenaltyAmount    decimal.Decimal `yaml:"penalty_amount" json:"penalty_amount"`
	PenaltyNPV       decimal.Decimal `yaml:"penalty_npv" json:"penalty_npv"`
	CompliancePath   PathKind        `yaml:"compliance_path" json:"compliance_path"`

	// Continuation marks the annual items appended after the final target
	// year for a building that remains non-compliant.
	Continuation bool `yaml:"continuation,omitempty" json:"continuation,omitempty"`
}

// PenaltySchedule is the ordered penalty timeline for one building under
// one compliance path: the path's target years plus any continuation items.
type PenaltySchedule struct {
	BuildingID string            `yaml:"building_id" json:"building_id"`
	Path       PathKind          `yaml:"path" json:"path"`
	Items      []PenaltyLineItem `yaml:"items" json:"items"`

	// Discounted is set once an NPVEngine has filled in PenaltyNPV.
	Discounted bool `yaml:"discounted,omitempty" json:"discounted,omitempty"`
}

// TotalNominal sums the undiscounted penalty amounts.
func (s *PenaltySchedule) TotalNominal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.PenaltyAmount)
	}
	return total
}

// TotalNPV sums the discounted penalty amounts. Zero until discounted.
func (s *PenaltySchedule) TotalNPV() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.PenaltyNPV)
	}
	return total
}

// TargetItems returns the line items for the path's target years,
// excluding continuation items.
func (s *PenaltySchedule) TargetItems() []PenaltyLineItem {
	items := make([]PenaltyLineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if !item.Continuation {
			items = append(items, item)
		}
	}
	return items
}

// Clone returns a deep copy of the schedule so discounting never mutates
// its input.
func (s *PenaltySchedule) Clone() *PenaltySchedule {
	clone := *s
	clone.Items = make([]PenaltyLineItem, len(s.Items))
	copy(clone.Items, s.Items)
	return &clone
}
