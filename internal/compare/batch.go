package compare

import (
	"github.com/openbps/bpscalc/internal/domain"
)

// BuildingFailure records a building that could not be scored, typically
// because of a missing baseline or invalid floor area.
type BuildingFailure struct {
	BuildingID string `json:"building_id"`
	Err        error  `json:"-"`
	Reason     string `json:"reason"`
}

// PortfolioResult holds the decisions for every scoreable building plus the
// buildings that failed, so one bad record never aborts a batch.
type PortfolioResult struct {
	Decisions []domain.ComplianceDecision `json:"decisions"`
	Failures  []BuildingFailure           `json:"failures,omitempty"`
}

// ComparePortfolio evaluates each building independently, collecting
// failures for review instead of propagating them. Buildings that cannot be
// scored are excluded from the decisions, never defaulted to a $0 penalty.
func (pc *PathComparator) ComparePortfolio(buildings []domain.BuildingRecord) *PortfolioResult {
	result := &PortfolioResult{
		Decisions: make([]domain.ComplianceDecision, 0, len(buildings)),
	}
	for i := range buildings {
		decision, err := pc.Compare(&buildings[i])
		if err != nil {
			pc.Engine.Logger.Warnf("building %s excluded from comparison: %v", buildings[i].BuildingID, err)
			result.Failures = append(result.Failures, BuildingFailure{
				BuildingID: buildings[i].BuildingID,
				Err:        err,
				Reason:     err.Error(),
			})
			continue
		}
		result.Decisions = append(result.Decisions, *decision)
	}
	return result
}
