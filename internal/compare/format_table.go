package compare

import (
	"fmt"
	"strings"

	"github.com/openbps/bpscalc/internal/domain"
)

// TableFormatter formats portfolio results as a console table
type TableFormatter struct{}

// Format generates a formatted table of per-building decisions
func (tf *TableFormatter) Format(result *PortfolioResult) string {
	var sb strings.Builder

	sb.WriteString("COMPLIANCE PATH COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 110) + "\n")

	idWidth := 14
	numWidth := 16
	pathWidth := 10
	rationaleWidth := 34

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %-*s %-*s %s\n",
		idWidth, "Building",
		numWidth, "Standard NPV",
		numWidth, "Alternate NPV",
		numWidth, "NPV Advantage",
		pathWidth, "Path",
		rationaleWidth, "Rationale",
		"Confidence"))
	sb.WriteString(strings.Repeat("-", 110) + "\n")

	for _, d := range result.Decisions {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %-*s %-*s %s\n",
			idWidth, d.BuildingID,
			numWidth, "$"+d.StandardTotalNPV.StringFixed(0),
			numWidth, "$"+d.AlternateTotalNPV.StringFixed(0),
			numWidth, "$"+d.NPVAdvantageOfAlternate.StringFixed(0),
			pathWidth, string(d.RecommendedPath),
			rationaleWidth, string(d.Rationale),
			string(d.ConfidenceTier)))
	}

	sb.WriteString(strings.Repeat("=", 110) + "\n")
	sb.WriteString(fmt.Sprintf("Scored: %d", len(result.Decisions)))

	if len(result.Failures) > 0 {
		sb.WriteString(fmt.Sprintf("  Excluded: %d\n\n", len(result.Failures)))
		sb.WriteString("EXCLUDED BUILDINGS\n")
		sb.WriteString(strings.Repeat("-", 110) + "\n")
		for _, f := range result.Failures {
			sb.WriteString(fmt.Sprintf("%-*s %s\n", idWidth, f.BuildingID, f.Reason))
		}
	} else {
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSchedule generates a formatted table for a single penalty schedule
func (tf *TableFormatter) FormatSchedule(schedule *domain.PenaltySchedule) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("PENALTY SCHEDULE — building %s, %s path\n", schedule.BuildingID, schedule.Path))
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("%6s %8s %10s %10s %8s %7s %14s %14s\n",
		"Target", "Payment", "Actual", "Target", "Gap", "Rate", "Penalty", "NPV"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	for _, item := range schedule.Items {
		marker := ""
		if item.Continuation {
			marker = " *"
		}
		sb.WriteString(fmt.Sprintf("%6d %8d %10s %10s %8s %7s %14s %14s%s\n",
			item.TargetYear, item.PaymentYear,
			item.ActualEUI.StringFixed(1),
			item.FinalTargetEUI.StringFixed(1),
			item.GapEUI.StringFixed(1),
			item.PenaltyRate.StringFixed(2),
			"$"+item.PenaltyAmount.StringFixed(2),
			"$"+item.PenaltyNPV.StringFixed(2),
			marker))
	}

	sb.WriteString(strings.Repeat("-", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Total nominal: $%s", schedule.TotalNominal().StringFixed(2)))
	if schedule.Discounted {
		sb.WriteString(fmt.Sprintf("   Total NPV: $%s", schedule.TotalNPV().StringFixed(2)))
	}
	sb.WriteString("\n* continuation year (final-year gap assumed to persist)\n")

	return sb.String()
}
