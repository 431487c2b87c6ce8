package config

import (
	"fmt"
	"os"

	"github.com/openbps/bpscalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// PortfolioInput is the on-disk analysis input: an optional PenaltyConfig
// override, the MAI designation lookup, and the building records. The
// data-loading layer that produces these files owns column mapping; the
// engine only ever sees this schema.
type PortfolioInput struct {
	Config          *domain.PenaltyConfig   `yaml:"config,omitempty" json:"config,omitempty"`
	MAIDesignations map[string]bool         `yaml:"mai_designations,omitempty" json:"mai_designations,omitempty"`
	Buildings       []domain.BuildingRecord `yaml:"buildings" json:"buildings"`
}

// InputParser handles parsing of portfolio input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a portfolio from a YAML file. A missing config block
// selects the program defaults.
func (ip *InputParser) LoadFromFile(filename string) (*PortfolioInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	// Start from the program defaults so a partial config block overrides
	// only the fields it names.
	input := PortfolioInput{Config: domain.DefaultPenaltyConfig()}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePortfolio(&input); err != nil {
		return nil, fmt.Errorf("portfolio validation failed: %w", err)
	}

	return &input, nil
}

// ValidatePortfolio validates the loaded portfolio. Per-building data
// quality problems (zero baseline, non-positive area) are deliberately left
// to the engine, which surfaces them as structured per-building conditions;
// validation here covers only what would make the whole batch meaningless.
func (ip *InputParser) ValidatePortfolio(input *PortfolioInput) error {
	if err := input.Config.Validate(); err != nil {
		return err
	}

	if len(input.Buildings) == 0 {
		return fmt.Errorf("no buildings provided")
	}

	seen := make(map[string]bool, len(input.Buildings))
	for i, b := range input.Buildings {
		if b.BuildingID == "" {
			return fmt.Errorf("building %d: building_id is required", i)
		}
		if seen[b.BuildingID] {
			return fmt.Errorf("building %d: duplicate building_id %s", i, b.BuildingID)
		}
		seen[b.BuildingID] = true
	}

	return nil
}
