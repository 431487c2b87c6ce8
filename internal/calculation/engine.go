package calculation

import (
	"fmt"

	"github.com/openbps/bpscalc/internal/domain"
)

// Engine wires the target adjuster, MAI resolver, penalty calculator and
// NPV engine together behind one entry point. It is stateless and safe to
// share across goroutines as long as the config is not mutated mid-batch.
type Engine struct {
	Config     *domain.PenaltyConfig
	Resolver   *MAIResolver
	Calculator *PenaltyCalculator
	NPV        *NPVEngine
	Logger     Logger
}

// NewEngine creates an engine after validating the config. A nil config
// selects the program defaults; a nil resolver means MAI status comes only
// from each building record.
func NewEngine(cfg *domain.PenaltyConfig, resolver *MAIResolver) (*Engine, error) {
	if cfg == nil {
		cfg = domain.DefaultPenaltyConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		Config:     cfg,
		Resolver:   resolver,
		Calculator: NewPenaltyCalculator(cfg, resolver),
		NPV:        NewNPVEngine(cfg),
		Logger:     NopLogger{},
	}, nil
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// BuildSchedule expands the building's penalty schedule for a path without
// discounting.
func (e *Engine) BuildSchedule(b *domain.BuildingRecord, path domain.CompliancePath) (*domain.PenaltySchedule, error) {
	schedule, err := e.Calculator.BuildSchedule(b, path)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("building %s: %s path, %d line items, nominal total %s",
		b.BuildingID, path.Kind, len(schedule.Items), schedule.TotalNominal().StringFixed(2))
	return schedule, nil
}

// DiscountedSchedule expands and discounts the building's penalty schedule
// for a path.
func (e *Engine) DiscountedSchedule(b *domain.BuildingRecord, path domain.CompliancePath) (*domain.PenaltySchedule, error) {
	schedule, err := e.BuildSchedule(b, path)
	if err != nil {
		return nil, err
	}
	discounted, err := e.NPV.Discount(schedule)
	if err != nil {
		return nil, fmt.Errorf("discounting %s schedule for building %s: %w", path.Kind, b.BuildingID, err)
	}
	return discounted, nil
}
