package cleanerbot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/cleanerbot/internal/logging"
	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
	"github.com/aretw0/cleanerbot/pkg/robot"
	"github.com/aretw0/cleanerbot/pkg/scenario"
	"github.com/aretw0/cleanerbot/pkg/strategy"
)

// Version is the release of the simulator.
const Version = "0.3.0"

// Simulation binds a grid, a robot and a strategy for a single cleaning run.
type Simulation struct {
	Name string

	grid     *grid.Grid
	strategy robot.Strategy
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	robot    *robot.Robot
}

// Report summarizes a finished run.
type Report struct {
	Scenario      string       `json:"scenario"`
	Strategy      string       `json:"strategy"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Position      domain.Point `json:"position"`
	DirtRemaining int          `json:"dirt_remaining"`
	Stats         robot.Stats  `json:"stats"`
}

// Option defines a functional option for configuring the Simulation.
type Option func(*Simulation)

// WithStrategy selects the traversal strategy (default: PerimeterHugger).
func WithStrategy(s robot.Strategy) Option {
	return func(sim *Simulation) {
		sim.strategy = s
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls accumulate.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(sim *Simulation) {
		sim.hooks = domain.MergeHooks(sim.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(sim *Simulation) {
		sim.logger = logger
	}
}

// WithName labels the simulation in logs and reports.
func WithName(name string) Option {
	return func(sim *Simulation) {
		sim.Name = name
	}
}

// New prepares a simulation over an already seeded grid.
// The grid stays owned by the caller and can be inspected after Run.
func New(g *grid.Grid, opts ...Option) (*Simulation, error) {
	if g == nil {
		return nil, errors.New("simulation requires a grid")
	}
	sim := &Simulation{grid: g}
	for _, opt := range opts {
		opt(sim)
	}

	if sim.strategy == nil {
		sim.strategy = strategy.PerimeterHugger{}
	}
	if sim.logger == nil {
		sim.logger = logging.NewNop()
	}
	if sim.Name != "" {
		sim.logger = sim.logger.With("scenario", sim.Name)
	}

	r, err := robot.New(g, sim.strategy,
		robot.WithLogger(sim.logger),
		robot.WithLifecycleHooks(sim.hooks),
	)
	if err != nil {
		return nil, err
	}
	sim.robot = r
	return sim, nil
}

// FromScenario builds the scenario's grid and prepares a simulation over it.
// The scenario's strategy applies unless WithStrategy overrides it.
func FromScenario(sc scenario.Scenario, opts ...Option) (*Simulation, error) {
	g, err := sc.Build()
	if err != nil {
		return nil, err
	}

	base := []Option{WithName(sc.Name)}
	if sc.Strategy != "" {
		s, err := strategy.Lookup(sc.Strategy)
		if err != nil {
			return nil, err
		}
		base = append(base, WithStrategy(s))
	}
	return New(g, append(base, opts...)...)
}

// Grid returns the simulated grid.
func (s *Simulation) Grid() *grid.Grid { return s.grid }

// Robot returns the robot bound to the grid.
func (s *Simulation) Robot() *robot.Robot { return s.robot }

// Run performs the cleaning run. The report is returned even when the run
// was interrupted, together with the error.
func (s *Simulation) Run(ctx context.Context) (*Report, error) {
	err := s.robot.Run(ctx)
	return s.report(), err
}

func (s *Simulation) report() *Report {
	return &Report{
		Scenario:      s.Name,
		Strategy:      s.strategy.Name(),
		Width:         s.grid.Width(),
		Height:        s.grid.Height(),
		Position:      s.robot.Position(),
		DirtRemaining: s.grid.DirtRemaining(),
		Stats:         s.robot.Stats(),
	}
}
