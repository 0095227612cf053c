package scenario

import (
	"fmt"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
	"github.com/aretw0/cleanerbot/pkg/strategy"
)

// Scenario describes a grid to clean: its size, the seeded cells and,
// optionally, the strategy to use.
type Scenario struct {
	Name      string         `yaml:"name" mapstructure:"name"`
	Width     int            `yaml:"width" mapstructure:"width"`
	Height    int            `yaml:"height" mapstructure:"height"`
	Strategy  string         `yaml:"strategy,omitempty" mapstructure:"strategy"`
	Dirt      []domain.Point `yaml:"dirt" mapstructure:"dirt"`
	Obstacles []domain.Point `yaml:"obstacles" mapstructure:"obstacles"`
}

// MaxCells caps the area a scenario may ask for.
const MaxCells = 1 << 20

// Default is the layout the simulator runs when no scenario file is given.
func Default() Scenario {
	return Scenario{
		Name:   "default",
		Width:  20,
		Height: 10,
		Dirt: []domain.Point{
			{X: 5, Y: 3},
			{X: 10, Y: 8},
		},
		Obstacles: []domain.Point{
			{X: 2, Y: 5},
			{X: 12, Y: 1},
		},
	}
}

// Validate checks every field and reports all failures at once.
func (s Scenario) Validate() error {
	var errs []error

	if s.Width < 1 {
		errs = append(errs, &ValidationError{Key: "width", Reason: fmt.Sprintf("must be at least 1, got %d", s.Width)})
	}
	if s.Height < 1 {
		errs = append(errs, &ValidationError{Key: "height", Reason: fmt.Sprintf("must be at least 1, got %d", s.Height)})
	}
	if s.Width >= 1 && s.Height >= 1 && s.Width > MaxCells/s.Height {
		errs = append(errs, &ValidationError{
			Key:    "width",
			Reason: fmt.Sprintf("%dx%d exceeds the %d cell limit", s.Width, s.Height, MaxCells),
		})
	}
	if s.Strategy != "" {
		if _, err := strategy.Lookup(s.Strategy); err != nil {
			errs = append(errs, &ValidationError{Key: "strategy", Reason: err.Error()})
		}
	}

	inside := func(p domain.Point) bool {
		return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
	}

	obstacles := make(map[domain.Point]bool, len(s.Obstacles))
	for i, p := range s.Obstacles {
		if !inside(p) {
			errs = append(errs, &ValidationError{
				Key:    fmt.Sprintf("obstacles[%d]", i),
				Reason: fmt.Sprintf("%s is outside the %dx%d grid", p, s.Width, s.Height),
			})
		}
		obstacles[p] = true
	}
	for i, p := range s.Dirt {
		key := fmt.Sprintf("dirt[%d]", i)
		if !inside(p) {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: fmt.Sprintf("%s is outside the %dx%d grid", p, s.Width, s.Height),
			})
			continue
		}
		if obstacles[p] {
			errs = append(errs, &ValidationError{Key: key, Reason: fmt.Sprintf("%s is also an obstacle", p)})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Build validates the scenario and returns a freshly seeded grid.
func (s Scenario) Build() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g, err := grid.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Dirt {
		if err := g.MarkDirt(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	for _, p := range s.Obstacles {
		if err := g.MarkObstacle(p.X, p.Y); err != nil {
			return nil, err
		}
	}
	return g, nil
}
