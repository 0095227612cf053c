package robot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
)

// Strategy drives a Robot until its traversal is complete.
// Implementations keep no state between runs.
type Strategy interface {
	Name() string
	Clean(ctx context.Context, r *Robot) error
}

// Stats counts what a robot did during its run.
type Stats struct {
	Moves        int           `json:"moves"`
	BlockedMoves int           `json:"blocked_moves"`
	CellsCleaned int           `json:"cells_cleaned"`
	Duration     time.Duration `json:"duration"`
}

// Robot moves over a grid it does not own.
type Robot struct {
	grid     *grid.Grid
	strategy Strategy
	pos      domain.Point
	stats    Stats
	spent    bool

	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// New binds a robot to a grid and a strategy. The robot starts at (0,0)
// whatever that cell holds.
func New(g *grid.Grid, s Strategy, opts ...Option) (*Robot, error) {
	if g == nil {
		return nil, errors.New("robot requires a grid")
	}
	if s == nil {
		return nil, errors.New("robot requires a strategy")
	}
	r := &Robot{
		grid:     g,
		strategy: s,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Grid returns the grid the robot works on.
func (r *Robot) Grid() *grid.Grid { return r.grid }

// Position returns the current position.
func (r *Robot) Position() domain.Point { return r.pos }

// Strategy returns the bound strategy.
func (r *Robot) Strategy() Strategy { return r.strategy }

// Stats returns the counters collected so far.
func (r *Robot) Stats() Stats { return r.stats }

// MoveTo moves to (x, y) if it is inside the grid and not an obstacle.
// On failure the position is unchanged.
func (r *Robot) MoveTo(x, y int) bool {
	dest := domain.Pt(x, y)
	if !r.grid.InBounds(x, y) || r.grid.IsObstacle(x, y) {
		r.stats.BlockedMoves++
		if r.hooks.OnBlocked != nil {
			r.hooks.OnBlocked(domain.NewStepEvent(domain.EventBlocked, r.strategy.Name(), r.pos, dest))
		}
		return false
	}

	from := r.pos
	r.pos = dest
	r.stats.Moves++
	if r.hooks.OnMove != nil {
		r.hooks.OnMove(domain.NewStepEvent(domain.EventMove, r.strategy.Name(), from, dest))
	}
	return true
}

// MoveBy moves relative to the current position. See MoveTo.
func (r *Robot) MoveBy(dx, dy int) bool {
	dest := r.pos.Add(dx, dy)
	return r.MoveTo(dest.X, dest.Y)
}

// CleanHere cleans the current cell if it is dirty. Otherwise it does nothing.
func (r *Robot) CleanHere() {
	if !r.grid.IsDirt(r.pos.X, r.pos.Y) {
		return
	}
	r.grid.MarkCleaned(r.pos.X, r.pos.Y)
	r.stats.CellsCleaned++
	if r.hooks.OnClean != nil {
		r.hooks.OnClean(domain.NewStepEvent(domain.EventClean, r.strategy.Name(), r.pos, r.pos))
	}
}

// Run hands control to the bound strategy and returns when it terminates.
// A robot runs once; later calls return domain.ErrRobotSpent.
func (r *Robot) Run(ctx context.Context) error {
	if r.spent {
		return domain.ErrRobotSpent
	}
	r.spent = true

	name := r.strategy.Name()
	start := time.Now()
	r.logger.Info("Cleaning started", "strategy", name, "dirt", r.grid.DirtRemaining())
	if r.hooks.OnRunStart != nil {
		r.hooks.OnRunStart(r.runEvent(domain.EventRunStart, start, nil))
	}

	err := r.strategy.Clean(ctx, r)
	if err != nil {
		err = fmt.Errorf("strategy %s: %w", name, err)
	}
	r.stats.Duration = time.Since(start)

	r.logger.Info("Cleaning finished",
		"strategy", name,
		"moves", r.stats.Moves,
		"cleaned", r.stats.CellsCleaned,
		"remaining", r.grid.DirtRemaining(),
		"error", err,
	)
	if r.hooks.OnRunFinish != nil {
		r.hooks.OnRunFinish(r.runEvent(domain.EventRunFinish, time.Now(), err))
	}
	return err
}

func (r *Robot) runEvent(t domain.EventType, at time.Time, err error) *domain.RunEvent {
	return &domain.RunEvent{
		EventBase:     domain.EventBase{Timestamp: at, Type: t},
		Strategy:      r.strategy.Name(),
		Position:      r.pos,
		DirtRemaining: r.grid.DirtRemaining(),
		Err:           err,
	}
}
