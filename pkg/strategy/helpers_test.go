package strategy_test

import (
	"testing"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
	"github.com/aretw0/cleanerbot/pkg/robot"
	"github.com/stretchr/testify/require"
)

// trace records every position the robot successfully moved to, in order.
type trace struct {
	moves   []domain.Point
	blocked []domain.Point
}

func (tr *trace) visited() map[domain.Point]int {
	seen := make(map[domain.Point]int, len(tr.moves))
	for _, p := range tr.moves {
		seen[p]++
	}
	return seen
}

func newRobot(t *testing.T, g *grid.Grid, s robot.Strategy) (*robot.Robot, *trace) {
	t.Helper()
	tr := &trace{}
	r, err := robot.New(g, s, robot.WithLifecycleHooks(domain.LifecycleHooks{
		OnMove:    func(e *domain.StepEvent) { tr.moves = append(tr.moves, e.Position) },
		OnBlocked: func(e *domain.StepEvent) { tr.blocked = append(tr.blocked, e.Position) },
	}))
	require.NoError(t, err)
	return r, tr
}

func newGrid(t *testing.T, width, height int, dirt, obstacles []domain.Point) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height)
	require.NoError(t, err)
	for _, p := range dirt {
		require.NoError(t, g.MarkDirt(p.X, p.Y))
	}
	for _, p := range obstacles {
		require.NoError(t, g.MarkObstacle(p.X, p.Y))
	}
	return g
}

func isPerimeter(g *grid.Grid, p domain.Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.Width()-1 || p.Y == g.Height()-1
}
