package strategy_test

import (
	"context"
	"testing"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpiral_StopsWhenClean(t *testing.T) {
	obstacles := []domain.Point{{X: 2, Y: 4}, {X: 7, Y: 1}}
	g := newGrid(t, 10, 6,
		[]domain.Point{{X: 5, Y: 3}, {X: 8, Y: 2}},
		obstacles,
	)
	r, tr := newRobot(t, g, strategy.Spiral{})

	require.NoError(t, r.Run(context.Background()))

	assert.False(t, g.HasRemainingDirt())
	assert.Equal(t, domain.Pt(5, 3), r.Position(), "stops on the last dirty cell")

	visited := tr.visited()
	for _, o := range obstacles {
		assert.NotContains(t, visited, o)
	}
	assert.ElementsMatch(t, obstacles, tr.blocked, "obstacles are stepped over")

	// The third ring is abandoned halfway through its bottom row.
	assert.NotContains(t, visited, domain.Pt(4, 3))
	assert.NotContains(t, visited, domain.Pt(2, 3))

	for p, n := range visited {
		if p != domain.Pt(0, 0) {
			assert.Equal(t, 1, n, "cell %s visited more than once", p)
		}
	}
}

func TestSpiral_NoDirt(t *testing.T) {
	g := newGrid(t, 10, 6, nil, []domain.Point{{X: 3, Y: 3}})
	r, tr := newRobot(t, g, strategy.Spiral{})

	require.NoError(t, r.Run(context.Background()))

	assert.Empty(t, tr.moves)
	assert.Empty(t, tr.blocked)
	assert.Equal(t, domain.Pt(0, 0), r.Position())
}

func TestSpiral_FullCoverage(t *testing.T) {
	// Dirt in the last cell of the innermost ring forces every ring to be swept.
	g := newGrid(t, 5, 4, []domain.Point{{X: 1, Y: 2}}, nil)
	r, tr := newRobot(t, g, strategy.Spiral{})

	require.NoError(t, r.Run(context.Background()))

	assert.False(t, g.HasRemainingDirt())
	assert.Len(t, tr.visited(), 5*4)
	assert.Len(t, tr.moves, 5*4, "no cell is swept twice")
}

func TestSpiral_SingleColumn(t *testing.T) {
	g := newGrid(t, 1, 5, []domain.Point{{X: 0, Y: 4}}, nil)
	r, tr := newRobot(t, g, strategy.Spiral{})

	require.NoError(t, r.Run(context.Background()))

	assert.False(t, g.HasRemainingDirt())
	assert.Len(t, tr.moves, 5)
}

func TestSpiral_Cancelled(t *testing.T) {
	g := newGrid(t, 10, 6, []domain.Point{{X: 5, Y: 3}}, nil)
	r, tr := newRobot(t, g, strategy.Spiral{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, tr.moves)
	assert.True(t, g.HasRemainingDirt())
}
