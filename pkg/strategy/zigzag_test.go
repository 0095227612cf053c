package strategy_test

import (
	"context"
	"testing"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzag_CoversEveryCell(t *testing.T) {
	g := newGrid(t, 10, 6,
		[]domain.Point{{X: 5, Y: 3}, {X: 8, Y: 2}, {X: 0, Y: 5}},
		nil,
	)
	r, tr := newRobot(t, g, strategy.Zigzag{})

	require.NoError(t, r.Run(context.Background()))

	assert.False(t, g.HasRemainingDirt())
	assert.Len(t, tr.moves, 60)
	assert.Len(t, tr.visited(), 60)

	// Second row runs right to left.
	assert.Equal(t, domain.Pt(9, 0), tr.moves[9])
	assert.Equal(t, domain.Pt(9, 1), tr.moves[10])
	assert.Equal(t, domain.Pt(0, 1), tr.moves[19])
	// Six rows end on the left edge.
	assert.Equal(t, domain.Pt(0, 5), r.Position())
}

func TestZigzag_SkipsObstacles(t *testing.T) {
	g := newGrid(t, 20, 10,
		[]domain.Point{{X: 5, Y: 3}, {X: 10, Y: 8}},
		[]domain.Point{{X: 2, Y: 5}, {X: 12, Y: 1}},
	)
	r, tr := newRobot(t, g, strategy.Zigzag{})

	require.NoError(t, r.Run(context.Background()))

	assert.False(t, g.HasRemainingDirt())
	assert.Len(t, tr.moves, 198)
	assert.ElementsMatch(t, []domain.Point{{X: 12, Y: 1}, {X: 2, Y: 5}}, tr.blocked)
	assert.True(t, g.IsObstacle(2, 5))
	assert.True(t, g.IsObstacle(12, 1))
}
