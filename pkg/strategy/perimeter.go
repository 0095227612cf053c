package strategy

import (
	"context"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/robot"
)

// perimeterSweeps is the order of the four sweeps: right, down, left, up.
var perimeterSweeps = []domain.Point{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
}

// PerimeterHugger makes a single pass around the outer ring of the grid.
// Each sweep runs until an edge or an obstacle stops it. It does not spiral
// inwards, so interior dirt is left behind.
type PerimeterHugger struct{}

// Name returns the registry name of the strategy.
func (PerimeterHugger) Name() string { return NamePerimeter }

// Clean cleans (0,0) and then walks right, down, left and up once each.
func (PerimeterHugger) Clean(ctx context.Context, r *robot.Robot) error {
	visit(r, 0, 0)

	for _, d := range perimeterSweeps {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !r.MoveBy(d.X, d.Y) {
				break
			}
			r.CleanHere()
		}
	}
	return nil
}
