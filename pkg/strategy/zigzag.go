package strategy

import (
	"context"

	"github.com/aretw0/cleanerbot/pkg/robot"
)

// Zigzag covers the grid row by row, alternating direction:
// row 0 left to right, row 1 right to left, and so on. Blocked cells are skipped.
type Zigzag struct{}

// Name returns the registry name of the strategy.
func (Zigzag) Name() string { return NameZigzag }

// Clean visits every row once, or stops early when ctx is done.
func (Zigzag) Clean(ctx context.Context, r *robot.Robot) error {
	g := r.Grid()
	dir := 1

	for y := 0; y < g.Height(); y++ {
		startX, endX := 0, g.Width()
		if dir < 0 {
			startX, endX = g.Width()-1, -1
		}
		for x := startX; x != endX; x += dir {
			if err := ctx.Err(); err != nil {
				return err
			}
			visit(r, x, y)
		}
		dir = -dir
	}
	return nil
}
