package strategy

import (
	"context"

	"github.com/aretw0/cleanerbot/pkg/robot"
)

// Spiral sweeps concentric rings from the outside in: top row, right column,
// bottom row, left column, then shrinks the bounds. Before every step it checks
// for remaining dirt and stops as soon as the grid is clean.
//
// Obstacles are stepped over, not detoured around: the move fails, the robot
// stays put, and the sweep continues with the next coordinate.
type Spiral struct{}

// Name returns the registry name of the strategy.
func (Spiral) Name() string { return NameSpiral }

// Clean sweeps the rings until the grid is clean, the rings run out or ctx is done.
func (Spiral) Clean(ctx context.Context, r *robot.Robot) error {
	g := r.Grid()
	left, right := 0, g.Width()-1
	top, bottom := 0, g.Height()-1

	// step reports false when the run must stop.
	step := func(x, y int) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !g.HasRemainingDirt() {
			return false, nil
		}
		visit(r, x, y)
		return true, nil
	}

	for left <= right && top <= bottom {
		for x := left; x <= right; x++ {
			if ok, err := step(x, top); !ok {
				return err
			}
		}
		top++

		for y := top; y <= bottom; y++ {
			if ok, err := step(right, y); !ok {
				return err
			}
		}
		right--

		// These guards skip the sweeps of a collapsed ring. By then every cell
		// has been visited and no dirt is left, so an unguarded sweep would stop
		// at its first step: the move sequence is the same either way.
		if top <= bottom {
			for x := right; x >= left; x-- {
				if ok, err := step(x, bottom); !ok {
					return err
				}
			}
		}
		bottom--

		if left <= right {
			for y := bottom; y >= top; y-- {
				if ok, err := step(left, y); !ok {
					return err
				}
			}
		}
		left++
	}
	return nil
}
