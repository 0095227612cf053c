package grid

import (
	"fmt"
	"math"

	"github.com/aretw0/cleanerbot/pkg/domain"
)

// Grid owns the state of a width×height area.
type Grid struct {
	width  int
	height int
	cells  []domain.CellState
	dirt   int
}

// New creates an empty grid. Both dimensions must be at least 1 and their
// product must fit in an int.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows the cell count", domain.ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]domain.CellState, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether 0 <= x < width and 0 <= y < height.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns the state at (x, y). ok is false outside the grid.
func (g *Grid) Cell(x, y int) (state domain.CellState, ok bool) {
	if !g.InBounds(x, y) {
		return domain.Empty, false
	}
	return g.cells[g.index(x, y)], true
}

// IsDirt reports whether (x, y) is in bounds and dirty.
func (g *Grid) IsDirt(x, y int) bool {
	return g.is(x, y, domain.Dirt)
}

// IsObstacle reports whether (x, y) is in bounds and blocked.
func (g *Grid) IsObstacle(x, y int) bool {
	return g.is(x, y, domain.Obstacle)
}

// MarkDirt seeds dirt at (x, y), replacing whatever was there.
func (g *Grid) MarkDirt(x, y int) error {
	return g.seed(x, y, domain.Dirt)
}

// MarkObstacle seeds an obstacle at (x, y), replacing whatever was there.
func (g *Grid) MarkObstacle(x, y int) error {
	return g.seed(x, y, domain.Obstacle)
}

// MarkCleaned sets (x, y) to Cleaned. Out of bounds it does nothing.
func (g *Grid) MarkCleaned(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.set(x, y, domain.Cleaned)
}

// HasRemainingDirt reports whether any cell is still dirty.
func (g *Grid) HasRemainingDirt() bool {
	return g.dirt > 0
}

// DirtRemaining returns the number of dirty cells.
func (g *Grid) DirtRemaining() int {
	return g.dirt
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(state domain.CellState) int {
	if state == domain.Dirt {
		return g.dirt
	}
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

func (g *Grid) is(x, y int, state domain.CellState) bool {
	return g.InBounds(x, y) && g.cells[g.index(x, y)] == state
}

func (g *Grid) seed(x, y int, state domain.CellState) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: %s on %dx%d grid", domain.ErrOutOfRange, domain.Pt(x, y), g.width, g.height)
	}
	g.set(x, y, state)
	return nil
}

// set keeps the dirt counter in step with the cell contents.
func (g *Grid) set(x, y int, state domain.CellState) {
	i := g.index(x, y)
	prev := g.cells[i]
	if prev == domain.Dirt {
		g.dirt--
	}
	if state == domain.Dirt {
		g.dirt++
	}
	g.cells[i] = state
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
