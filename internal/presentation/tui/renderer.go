package tui

import (
	"strings"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
	"github.com/muesli/termenv"
)

// Title and legend printed above every frame.
const (
	Title  = "Vacuum cleaner robot simulation"
	Legend = "Legend: #=Obstacle, D=Dirt, .=Empty, R=Robot, C=Cleaned"
)

var palette = map[string]string{
	domain.Dirt.Symbol():     "#b45309",
	domain.Obstacle.Symbol(): "#64748b",
	domain.Cleaned.Symbol():  "#22c55e",
	domain.RobotSymbol:       "#818cf8",
}

// Renderer draws grid snapshots as text.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer returns a renderer for the given color profile.
// termenv.Ascii produces plain text.
func NewRenderer(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

// Grid draws one row per line, cells separated by a space.
// The robot's cell shows R whatever its state.
func (r *Renderer) Grid(g *grid.Grid, robot domain.Point) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			sym := domain.RobotSymbol
			if x != robot.X || y != robot.Y {
				state, _ := g.Cell(x, y)
				sym = state.Symbol()
			}
			b.WriteString(r.paint(sym))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Frame is Grid preceded by the title and legend.
func (r *Renderer) Frame(g *grid.Grid, robot domain.Point) string {
	var b strings.Builder
	b.WriteString(r.profile.String(Title).Bold().String())
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(Title)))
	b.WriteByte('\n')
	b.WriteString(Legend)
	b.WriteByte('\n')
	b.WriteString(r.Grid(g, robot))
	return b.String()
}

func (r *Renderer) paint(sym string) string {
	hex, ok := palette[sym]
	if !ok {
		return sym
	}
	return r.profile.String(sym).Foreground(r.profile.Color(hex)).String()
}
