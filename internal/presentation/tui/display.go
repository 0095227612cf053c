package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/grid"
	"github.com/muesli/termenv"
)

// DefaultDelay paces the animation so a human can follow it.
const DefaultDelay = 200 * time.Millisecond

// Display redraws the grid after every move and clean.
type Display struct {
	out       *termenv.Output
	grid      *grid.Grid
	renderer  *Renderer
	delay     time.Duration
	clear     bool
	interrupt <-chan struct{}
	frames    int
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithDelay sets the pause after each frame. Zero disables pacing.
func WithDelay(delay time.Duration) DisplayOption {
	return func(d *Display) {
		d.delay = delay
	}
}

// WithClearScreen clears the terminal before each frame.
func WithClearScreen(clear bool) DisplayOption {
	return func(d *Display) {
		d.clear = clear
	}
}

// WithProfile sets the color profile (termenv.Ascii for plain text).
func WithProfile(p termenv.Profile) DisplayOption {
	return func(d *Display) {
		d.renderer = NewRenderer(p)
	}
}

// WithInterruptSource cuts the current pause short when ch is closed.
func WithInterruptSource(ch <-chan struct{}) DisplayOption {
	return func(d *Display) {
		d.interrupt = ch
	}
}

// NewDisplay creates a display writing frames to w.
func NewDisplay(w io.Writer, g *grid.Grid, opts ...DisplayOption) *Display {
	d := &Display{
		out:      termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)),
		grid:     g,
		renderer: NewRenderer(termenv.Ascii),
		delay:    DefaultDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Show draws the grid with the robot at pos, then waits for the configured delay.
func (d *Display) Show(pos domain.Point) {
	if d.clear {
		d.out.ClearScreen()
	}
	fmt.Fprint(d.out, d.renderer.Frame(d.grid, pos))
	d.frames++
	d.pause()
}

// Frames returns the number of frames drawn.
func (d *Display) Frames() int { return d.frames }

// Hooks redraws on every successful move and clean.
func (d *Display) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMove:  func(e *domain.StepEvent) { d.Show(e.Position) },
		OnClean: func(e *domain.StepEvent) { d.Show(e.Position) },
	}
}

func (d *Display) pause() {
	if d.delay <= 0 {
		return
	}
	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-d.interrupt:
	}
}
