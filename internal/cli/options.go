package cli

import (
	"io"
	"os"
	"time"

	"github.com/aretw0/cleanerbot/internal/presentation/tui"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ScenarioPath string
	Strategy     string
	Delay        time.Duration
	Headless     bool
	NoColor      bool
	Debug        bool
	Metrics      bool

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// DefaultRunOptions returns the options used when no flag is given.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Delay:  tui.DefaultDelay,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

func (o *RunOptions) normalize() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Headless {
		o.Delay = 0
	}
}
