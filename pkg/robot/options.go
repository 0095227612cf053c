package robot

import (
	"log/slog"

	"github.com/aretw0/cleanerbot/pkg/domain"
)

// Option defines a functional option for configuring the Robot.
type Option func(*Robot)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Robot) {
		r.logger = logger
	}
}

// WithLifecycleHooks registers observers for the run.
// Calling it more than once merges the hook sets.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Robot) {
		r.hooks = domain.MergeHooks(r.hooks, hooks)
	}
}
