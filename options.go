package cocktails

import (
	"time"

	"github.com/urschrei/cocktails/solver"
)

type options struct {
	budget           int
	maxCalls         int
	bounds           []solver.Bound
	logger           *Logger
	progressInterval time.Duration
}

// Option configures Solve behavior.
type Option func(*options)

func defaultOptions() *options {
	d := solver.DefaultOptions()
	return &options{
		budget:   d.MaxSize,
		maxCalls: d.MaxCalls,
		bounds:   d.Bounds,
		logger:   NoopLogger(),
	}
}

// WithBudget sets the ingredient budget: the maximum number of ingredients
// the solution may select. Must be between 2 and the universe size.
// Default: 12.
func WithBudget(n int) Option {
	return func(o *options) {
		o.budget = n
	}
}

// WithMaxCalls caps the number of search nodes evaluated. When the cap is
// reached, Solve returns the best solution found so far with
// Exhausted=false instead of a certified optimum.
// Default: 8,000,000.
func WithMaxCalls(n int) Option {
	return func(o *options) {
		o.maxCalls = n
	}
}

// WithBounds replaces the pruning bounds entirely. Passing no bounds
// disables pruning, turning the run into a plain exhaustive search. Still
// correct, but much slower on non-trivial instances.
func WithBounds(bounds ...solver.Bound) Option {
	return func(o *options) {
		o.bounds = bounds
	}
}

// WithCustomBounds appends user-supplied bounds to the default three.
// Custom bounds must be admissible; see the solver package documentation.
func WithCustomBounds(bounds ...solver.Bound) Option {
	return func(o *options) {
		o.bounds = append(o.bounds, bounds...)
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithProgressInterval throttles Debug-level progress logging during long
// searches. Default: one line per second.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}
