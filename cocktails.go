package cocktails

import (
	"context"

	"github.com/urschrei/cocktails/solver"
)

// Solve runs branch-and-bound search over the given problem and returns the
// best solution found. With the default options the search is exact: unless
// the iteration cap fires (Solution.Exhausted is false), the returned score
// is the certified optimum.
//
// The context is consulted at every search node; cancellation stops the
// search cleanly and yields the best solution found so far.
func Solve(ctx context.Context, p *solver.Problem, opts ...Option) (*solver.Solution, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}

	bb, err := solver.New(p, solver.Options{
		MaxSize:          o.budget,
		MaxCalls:         o.maxCalls,
		Bounds:           o.bounds,
		Logger:           o.logger.Logger,
		ProgressInterval: o.progressInterval,
	})
	if err != nil {
		return nil, translateError(err)
	}

	sol, err := bb.Run(ctx)
	o.logger.LogSolve(ctx, o.budget, sol, err)
	if err != nil {
		return nil, translateError(err)
	}
	return sol, nil
}
