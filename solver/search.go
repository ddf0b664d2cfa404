package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/time/rate"

	"github.com/urschrei/cocktails/internal/bitset"
)

// Options configure a BranchBound run.
type Options struct {
	// MaxSize is the ingredient budget: the maximum number of ingredients
	// the solution may select.
	MaxSize int
	// MaxCalls caps the number of search nodes evaluated. When the cap is
	// reached the search stops and the best solution found so far is
	// returned with Exhausted=false.
	MaxCalls int
	// Bounds are the pruning functions consulted at every node. A nil or
	// empty slice disables pruning entirely, turning the run into a plain
	// exhaustive search.
	Bounds []Bound
	// Logger receives throttled progress lines at Debug level and a summary
	// at Info level. Nil discards all output.
	Logger *slog.Logger
	// ProgressInterval throttles progress logging. Zero means the default
	// of one line per second.
	ProgressInterval time.Duration
}

// DefaultOptions returns the reference configuration: budget 12, eight
// million node cap, all three built-in bounds.
func DefaultOptions() Options {
	return Options{
		MaxSize:  12,
		MaxCalls: 8_000_000,
		Bounds:   DefaultBounds(),
	}
}

// BranchBound is the search engine. It is single-threaded: a BranchBound
// must not be shared across goroutines during a run, though distinct
// BranchBound instances over the same Problem are independent.
type BranchBound struct {
	problem *Problem
	stats   *Stats
	opts    Options

	logger   *slog.Logger
	progress *rate.Limiter

	calls     int
	best      *Solution
	exhausted bool
}

// New validates the configuration and prepares a search over p. The budget
// must lie in [2, universeSize] and the iteration cap must be positive.
// Degenerate instances (no cocktails, empty universe) are accepted and yield
// a trivial solution from Run.
func New(p *Problem, opts Options) (*BranchBound, error) {
	if opts.MaxCalls <= 0 {
		return nil, &ErrInvalidMaxCalls{MaxCalls: opts.MaxCalls}
	}
	degenerate := len(p.Cocktails) == 0 || p.UniverseSize == 0
	if !degenerate && (opts.MaxSize < 2 || opts.MaxSize > p.UniverseSize) {
		return nil, &ErrInvalidBudget{Budget: opts.MaxSize, UniverseSize: p.UniverseSize}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = time.Second
	}

	return &BranchBound{
		problem:  p,
		stats:    ComputeStats(p),
		opts:     opts,
		logger:   logger,
		progress: rate.NewLimiter(rate.Every(interval), 1),
	}, nil
}

// Stats exposes the precomputed statistics, mainly for custom bounds and
// tests. The returned value is shared and must be treated as read-only.
func (bb *BranchBound) Stats() *Stats {
	return bb.stats
}

// Run executes the search and returns the best solution found. The context
// is consulted at the same checkpoint as the iteration cap: cancellation
// stops the search cleanly and yields the best-so-far with Exhausted=false,
// not an error.
func (bb *BranchBound) Run(ctx context.Context) (*Solution, error) {
	bb.calls = 0
	bb.exhausted = true
	bb.best = &Solution{Cocktails: roaring.New()}

	if len(bb.problem.Cocktails) == 0 || bb.problem.UniverseSize == 0 {
		bb.best.Exhausted = true
		return bb.best, nil
	}

	candidates := roaring.New()
	for _, c := range bb.problem.Cocktails {
		candidates.Add(uint32(c.ID))
	}

	start := time.Now()
	bb.search(ctx, candidates, roaring.New(), bitset.New())

	bb.best.Iterations = bb.calls
	bb.best.Exhausted = bb.exhausted
	bb.logger.Info("search finished",
		"score", bb.best.Score,
		"iterations", bb.best.Iterations,
		"exhausted", bb.best.Exhausted,
		"duration", time.Since(start),
	)
	return bb.best, nil
}

// search evaluates one node. It returns false when the whole search must
// stop (iteration cap hit or context cancelled); callers propagate that to
// the root without further state mutation.
func (bb *BranchBound) search(ctx context.Context, candidates, partial *roaring.Bitmap, partialIngredients bitset.Set) bool {
	if bb.calls >= bb.opts.MaxCalls || ctx.Err() != nil {
		bb.exhausted = false
		return false
	}
	bb.calls++

	score := int(partial.GetCardinality())
	if score > bb.best.Score {
		bb.best.Score = score
		bb.best.Ingredients = partialIngredients.Clone()
		bb.best.Cocktails = partial.Clone()
	}
	if bb.progress.Allow() {
		bb.logger.Debug("search progress",
			"calls", bb.calls,
			"best_score", bb.best.Score,
		)
	}

	// Candidates whose ingredients no longer fit the budget are decided:
	// they can never be satisfied on this path.
	feasible := roaring.New()
	for it := candidates.Iterator(); it.HasNext(); {
		id := int(it.Next())
		if partialIngredients.Union(bb.problem.ingredients(id)).Count() <= bb.opts.MaxSize {
			feasible.Add(uint32(id))
		}
	}
	candidates = feasible

	if candidates.IsEmpty() {
		return true
	}

	bctx := &BoundContext{
		Candidates:         candidates,
		Partial:            partial,
		PartialIngredients: partialIngredients,
		MaxSize:            bb.opts.MaxSize,
		Problem:            bb.problem,
		Stats:              bb.stats,
	}
	threshold := bb.best.Score - score
	for _, b := range bb.opts.Bounds {
		if b.Compute(bctx) <= threshold {
			return true // prune: this subtree cannot beat the incumbent
		}
	}

	pivot := bb.pickPivot(candidates)
	pivotIngredients := bb.problem.ingredients(pivot)

	// Include branch: commit the pivot's ingredients. Any candidate whose
	// ingredients are now covered is satisfied for free.
	newIngredients := partialIngredients.Union(pivotIngredients)
	covered := roaring.New()
	for it := candidates.Iterator(); it.HasNext(); {
		id := int(it.Next())
		if bb.problem.ingredients(id).IsSubset(newIngredients) {
			covered.Add(uint32(id))
		}
	}
	if !bb.search(ctx, roaring.AndNot(candidates, covered), roaring.Or(partial, covered), newIngredients) {
		return false
	}

	// Exclude branch: the pivot is out. If the optimum of this branch
	// covered the pivot's ingredients anyway it would already have been
	// counted in the include branch, so drop every candidate whose
	// selection would sneak the pivot back in.
	remaining := roaring.New()
	for it := candidates.Iterator(); it.HasNext(); {
		id := int(it.Next())
		if id == pivot {
			continue
		}
		if !pivotIngredients.IsSubset(bb.problem.ingredients(id).Union(partialIngredients)) {
			remaining.Add(uint32(id))
		}
	}
	return bb.search(ctx, remaining, partial, partialIngredients)
}

// pickPivot selects the branching cocktail: the candidate with the lowest
// minimum amortized cost, i.e. the one sharing its ingredients most heavily.
// Ties resolve to the smallest id.
func (bb *BranchBound) pickPivot(candidates *roaring.Bitmap) int {
	best := -1
	bestCost := 0.0
	for it := candidates.Iterator(); it.HasNext(); {
		id := int(it.Next())
		cost := bb.stats.MinAmortizedCost[id]
		if best < 0 || cost < bestCost {
			best = id
			bestCost = cost
		}
	}
	return best
}
