package solver_test

import (
	"math/rand/v2"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urschrei/cocktails/internal/bitset"
	"github.com/urschrei/cocktails/solver"
)

// rootContext builds the bound context for the start of a search: nothing
// decided, nothing committed.
func rootContext(p *solver.Problem, budget int) *solver.BoundContext {
	candidates := roaring.New()
	for _, c := range p.Cocktails {
		candidates.Add(uint32(c.ID))
	}
	return &solver.BoundContext{
		Candidates:         candidates,
		Partial:            roaring.New(),
		PartialIngredients: bitset.New(),
		MaxSize:            budget,
		Problem:            p,
		Stats:              solver.ComputeStats(p),
	}
}

// midContext commits a random feasible cocktail subset and returns the
// resulting state, or nil if the draw committed everything.
func midContext(rng *rand.Rand, p *solver.Problem, budget int) *solver.BoundContext {
	partial := roaring.New()
	partialIngredients := bitset.New()
	for _, c := range p.Cocktails {
		if rng.IntN(3) != 0 {
			continue
		}
		if u := partialIngredients.Union(c.Ingredients); u.Count() <= budget {
			partial.Add(uint32(c.ID))
			partialIngredients = u
		}
	}

	candidates := roaring.New()
	for _, c := range p.Cocktails {
		if partial.Contains(uint32(c.ID)) {
			continue
		}
		if partialIngredients.Union(c.Ingredients).Count() <= budget {
			candidates.Add(uint32(c.ID))
		}
	}
	if candidates.IsEmpty() {
		return nil
	}
	return &solver.BoundContext{
		Candidates:         candidates,
		Partial:            partial,
		PartialIngredients: partialIngredients,
		MaxSize:            budget,
		Problem:            p,
		Stats:              solver.ComputeStats(p),
	}
}

// trueAdditional computes, by enumeration, the real maximum number of
// candidates satisfiable on top of the committed ingredients.
func trueAdditional(ctx *solver.BoundContext) int {
	ids := ctx.Candidates.ToArray()
	best := 0
	for mask := 0; mask < 1<<len(ids); mask++ {
		union := ctx.PartialIngredients
		count := 0
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				union = union.Union(ctx.Problem.ByID(int(id)).Ingredients)
				count++
			}
		}
		if union.Count() <= ctx.MaxSize && count > best {
			best = count
		}
	}
	return best
}

func TestBoundsAdmissible(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 37))
	bounds := solver.DefaultBounds()

	for trial := 0; trial < 30; trial++ {
		p := randomProblem(t, rng, 3+rng.IntN(7), 8+rng.IntN(4))
		budget := 2 + rng.IntN(5)

		contexts := []*solver.BoundContext{rootContext(p, budget)}
		if mid := midContext(rng, p, budget); mid != nil {
			contexts = append(contexts, mid)
		}

		for _, ctx := range contexts {
			want := trueAdditional(ctx)
			for _, b := range bounds {
				got := b.Compute(ctx)
				assert.GreaterOrEqual(t, got, want,
					"trial %d: %s bound underestimates (%d < %d)", trial, b.Name(), got, want)
			}
		}
	}
}

func TestBoundsRefineTotal(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))

	for trial := 0; trial < 30; trial++ {
		p := randomProblem(t, rng, 3+rng.IntN(7), 8+rng.IntN(4))
		budget := 2 + rng.IntN(5)

		contexts := []*solver.BoundContext{rootContext(p, budget)}
		if mid := midContext(rng, p, budget); mid != nil {
			contexts = append(contexts, mid)
		}

		for _, ctx := range contexts {
			total := solver.TotalBound{}.Compute(ctx)
			assert.LessOrEqual(t, solver.SingletonBound{}.Compute(ctx), total, "trial %d", trial)
			assert.LessOrEqual(t, solver.ConcentrationBound{}.Compute(ctx), total, "trial %d", trial)
		}
	}
}

func TestSingletonBoundFixture(t *testing.T) {
	p := barFixture(t)
	ctx := rootContext(p, 4)

	// Four of the five cocktails carry a unique ingredient (all but the
	// Daiquiri); the budget of 4 still admits them one-for-one.
	assert.Equal(t, 5, solver.SingletonBound{}.Compute(ctx))

	ctx.MaxSize = 3
	// Budget 3 caps the unique-ingredient cocktails at 3: 1 + min(4, 3).
	assert.Equal(t, 4, solver.SingletonBound{}.Compute(ctx))
}

func TestConcentrationBoundFixture(t *testing.T) {
	p := barFixture(t)

	// Budget 8 fits the whole universe: nothing to remove.
	ctx := rootContext(p, 8)
	assert.Equal(t, 5, solver.ConcentrationBound{}.Compute(ctx))

	// Budget 4 leaves an excess of 4; removing the Mojito (3 fresh
	// ingredients) and the Daiquiri or Martini (2 fresh) clears it.
	ctx = rootContext(p, 4)
	assert.Equal(t, 3, solver.ConcentrationBound{}.Compute(ctx))
}

func TestCustomBoundViaSolve(t *testing.T) {
	p := barFixture(t)

	calls := 0
	custom := solver.BoundFunc("countdown", func(ctx *solver.BoundContext) int {
		calls++
		return int(ctx.Candidates.GetCardinality())
	})

	opts := solver.DefaultOptions()
	opts.MaxSize = 4
	opts.Bounds = []solver.Bound{custom}
	sol := solve(t, p, opts)

	require.Positive(t, calls, "custom bound was never consulted")
	assert.Equal(t, bruteForce(p, 4), sol.Score)
}
