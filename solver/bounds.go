package solver

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/urschrei/cocktails/internal/bitset"
)

// BoundContext is the read-only snapshot a bound function is evaluated
// against. Bound functions must not mutate it.
type BoundContext struct {
	// Candidates are the cocktail ids not yet decided along the current path.
	Candidates *roaring.Bitmap
	// Partial are the cocktail ids already confirmed satisfied.
	Partial *roaring.Bitmap
	// PartialIngredients are the ingredients committed so far.
	PartialIngredients bitset.Set
	// MaxSize is the ingredient budget.
	MaxSize int

	Problem *Problem
	Stats   *Stats
}

// Bound computes an upper estimate of how many additional cocktails, beyond
// the partial solution, could still be satisfied from the given state.
//
// Implementations must be admissible: never return less than the true
// achievable count. An inadmissible bound makes the solver report suboptimal
// results as optimal.
type Bound interface {
	Compute(ctx *BoundContext) int
	Name() string
}

// BoundFunc adapts a closure to the Bound interface for user-supplied bounds.
func BoundFunc(name string, fn func(*BoundContext) int) Bound {
	return boundFunc{name: name, fn: fn}
}

type boundFunc struct {
	name string
	fn   func(*BoundContext) int
}

func (b boundFunc) Compute(ctx *BoundContext) int { return b.fn(ctx) }
func (b boundFunc) Name() string                  { return b.name }

// DefaultBounds returns the three built-in bounds, cheapest first.
func DefaultBounds() []Bound {
	return []Bound{TotalBound{}, SingletonBound{}, ConcentrationBound{}}
}

// TotalBound is the trivial bound: every candidate could in principle still
// be satisfied.
type TotalBound struct{}

func (TotalBound) Compute(ctx *BoundContext) int {
	return int(ctx.Candidates.GetCardinality())
}

func (TotalBound) Name() string { return "total" }

// SingletonBound accounts for candidates bottlenecked by a unique
// ingredient. Each such cocktail burns at least one budget slot usable by no
// other candidate, so their joint contribution is capped by the remaining
// budget; all other candidates are optimistically assumed free.
type SingletonBound struct{}

func (SingletonBound) Compute(ctx *BoundContext) int {
	unique := 0
	for it := ctx.Candidates.Iterator(); it.HasNext(); {
		if ctx.Stats.MinCover[int(it.Next())] == 1 {
			unique++
		}
	}
	budget := ctx.MaxSize - ctx.PartialIngredients.Count()
	return int(ctx.Candidates.GetCardinality()) - unique + min(unique, budget)
}

func (SingletonBound) Name() string { return "singleton" }

// ConcentrationBound models the best case where the ingredient overrun is
// concentrated in as few cocktails as possible. If satisfying every
// candidate would exceed the budget, it simulates removing the candidates
// that introduce the most new ingredients, crediting each removal with its
// full new-ingredient count, until the excess is cleared. Over-crediting
// shared ingredients keeps the bound admissible: the simulation never needs
// more removals than any real schedule would.
//
// Ties between equal contributions are broken by ascending cocktail id so
// repeated runs are reproducible.
type ConcentrationBound struct{}

func (ConcentrationBound) Compute(ctx *BoundContext) int {
	n := int(ctx.Candidates.GetCardinality())

	union := ctx.PartialIngredients
	increases := make([]increase, 0, n)
	for it := ctx.Candidates.Iterator(); it.HasNext(); {
		id := int(it.Next())
		ing := ctx.Problem.ingredients(id)
		union = union.Union(ing)
		increases = append(increases, increase{
			id:    id,
			fresh: ing.Difference(ctx.PartialIngredients).Count(),
		})
	}

	excess := union.Count() - ctx.MaxSize
	if excess <= 0 {
		return n
	}

	sort.Slice(increases, func(i, j int) bool {
		if increases[i].fresh != increases[j].fresh {
			return increases[i].fresh > increases[j].fresh
		}
		return increases[i].id < increases[j].id
	})

	remaining := n
	for _, inc := range increases {
		if excess <= 0 {
			break
		}
		remaining--
		excess -= inc.fresh
	}
	return remaining
}

func (ConcentrationBound) Name() string { return "concentration" }

type increase struct {
	id    int
	fresh int
}
