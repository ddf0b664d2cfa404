package solver

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/urschrei/cocktails/internal/bitset"
)

// Solution is the outcome of one search run.
//
// When Exhausted is true the search explored the full tree (modulo pruning)
// and Score is the certified optimum. When false the iteration cap stopped
// the search early: the solution is feasible and valid but not certified.
type Solution struct {
	// Score is the number of satisfied cocktails.
	Score int
	// Ingredients are the selected ingredient indices.
	Ingredients bitset.Set
	// Cocktails are the ids of the satisfied cocktails.
	Cocktails *roaring.Bitmap
	// Iterations is the number of search nodes evaluated.
	Iterations int
	// Exhausted reports whether the search completed within the iteration cap.
	Exhausted bool
}

// CocktailIDs returns the satisfied cocktail ids in ascending order.
func (s *Solution) CocktailIDs() []int {
	out := make([]int, 0, s.Cocktails.GetCardinality())
	for it := s.Cocktails.Iterator(); it.HasNext(); {
		out = append(out, int(it.Next()))
	}
	return out
}

// IngredientIndices returns the selected ingredient indices in ascending order.
func (s *Solution) IngredientIndices() []int {
	return s.Ingredients.Indices()
}
