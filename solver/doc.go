// Package solver implements exact branch-and-bound search for the ingredient
// selection problem: choose at most maxSize ingredients so that the number of
// fully satisfiable cocktails is maximized.
//
// The search is depth-first and strictly sequential. Each node either prunes
// (some admissible upper bound says the subtree cannot beat the incumbent) or
// branches on a pivot cocktail, exploring the include branch first. Candidate
// and satisfied cocktail ids are tracked as Roaring bitmaps; committed
// ingredients as a compact bit vector.
//
// Bounds are pluggable through the Bound interface. A custom bound must be
// admissible: it may never return less than the true number of additional
// cocktails satisfiable from the state it is given. The solver cannot detect
// a violation; an inadmissible bound silently sacrifices optimality.
package solver
