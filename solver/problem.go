package solver

import (
	"fmt"
	"math"

	"github.com/urschrei/cocktails/internal/bitset"
)

// Cocktail is one composite requirement: it is satisfied iff every one of its
// ingredients has been selected.
type Cocktail struct {
	ID          int
	Ingredients bitset.Set
}

// Problem is the read-only instance a search runs against. Build it once;
// the solver only borrows it for the duration of a run.
type Problem struct {
	Cocktails    []Cocktail
	UniverseSize int

	byID map[int]int // cocktail id -> index into Cocktails
}

// NewProblem validates and indexes an instance. Cocktail ids must be unique,
// non-negative and representable as uint32; every ingredient index must fall
// inside [0, universeSize).
func NewProblem(cocktails []Cocktail, universeSize int) (*Problem, error) {
	if universeSize < 0 {
		return nil, fmt.Errorf("solver: negative universe size %d", universeSize)
	}

	byID := make(map[int]int, len(cocktails))
	for i, c := range cocktails {
		if c.ID < 0 || c.ID > math.MaxUint32 {
			return nil, fmt.Errorf("solver: cocktail id %d out of range", c.ID)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("solver: duplicate cocktail id %d", c.ID)
		}
		byID[c.ID] = i

		for idx := range c.Ingredients.All() {
			if idx >= universeSize {
				return nil, fmt.Errorf("solver: cocktail %d references ingredient %d outside universe of size %d", c.ID, idx, universeSize)
			}
		}
	}

	return &Problem{
		Cocktails:    cocktails,
		UniverseSize: universeSize,
		byID:         byID,
	}, nil
}

// ByID returns the cocktail with the given id, or nil if unknown.
func (p *Problem) ByID(id int) *Cocktail {
	i, ok := p.byID[id]
	if !ok {
		return nil
	}
	return &p.Cocktails[i]
}

// ingredients returns the ingredient set for a known cocktail id.
// Calling it with an id that is not part of the problem is a bug.
func (p *Problem) ingredients(id int) bitset.Set {
	c := p.ByID(id)
	if c == nil {
		panic(fmt.Sprintf("solver: unknown cocktail id %d", id))
	}
	return c.Ingredients
}
