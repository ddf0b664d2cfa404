package solver

// Stats holds per-instance statistics derived once from a Problem and reused
// unchanged for the whole run.
//
// MinCover[id] is the popularity of the cocktail's rarest ingredient; a value
// of 1 means the cocktail depends on an ingredient no other cocktail uses.
// MinAmortizedCost[id] is the sum of reciprocal ingredient popularities: a
// lower value means the cocktail shares its ingredients heavily and is cheap
// to satisfy as a side effect of satisfying others.
type Stats struct {
	Popularity       []int // per ingredient index: number of cocktails using it
	MinCover         map[int]int
	MinAmortizedCost map[int]float64
}

// ComputeStats derives the statistics for a problem. It is a pure function:
// identical problems yield identical statistics.
func ComputeStats(p *Problem) *Stats {
	s := &Stats{
		Popularity:       make([]int, p.UniverseSize),
		MinCover:         make(map[int]int, len(p.Cocktails)),
		MinAmortizedCost: make(map[int]float64, len(p.Cocktails)),
	}

	for _, c := range p.Cocktails {
		for i := range c.Ingredients.All() {
			s.Popularity[i]++
		}
	}

	for _, c := range p.Cocktails {
		cover := 0
		cost := 0.0
		for i := range c.Ingredients.All() {
			pop := s.Popularity[i]
			if cover == 0 || pop < cover {
				cover = pop
			}
			cost += 1.0 / float64(pop)
		}
		s.MinCover[c.ID] = cover
		s.MinAmortizedCost[c.ID] = cost
	}

	return s
}
