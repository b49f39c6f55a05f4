package tsp_evolve

import "math/rand"

// Population is the insertion-ordered pool of exactly P chromosomes owned
// by a single engine. It is never sorted: best/worst are found by linear
// scan with ties broken toward the lowest index, which keeps every
// tie-break deterministic for a fixed random stream.
//
// Steady state: after initialization the size never changes; each
// replacement evicts exactly one member and inserts exactly one.
type Population struct {
	members []*Chromosome
}

// NewPopulation builds size random chromosomes, each evaluated against the
// model as it is created.
func NewPopulation(size int, model *CostModel, rng *rand.Rand) (*Population, error) {
	members := make([]*Chromosome, size)
	for i := range members {
		c, err := RandomChromosome(model, rng)
		if err != nil {
			return nil, err
		}
		members[i] = c
	}
	return &Population{members: members}, nil
}

// Size returns the member count P.
func (p *Population) Size() int {
	return len(p.members)
}

// Member returns the chromosome at index i in insertion order.
func (p *Population) Member(i int) *Chromosome {
	return p.members[i]
}

// BestIndex returns the index of the cheapest member, lowest index first
// on ties.
func (p *Population) BestIndex() int {
	best := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].Fitness() < p.members[best].Fitness() {
			best = i
		}
	}
	return best
}

// WorstIndex returns the index of the costliest member, lowest index
// first on ties.
func (p *Population) WorstIndex() int {
	worst := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].Fitness() > p.members[worst].Fitness() {
			worst = i
		}
	}
	return worst
}

// Best returns the current cheapest member.
func (p *Population) Best() *Chromosome {
	return p.members[p.BestIndex()]
}

// Worst returns the current costliest member.
func (p *Population) Worst() *Chromosome {
	return p.members[p.WorstIndex()]
}

// AverageCost returns the mean tour cost across the population.
func (p *Population) AverageCost() float64 {
	var sum float64
	for _, m := range p.members {
		sum += m.Fitness()
	}
	return sum / float64(len(p.members))
}

// ReplaceWorst evicts the current worst member and installs child in its
// slot, keeping the size constant. The replacement is unconditional: even
// a child costlier than the evicted member goes in, so exactly one member
// differs per tick. Only the worst slot is ever touched, which is what
// keeps the population's best cost from ever rising. Returns the replaced
// index.
func (p *Population) ReplaceWorst(child *Chromosome) int {
	worst := p.WorstIndex()
	p.members[worst] = child
	return worst
}

// Snapshot captures best/worst/average cost of the current population.
func (p *Population) Snapshot() GenerationStats {
	return GenerationStats{
		Best:    p.members[p.BestIndex()].Fitness(),
		Worst:   p.members[p.WorstIndex()].Fitness(),
		Average: p.AverageCost(),
	}
}
