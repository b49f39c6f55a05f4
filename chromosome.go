package tsp_evolve

import (
	"math/rand"

	cp "github.com/jinzhu/copier"
)

// Chromosome is one candidate tour: a permutation of the city indices
// 0..N-1 in visiting order, implicitly closing back to the start. The
// cached tour cost follows an explicit dirty contract: any operator that
// touches Route calls Invalidate, and the engine recomputes exactly once
// per tick via Evaluate. The chromosome never recomputes on its own, so
// chained operators cost a single evaluation.
type Chromosome struct {
	Route []int

	cost  float64
	dirty bool
}

// NewChromosome wraps an explicit route with no fitness yet. Mostly
// useful for tests and for crossover children.
func NewChromosome(route []int) *Chromosome {
	return &Chromosome{Route: route, dirty: true}
}

// RandomChromosome builds a uniformly random tour over the model's cities
// (Fisher-Yates via rand.Shuffle) with its fitness computed immediately.
func RandomChromosome(model *CostModel, rng *rand.Rand) (*Chromosome, error) {
	n := model.Size()
	route := make([]int, n)
	for i := range route {
		route[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		route[i], route[j] = route[j], route[i]
	})
	c := NewChromosome(route)
	if err := c.Evaluate(model); err != nil {
		return nil, err
	}
	return c, nil
}

// Fitness returns the cached tour cost. Only valid when Dirty() is false;
// the engine guarantees that by evaluating before every read.
func (c *Chromosome) Fitness() float64 {
	return c.cost
}

// Dirty reports whether the route changed since the last evaluation.
func (c *Chromosome) Dirty() bool {
	return c.dirty
}

// Invalidate marks the cached fitness stale. Every mutating operator
// calls this.
func (c *Chromosome) Invalidate() {
	c.dirty = true
}

// Evaluate recomputes the cached cost if the route changed. No-op on a
// clean chromosome.
func (c *Chromosome) Evaluate(model *CostModel) error {
	if !c.dirty {
		return nil
	}
	cost, err := model.TourCost(c.Route)
	if err != nil {
		return err
	}
	c.cost = cost
	c.dirty = false
	return nil
}

// Len returns the number of cities in the tour.
func (c *Chromosome) Len() int {
	return len(c.Route)
}

// Clone returns an independent deep copy.
func (c *Chromosome) Clone() *Chromosome {
	clone := &Chromosome{cost: c.cost, dirty: c.dirty}
	cp.Copy(&clone.Route, &c.Route)
	return clone
}
