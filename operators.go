package tsp_evolve

import "math/rand"

// Operators are pure with respect to the population: they see one or two
// parents and a random stream, nothing else. Every output is a valid
// permutation by construction: crossovers place each city exactly once
// and mutations only move cities between positions.

// CrossoverFunc combines two parents into one child route. Parents are
// never modified.
type CrossoverFunc func(a, b *Chromosome, rng *rand.Rand) *Chromosome

// MutationFunc rearranges a chromosome's route in place and invalidates
// its cached fitness.
type MutationFunc func(c *Chromosome, rng *rand.Rand)

// crossoverFor resolves the configured crossover variant once, at engine
// construction.
func crossoverFor(op CrossoverOperator) CrossoverFunc {
	if op == CrossoverOrdered {
		return OrderedCrossover
	}
	return FixCrossover
}

// mutationFor resolves the configured mutation variant once, at engine
// construction.
func mutationFor(op MutationOperator, swaps int) MutationFunc {
	switch op {
	case MutationMultiple:
		return MultipleSwap(swaps)
	case MutationInversion:
		return Inversion
	}
	return SingleSwap
}

// FixCrossover copies a contiguous slice of parent A into the child at the
// same positions, then fills the remaining slots left to right with parent
// B's cities in B's order, skipping any city the slice already placed.
func FixCrossover(a, b *Chromosome, rng *rand.Rand) *Chromosome {
	lo, hi := cutRange(rng, a.Len())
	return NewChromosome(fixCross(a.Route, b.Route, lo, hi))
}

func fixCross(pa, pb []int, lo, hi int) []int {
	n := len(pa)
	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}
	placed := make([]bool, n)
	for i := lo; i <= hi; i++ {
		child[i] = pa[i]
		placed[pa[i]] = true
	}
	slot := 0
	for _, city := range pb {
		if placed[city] {
			continue
		}
		for child[slot] != -1 {
			slot++
		}
		child[slot] = city
		placed[city] = true
	}
	return child
}

// OrderedCrossover copies the same kind of slice from parent A, but fills
// the remaining slots circularly starting after the cut, scanning parent B
// circularly from the same point. B's relative ordering survives in the
// child (classic OX).
func OrderedCrossover(a, b *Chromosome, rng *rand.Rand) *Chromosome {
	lo, hi := cutRange(rng, a.Len())
	return NewChromosome(orderedCross(a.Route, b.Route, lo, hi))
}

func orderedCross(pa, pb []int, lo, hi int) []int {
	n := len(pa)
	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}
	placed := make([]bool, n)
	for i := lo; i <= hi; i++ {
		child[i] = pa[i]
		placed[pa[i]] = true
	}
	// The free slots form one contiguous circular span from hi+1 back
	// around to lo-1, so a single wrapping cursor covers them all.
	slot := (hi + 1) % n
	for k := 0; k < n; k++ {
		city := pb[(hi+1+k)%n]
		if placed[city] {
			continue
		}
		child[slot] = city
		placed[city] = true
		slot = (slot + 1) % n
	}
	return child
}

// SingleSwap exchanges the cities at two distinct random positions.
func SingleSwap(c *Chromosome, rng *rand.Rand) {
	i, j := twoDistinct(rng, c.Len())
	c.Route[i], c.Route[j] = c.Route[j], c.Route[i]
	c.Invalidate()
}

// MultipleSwap returns a mutation performing swaps independent single
// swaps. Positions may repeat across swaps.
func MultipleSwap(swaps int) MutationFunc {
	return func(c *Chromosome, rng *rand.Rand) {
		for s := 0; s < swaps; s++ {
			i, j := twoDistinct(rng, c.Len())
			c.Route[i], c.Route[j] = c.Route[j], c.Route[i]
		}
		c.Invalidate()
	}
}

// Inversion reverses the route between two distinct random positions,
// bounds inclusive. Applying it twice over the same bounds restores the
// original route.
func Inversion(c *Chromosome, rng *rand.Rand) {
	i, j := twoDistinct(rng, c.Len())
	if i > j {
		i, j = j, i
	}
	invertRange(c.Route, i, j)
	c.Invalidate()
}

func invertRange(route []int, lo, hi int) {
	for lo < hi {
		route[lo], route[hi] = route[hi], route[lo]
		lo++
		hi--
	}
}
