package tsp_evolve

import (
	test "testing"
)

// makeFixedPopulation builds a population directly from explicit costs so
// tie-break and replacement behavior can be pinned down exactly.
func makeFixedPopulation(costs ...float64) *Population {
	members := make([]*Chromosome, len(costs))
	for i, cost := range costs {
		c := NewChromosome([]int{0, 1, 2, 3})
		c.cost = cost
		c.dirty = false
		members[i] = c
	}
	return &Population{members: members}
}

func TestNewPopulationSizeAndValidity(t *test.T) {
	m := makeSquareModel(t)
	pop, err := NewPopulation(20, m, makeRng(13))
	if err != nil {
		t.Fatalf("NewPopulation failed: %v", err)
	}
	if pop.Size() != 20 {
		t.Fatalf("population size %d, want 20", pop.Size())
	}
	for i := 0; i < pop.Size(); i++ {
		c := pop.Member(i)
		if err := CheckPermutation(c.Route, m.Size()); err != nil {
			t.Fatalf("member %d invalid: %v", i, err)
		}
		if c.Dirty() {
			t.Fatalf("member %d has no fitness", i)
		}
	}
}

func TestBestAndWorstIndex(t *test.T) {
	pop := makeFixedPopulation(5, 3, 9, 4)
	if got := pop.BestIndex(); got != 1 {
		t.Errorf("BestIndex = %d, want 1", got)
	}
	if got := pop.WorstIndex(); got != 2 {
		t.Errorf("WorstIndex = %d, want 2", got)
	}
}

func TestBestWorstTieBreakLowestIndex(t *test.T) {
	pop := makeFixedPopulation(7, 2, 2, 7)
	if got := pop.BestIndex(); got != 1 {
		t.Errorf("tied BestIndex = %d, want lowest index 1", got)
	}
	if got := pop.WorstIndex(); got != 0 {
		t.Errorf("tied WorstIndex = %d, want lowest index 0", got)
	}
}

func TestReplaceWorstIsSteadyState(t *test.T) {
	pop := makeFixedPopulation(5, 3, 9, 4)
	before := make([]*Chromosome, pop.Size())
	for i := range before {
		before[i] = pop.Member(i)
	}

	child := NewChromosome([]int{3, 2, 1, 0})
	child.cost = 1
	child.dirty = false

	replaced := pop.ReplaceWorst(child)
	if replaced != 2 {
		t.Errorf("replaced index %d, want 2", replaced)
	}
	if pop.Size() != 4 {
		t.Errorf("size changed to %d", pop.Size())
	}

	differs := 0
	for i := range before {
		if pop.Member(i) != before[i] {
			differs++
		}
	}
	if differs != 1 {
		t.Errorf("%d members differ after one replacement, want exactly 1", differs)
	}
}

func TestReplaceWorstIsUnconditional(t *test.T) {
	pop := makeFixedPopulation(5, 3, 9, 4)
	child := NewChromosome([]int{3, 2, 1, 0})
	child.cost = 100
	child.dirty = false

	pop.ReplaceWorst(child)
	if pop.Member(2) != child {
		t.Errorf("costlier child was not installed in the worst slot")
	}
	// The best member was untouched either way.
	if pop.Best().Fitness() != 3 {
		t.Errorf("best fitness %v after replacement, want 3", pop.Best().Fitness())
	}
}

func TestAverageCostAndSnapshot(t *test.T) {
	pop := makeFixedPopulation(2, 4, 6, 8)
	if avg := pop.AverageCost(); avg != 5 {
		t.Errorf("AverageCost = %v, want 5", avg)
	}
	snap := pop.Snapshot()
	if snap.Best != 2 || snap.Worst != 8 || snap.Average != 5 {
		t.Errorf("Snapshot = %+v, want {2 8 5}", snap)
	}
}
