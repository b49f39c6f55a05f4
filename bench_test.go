package tsp_evolve

import (
	"context"
	"math/rand"
	"testing"
)

func benchModel(b *testing.B, n int) *CostModel {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	costs := make([][]float64, n)
	for i := range costs {
		costs[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := 1 + rng.Float64()*999
			costs[i][j] = c
			costs[j][i] = c
		}
	}
	m, err := NewCostModel(costs)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkTourCost(b *testing.B) {
	m := benchModel(b, 100)
	rng := rand.New(rand.NewSource(1))
	route := rng.Perm(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.TourCost(route); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFixCrossover(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	pa := NewChromosome(rng.Perm(100))
	pb := NewChromosome(rng.Perm(100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FixCrossover(pa, pb, rng)
	}
}

func BenchmarkOrderedCrossover(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	pa := NewChromosome(rng.Perm(100))
	pb := NewChromosome(rng.Perm(100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		OrderedCrossover(pa, pb, rng)
	}
}

func BenchmarkInversion(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	c := NewChromosome(rng.Perm(100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Inversion(c, rng)
	}
}

// BenchmarkEngineRun measures full steady-state throughput: each
// iteration is a complete run of 1000 ticks over a 50-city instance.
func BenchmarkEngineRun(b *testing.B) {
	m := benchModel(b, 50)
	config := DefaultConfig()
	config.GenerationCount = 1000
	config.Seed = 42
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := NewEngine(config, m, 0, rand.New(rand.NewSource(int64(i))))
		if err != nil {
			b.Fatal(err)
		}
		if err := e.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
