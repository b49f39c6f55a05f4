package tsp_evolve

import (
	"math/rand"
	"time"
)

// Each run owns its own *rand.Rand; nothing here is shared across
// goroutines. Seeds for the R runs are derived from one base seed with a
// SplitMix64-style mix so the streams stay decorrelated even though the
// run indices are consecutive.

// NormalizeSeed maps the "pick one for me" zero seed to the current time.
func NormalizeSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// DeriveSeed mixes a base seed and a stream index into a new 64-bit seed.
// Constants are the canonical SplitMix64 multipliers.
func DeriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// NewRunRNG returns the independent random stream for one run.
func NewRunRNG(base int64, run int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(base, uint64(run))))
}

// sampleIndices draws k distinct indices from [0, n) without replacement,
// using a partial Fisher-Yates over a scratch index slice.
func sampleIndices(rng *rand.Rand, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// twoDistinct draws two distinct indices from [0, n). Needs n >= 2.
func twoDistinct(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	return a, b
}

// cutRange draws 0 <= a <= b < n uniformly over ordered pairs. a == b is
// a legal degenerate cut.
func cutRange(rng *rand.Rand, n int) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	return a, b
}
