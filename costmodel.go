package tsp_evolve

import "fmt"

// CostModel wraps the symmetric travel-cost matrix. It is immutable after
// construction and shared read-only by every concurrent run, so no locking
// is needed anywhere downstream.
//
// Full matrix validation (symmetry, zero diagonal, non-negative costs) is
// the loader's job; the model only enforces size consistency.
type CostModel struct {
	costs [][]float64
	size  int
}

// NewCostModel wraps an already-validated N x N matrix. The matrix is not
// copied; callers hand over ownership.
func NewCostModel(costs [][]float64) (*CostModel, error) {
	n := len(costs)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 cities, got %d", ErrInputData, n)
	}
	for i, row := range costs {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInputData, i, len(row), n)
		}
	}
	return &CostModel{costs: costs, size: n}, nil
}

// Size returns the number of cities N.
func (m *CostModel) Size() int {
	return m.size
}

// Cost returns the travel cost between cities i and j.
func (m *CostModel) Cost(i, j int) float64 {
	return m.costs[i][j]
}

// TourCost sums the edge costs along route including the closing edge back
// to the start. The permutation check is defensive: correct operators can
// never trip it, but a corrupted route must fail loudly rather than score.
func (m *CostModel) TourCost(route []int) (float64, error) {
	if len(route) != m.size {
		return 0, fmt.Errorf("%w: route has %d cities, matrix has %d", ErrInputData, len(route), m.size)
	}
	if err := CheckPermutation(route, m.size); err != nil {
		return 0, err
	}
	var sum float64
	prev := route[len(route)-1]
	for _, city := range route {
		sum += m.costs[prev][city]
		prev = city
	}
	return sum, nil
}

// CheckPermutation verifies that route contains each of 0..n-1 exactly
// once.
func CheckPermutation(route []int, n int) error {
	if len(route) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(route), n)
	}
	seen := make([]bool, n)
	for i, city := range route {
		if city < 0 || city >= n {
			return fmt.Errorf("%w: city %d at position %d out of range [0,%d)", ErrInvalidTour, city, i, n)
		}
		if seen[city] {
			return fmt.Errorf("%w: city %d duplicated at position %d", ErrInvalidTour, city, i)
		}
		seen[city] = true
	}
	return nil
}
