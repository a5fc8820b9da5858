// Shared white-box helpers for the package-internal tests.
//
// Random instances use integer-valued weights in [1, 99]: sums and deltas
// over such matrices are exact in float64, so the incremental-cost paths
// can be compared against full recomputation with no tolerance games.
package tsp

import (
	"math/rand"
	"testing"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// intWeightsAsym returns a flat n×n matrix of integer-valued weights with
// a zero diagonal. Off-diagonal entries are drawn independently per
// direction, so the matrix is asymmetric with probability ~1.
func intWeightsAsym(n int, rng *rand.Rand) []float64 {
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w[i*n+j] = float64(1 + rng.Intn(99))
			}
		}
	}

	return w
}

// intWeightsSym returns a flat symmetric n×n matrix of integer-valued
// weights with a zero diagonal.
func intWeightsSym(n int, rng *rand.Rand) []float64 {
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := float64(1 + rng.Intn(99))
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return w
}

// denseFromFlat lifts a flat weight buffer into a matrix.Matrix.
func denseFromFlat(t *testing.T, w []float64, n int) *matrix.Dense {
	t.Helper()

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = w[i*n : (i+1)*n]
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("building %dx%d test matrix: %v", n, n, err)
	}

	return m
}

// requirePermutation fails the test unless route is a permutation of 0..n-1.
func requirePermutation(t *testing.T, route []int, n int) {
	t.Helper()

	if err := ValidatePermutation(route, n); err != nil {
		t.Fatalf("route %v is not a permutation of 0..%d: %v", route, n-1, err)
	}
}

// fiveCityRows is a small instance with a known nearest-neighbor tour:
// starting at 0 the greedy route is [0 4 1 3 2] with closed cost 25.
func fiveCityRows() [][]float64 {
	return [][]float64{
		{0, 2, 9, 10, 1},
		{2, 0, 6, 4, 3},
		{9, 6, 0, 8, 7},
		{10, 4, 8, 0, 5},
		{1, 3, 7, 5, 0},
	}
}
