// Package tsp — cost utilities shared by all engines.
//
// This file provides small, allocation-conscious helpers to compute the
// total cost of the Hamiltonian cycle implied by a route permutation, and
// the flat weight prefetch used by every hot loop.
//
// Design:
//   - RouteCost is the O(n) ground truth; engines that track costs
//     incrementally must always agree with it (the primary correctness
//     invariant of the move model, enforced under test).
//   - prefetchWeights copies the matrix once into a dense 1D buffer
//     w[u*n+v] to remove interface indirection from hot loops, enforcing
//     sentinel semantics (NaN/Inf ⇒ ErrNonFiniteWeight, negative ⇒
//     ErrNegativeWeight) at that single point.
//   - Stable summation: final costs are rounded to 1e-9 to avoid
//     cross-platform FP noise.
package tsp

import (
	"math"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting
// which tours are optimal.
const roundScale = 1e9

// RouteCost computes the closed-cycle length of a route permutation:
// sum of d[route[k],route[k+1]] for k=0..n-2 plus d[route[n-1],route[0]].
//
// Contract:
//   - route must be a permutation of 0..n-1 where n == dist order.
//   - Returns ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
//     ErrNonFiniteWeight, or ErrNegativeWeight.
//
// Complexity: O(n).
func RouteCost(dist matrix.Matrix, route []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	var n = nr
	if len(route) != n {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		k   int
		u   int
		v   int
		w   float64
		err error
	)
	for k = 0; k < n; k++ {
		u = route[k]
		v = route[(k+1)%n]

		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNonFiniteWeight
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// prefetchWeights linearizes dist into w[u*n+v] for cache-friendly reads in
// hot loops, validating every entry once:
//   - NaN/±Inf  → ErrNonFiniteWeight,
//   - negative  → ErrNegativeWeight.
//
// Shape validation (square, order) is the caller's job (validateDistMatrix).
//
// Complexity: O(n²) time, O(n²) space.
func prefetchWeights(dist matrix.Matrix, n int) ([]float64, error) {
	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, ErrNonFiniteWeight
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// routeCostFlat sums the closed cycle over the prefetched buffer.
// No validation: the buffer and route are trusted inside the hot path.
//
// Complexity: O(n).
func routeCostFlat(w []float64, n int, route []int) float64 {
	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += w[route[k]*n+route[k+1]]
	}
	sum += w[route[n-1]*n+route[0]]

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
