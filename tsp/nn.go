// Package tsp - nearest-neighbor construction.
//
// Deterministic greedy baseline: from StartCity, repeatedly append the
// unvisited city with minimum distance from the current one (smallest
// index wins ties), then close the cycle. No randomness is involved, so
// the result depends only on the matrix and the start city.
//
// Complexity: O(n²) time, O(n) space.
package tsp

import (
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// NearestNeighbor builds a greedy tour on dist starting at p.StartCity.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities (n < 2),
// ErrStartOutOfRange, ErrNonFiniteWeight, ErrNegativeWeight.
func NearestNeighbor(dist matrix.Matrix, p NearestNeighborParams) (Result, error) {
	var begin = time.Now()

	n, err := validateDistMatrix(dist, 2)
	if err != nil {
		return Result{}, err
	}
	if err = validateStartCity(n, p.StartCity); err != nil {
		return Result{}, err
	}
	w, err := prefetchWeights(dist, n)
	if err != nil {
		return Result{}, err
	}

	var (
		visited = make([]bool, n)
		route   = make([]int, n)
		current = p.StartCity

		step int
		c    int
		next int
		d    float64
	)
	route[0] = current
	visited[current] = true

	for step = 1; step < n; step++ {
		next = -1
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			d = w[current*n+c]
			if next == -1 || d < w[current*n+next] {
				next = c
			}
		}

		route[step] = next
		visited[next] = true
		current = next
	}

	return Result{
		Route:   route,
		Cost:    round1e9(routeCostFlat(w, n, route)),
		Runtime: time.Since(begin),
		Meta:    Meta{Algorithm: AlgNearestNeighbor, Params: p},
	}, nil
}
