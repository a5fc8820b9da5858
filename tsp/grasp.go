// Package tsp - GRASP (greedy randomized adaptive search procedure).
//
// Two alternating phases, repeated Iterations times:
//
//  1. Construction: build a start tour city by city. From the current city,
//     the restricted candidate list (RCL) holds every unvisited city whose
//     distance lies within min + Alpha·(max−min); the next city is drawn
//     uniformly from the RCL. Alpha 0 degenerates to pure nearest-neighbor
//     greed, Alpha 1 to uniform-random selection. An all-equal candidate
//     set makes the RCL the whole list, i.e. uniform selection — the
//     degenerate case is not an error.
//  2. Refinement: the constructed tour is handed to the hill-climbing
//     inner loop (delta-tracked or full per UseDelta) under the IHC limits.
//
// The best refined route across all iterations wins.
//
// Complexity: O(Iterations · (n² + IHCMaxIter · cost-path)).
package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// graspConstruct builds one greedy-randomized start route over the
// prefetched weights. alpha ∈ [0,1] (validated by the caller).
//
// Complexity: O(n²) time, O(n) space.
func graspConstruct(w []float64, n int, alpha float64, rng *rand.Rand) []int {
	var (
		route     = make([]int, n)
		remaining = make([]int, 0, n)
		rcl       = make([]int, 0, n) // indices into remaining
		dists     = make([]float64, 0, n)

		i       int
		current int
	)
	for i = 0; i < n; i++ {
		remaining = append(remaining, i)
	}

	// Random start city.
	current = rng.Intn(n)
	route[0] = current
	remaining = append(remaining[:current], remaining[current+1:]...)

	var (
		idx       int
		k         int
		minD      float64
		maxD      float64
		threshold float64
		pick      int
		city      int
	)
	for idx = 1; idx < n; idx++ {
		// Distances from the current city to every unvisited candidate.
		dists = dists[:0]
		minD = math.Inf(1)
		maxD = math.Inf(-1)
		for k = 0; k < len(remaining); k++ {
			var d = w[current*n+remaining[k]]
			dists = append(dists, d)
			if d < minD {
				minD = d
			}
			if d > maxD {
				maxD = d
			}
		}

		// RCL: candidates within the alpha-widened band above the minimum.
		threshold = minD + alpha*(maxD-minD)
		rcl = rcl[:0]
		for k = 0; k < len(dists); k++ {
			if dists[k] <= threshold {
				rcl = append(rcl, k)
			}
		}

		pick = rcl[rng.Intn(len(rcl))]
		city = remaining[pick]

		route[idx] = city
		remaining = append(remaining[:pick], remaining[pick+1:]...)
		current = city
	}

	return route
}

// GRASP runs greedy-randomized construction with hill-climb refinement on
// dist, with parameters p and a deterministic random stream derived from
// seed (0 ⇒ fixed default seed).
//
// Unset numeric fields of p receive their documented defaults; the
// effective configuration is echoed in Result.Meta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities, ErrNonFiniteWeight,
// ErrNegativeWeight, ErrInvalidParam, ErrUnknownNeighborhood.
func GRASP(dist matrix.Matrix, p GRASPParams, seed int64) (Result, error) {
	var begin = time.Now()

	p = p.normalized()
	if err := validateGRASPParams(p); err != nil {
		return Result{}, err
	}
	n, err := validateDistMatrix(dist, minMoveCities)
	if err != nil {
		return Result{}, err
	}
	w, err := prefetchWeights(dist, n)
	if err != nil {
		return Result{}, err
	}

	var (
		rng       = rngFromSeed(seed)
		bestRoute []int
		bestCost  = math.Inf(1)

		it         int
		start      []int
		localRoute []int
		localCost  float64
	)
	for it = 0; it < p.Iterations; it++ {
		start = graspConstruct(w, n, p.Alpha, rng)

		if p.UseDelta {
			localRoute, localCost = hillClimbDelta(w, n, start, p.IHCMaxIter, p.IHCStopNoImprove, p.Neighborhood, rng)
		} else {
			localRoute, localCost = hillClimb(w, n, start, p.IHCMaxIter, p.IHCStopNoImprove, p.Neighborhood, rng)
		}

		if localCost < bestCost {
			bestCost = localCost
			bestRoute = localRoute
		}
	}

	return Result{
		Route:   bestRoute,
		Cost:    round1e9(bestCost),
		Runtime: time.Since(begin),
		Meta:    Meta{Algorithm: AlgGRASP, Seed: seed, Params: p},
	}, nil
}
