// Package tsp - simulated annealing.
//
// Single trajectory with probabilistic acceptance of worsening moves under
// a geometric cooling schedule: improving candidates are always accepted,
// a worsening candidate with delta Δ survives with probability exp(-Δ/T).
// After every iteration — accepted or not — the temperature cools by
// T *= Alpha, so MaxIter bounds temperature steps, not acceptances.
// The trajectory ends once T ≤ TMin or the iteration budget runs out; the
// best route ever visited is reported, not the final one.
//
// UseDelta switches between the O(n) full-recompute cost path and the O(1)
// delta-tracked path. Both consume the identical random sequence and apply
// the identical acceptance rule, so they follow the same trajectory; the
// equivalence is covered by tests.
//
// Complexity: O(maxIter · n) full path, O(maxIter) delta path plus O(n)
// per accepted insert/reversal.
package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// saAccept decides acceptance of a candidate with cost change delta at
// temperature temp. Improving moves pass unconditionally; the uniform draw
// happens only for worsening moves, keeping the RNG sequence identical
// across cost paths.
func saAccept(delta, temp float64, rng *rand.Rand) bool {
	if delta < 0 {
		return true
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

// Anneal runs simulated annealing on dist with parameters p and a
// deterministic random stream derived from seed (0 ⇒ fixed default seed).
//
// Unset numeric fields of p receive their documented defaults; the
// effective configuration is echoed in Result.Meta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities, ErrNonFiniteWeight,
// ErrNegativeWeight, ErrInvalidParam, ErrUnknownNeighborhood.
func Anneal(dist matrix.Matrix, p AnnealingParams, seed int64) (Result, error) {
	var begin = time.Now()

	p = p.normalized()
	if err := validateAnnealingParams(p); err != nil {
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
		rng = rngFromSeed(seed)

		current     = randPermutation(n, rng)
		currentCost = routeCostFlat(w, n, current)

		bestRoute = make([]int, n)
		bestCost  = currentCost

		temp = p.T0
		it   int

		mv       Move
		cand     []int
		candCost float64
		delta    float64
	)
	copy(bestRoute, current)

	for temp > p.TMin && it < p.MaxIter {
		mv = randomMove(n, p.Neighborhood, rng)
		cand = applyMove(current, mv)

		if p.UseDelta {
			delta = moveDelta(w, n, current, mv)
			candCost = currentCost + delta
		} else {
			candCost = routeCostFlat(w, n, cand)
			delta = candCost - currentCost
		}

		if saAccept(delta, temp, rng) {
			current = cand
			currentCost = candCost

			if currentCost < bestCost {
				bestCost = currentCost
				copy(bestRoute, current)
			}
		}

		temp *= p.Alpha
		it++
	}

	return Result{
		Route:   bestRoute,
		Cost:    round1e9(bestCost),
		Runtime: time.Since(begin),
		Meta:    Meta{Algorithm: AlgSimulatedAnnealing, Seed: seed, Params: p},
	}, nil
}
