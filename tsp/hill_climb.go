// Package tsp - multistart hill climbing.
//
// Each trajectory starts from a fresh random permutation and repeatedly
// generates one random neighbor: strictly improving candidates are
// accepted, everything else bumps a stagnation counter. A trajectory ends
// at maxIter iterations or stopNoImprove consecutive failures; the engine
// runs nStarts independent trajectories and reports the global best.
//
// Trajectories never influence each other: every restart owns a derived
// RNG substream, so the whole run is reproducible from one seed while the
// starts stay decorrelated.
//
// Two inner loops exist: hillClimb recomputes every candidate cost in O(n)
// (the ground-truth path), hillClimbDelta tracks costs incrementally in
// O(1) per candidate. Both consume the identical random sequence, so for a
// fixed stream they follow the same trajectory; tests rely on that.
//
// Complexity: O(nStarts · maxIter · n) full path,
// O(nStarts · maxIter) delta path plus O(n) per accepted insert/reversal.
package tsp

import (
	"math"
	"math/rand"
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// hillClimb runs one trajectory with full O(n) candidate evaluation.
// Returns the best route found and its cost (unrounded).
func hillClimb(w []float64, n int, route []int, maxIter, stopNoImprove int, op Neighborhood, rng *rand.Rand) ([]int, float64) {
	var (
		best      = make([]int, n)
		bestCost  float64
		noImprove int
		it        int
	)
	copy(best, route)
	bestCost = routeCostFlat(w, n, best)

	var (
		cand     []int
		candCost float64
		mv       Move
	)
	for it = 0; it < maxIter; it++ {
		mv = randomMove(n, op, rng)
		cand = applyMove(best, mv)
		candCost = routeCostFlat(w, n, cand)

		if candCost < bestCost {
			best = cand
			bestCost = candCost
			noImprove = 0
		} else {
			noImprove++
		}

		if noImprove >= stopNoImprove {
			break
		}
	}

	return best, bestCost
}

// hillClimbDelta runs one trajectory with O(1) incremental cost updates.
// Same acceptance rule and random sequence as hillClimb; only the cost
// bookkeeping differs.
func hillClimbDelta(w []float64, n int, route []int, maxIter, stopNoImprove int, op Neighborhood, rng *rand.Rand) ([]int, float64) {
	var (
		best      = make([]int, n)
		bestCost  float64
		noImprove int
		it        int
	)
	copy(best, route)
	bestCost = routeCostFlat(w, n, best)

	var (
		mv    Move
		delta float64
	)
	for it = 0; it < maxIter; it++ {
		mv = randomMove(n, op, rng)
		delta = moveDelta(w, n, best, mv)

		if delta < 0 {
			best = applyMove(best, mv)
			bestCost += delta
			noImprove = 0
		} else {
			noImprove++
		}

		if noImprove >= stopNoImprove {
			break
		}
	}

	return best, bestCost
}

// HillClimb runs multistart hill climbing on dist with parameters p and a
// deterministic random stream derived from seed (0 ⇒ fixed default seed).
//
// Unset numeric fields of p receive their documented defaults; the
// effective configuration is echoed in Result.Meta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities, ErrNonFiniteWeight,
// ErrNegativeWeight, ErrInvalidParam, ErrUnknownNeighborhood.
func HillClimb(dist matrix.Matrix, p HillClimbingParams, seed int64) (Result, error) {
	var begin = time.Now()

	p = p.normalized()
	if err := validateHillClimbingParams(p); err != nil {
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

		s          int
		localRoute []int
		localCost  float64
	)
	for s = 0; s < p.NStarts; s++ {
		// Independent substream per restart; reproducible from seed.
		var sr = deriveRNG(rng, uint64(s))
		var start = randPermutation(n, sr)

		if p.UseDelta {
			localRoute, localCost = hillClimbDelta(w, n, start, p.MaxIter, p.StopNoImprove, p.Neighborhood, sr)
		} else {
			localRoute, localCost = hillClimb(w, n, start, p.MaxIter, p.StopNoImprove, p.Neighborhood, sr)
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
		Meta:    Meta{Algorithm: AlgHillClimbing, Seed: seed, Params: p},
	}, nil
}
