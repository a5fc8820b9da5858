// Package tsp - tabu search.
//
// Single trajectory with multi-candidate exploration and short-term move
// memory. Each iteration draws NNeighbors independent candidate moves from
// the current route, discards those whose move key sits in the tabu memory
// — unless the candidate beats the best-ever cost (aspiration, which always
// takes precedence over the restriction) — and steps to the cheapest
// survivor. The accepted move's key enters the memory, evicting the oldest
// entry once TabuTenure keys are held.
//
// The move key is the bare (i, j) position pair regardless of operator,
// orientation-normalized for the symmetric operators (swap, reversal) and
// directed for insert. Operators touch different edge sets, so one key can
// stand for different structural transformations across the history; the
// memory forbids positions, not edges.
//
// Candidate costs are recomputed in full: with NNeighbors candidates per
// step the O(n) sums dominate anyway, and full evaluation stays exact for
// asymmetric instances under every operator.
//
// Complexity: O(maxIter · nNeighbors · (n + tenure)).
package tsp

import (
	"math"
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// moveKey is the (i, j) identity of a move in the tabu memory.
type moveKey struct {
	i, j int
}

// keyOf derives the memory key of a move. Swap is symmetric in its
// positions, so its key stores the ordered pair (reversal pairs arrive
// ordered already); insert is direction-sensitive and keeps the drawn
// order.
func keyOf(mv Move) moveKey {
	if mv.Op == Swap && mv.I > mv.J {
		return moveKey{i: mv.J, j: mv.I}
	}

	return moveKey{i: mv.I, j: mv.J}
}

// tabuRing is a fixed-capacity FIFO of the most recent move keys.
// Pushing at capacity overwrites the oldest entry.
type tabuRing struct {
	keys []moveKey
	head int // next write position
	size int // active entries, ≤ cap
}

// newTabuRing allocates a ring holding at most capacity keys
// (capacity ≥ 1, enforced by validateTabuParams).
func newTabuRing(capacity int) *tabuRing {
	return &tabuRing{keys: make([]moveKey, capacity)}
}

// contains reports whether k is among the active entries.
// Complexity: O(size).
func (t *tabuRing) contains(k moveKey) bool {
	var i int
	for i = 0; i < t.size; i++ {
		if t.keys[i] == k {
			return true
		}
	}

	return false
}

// push records k, evicting the oldest entry when full.
// Complexity: O(1).
func (t *tabuRing) push(k moveKey) {
	t.keys[t.head] = k
	t.head = (t.head + 1) % len(t.keys)
	if t.size < len(t.keys) {
		t.size++
	}
}

// TabuSearch runs tabu search on dist with parameters p and a
// deterministic random stream derived from seed (0 ⇒ fixed default seed).
//
// Unset numeric fields of p receive their documented defaults; the
// effective configuration is echoed in Result.Meta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities, ErrNonFiniteWeight,
// ErrNegativeWeight, ErrInvalidParam, ErrUnknownNeighborhood.
func TabuSearch(dist matrix.Matrix, p TabuParams, seed int64) (Result, error) {
	var begin = time.Now()

	p = p.normalized()
	if err := validateTabuParams(p); err != nil {
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

		ring      = newTabuRing(p.TabuTenure)
		noImprove int
		it        int
	)
	copy(bestRoute, current)

	for it = 0; it < p.MaxIter; it++ {
		var (
			bestCand     []int
			bestCandCost = math.Inf(1)
			bestCandKey  moveKey

			c        int
			mv       Move
			cand     []int
			candCost float64
			key      moveKey
		)

		for c = 0; c < p.NNeighbors; c++ {
			mv = randomMove(n, p.Neighborhood, rng)
			cand = applyMove(current, mv)
			candCost = routeCostFlat(w, n, cand)
			key = keyOf(mv)

			// Tabu restriction, overridden by aspiration: a strict
			// improvement over the best-ever cost always survives.
			if ring.contains(key) && candCost >= bestCost {
				continue
			}

			if candCost < bestCandCost {
				bestCand = cand
				bestCandCost = candCost
				bestCandKey = key
			}
		}

		// Every candidate was tabu: a non-improving iteration.
		if bestCand == nil {
			noImprove++
			if noImprove >= p.StopNoImprove {
				break
			}

			continue
		}

		current = bestCand
		currentCost = bestCandCost
		ring.push(bestCandKey)

		if currentCost < bestCost {
			bestCost = currentCost
			copy(bestRoute, current)
			noImprove = 0
		} else {
			noImprove++
		}

		if noImprove >= p.StopNoImprove {
			break
		}
	}

	return Result{
		Route:   bestRoute,
		Cost:    round1e9(bestCost),
		Runtime: time.Since(begin),
		Meta:    Meta{Algorithm: AlgTabuSearch, Seed: seed, Params: p},
	}, nil
}
