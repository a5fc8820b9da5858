// Package tsp - genetic algorithm.
//
// Population-based search: PopulationSize random permutations evolve for
// Generations rounds. Each round rebuilds the population from scratch —
// the single best individual is copied unchanged into slot 0 (elitism),
// every other slot is filled by selecting two parents, recombining them
// into one child, and mutating the child with probability MutationProb
// using one local move operator. The best individual ever evaluated is
// reported.
//
// All three crossovers emit valid permutations by construction — they
// place each city exactly once, never by post-hoc repair. This is a hard
// invariant (the permutation property tests cover it, including the
// degenerate parent1 == parent2 case).
//
// Complexity: O(Generations · PopulationSize · n) plus the selection
// overhead (ranking re-sorts the cost array per draw, as the reference
// does).
package tsp

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
)

// tournamentK is the tournament size: sample that many distinct
// individuals, keep the cheapest.
const tournamentK = 3

// rouletteFloor keeps 1/cost finite for (theoretical) zero-cost tours.
const rouletteFloor = 1e-9

// selectTournament samples tournamentK distinct individuals uniformly and
// returns the index of the cheapest among them. Populations smaller than
// the tournament size use the whole population.
func selectTournament(costs []float64, rng *rand.Rand) int {
	var k = tournamentK
	if k > len(costs) {
		k = len(costs)
	}
	var (
		perm = rng.Perm(len(costs))
		best = perm[0]
		t    int
	)
	for t = 1; t < k; t++ {
		if costs[perm[t]] < costs[best] {
			best = perm[t]
		}
	}

	return best
}

// selectRoulette samples an index with probability proportional to 1/cost.
// All-equal costs degenerate to uniform selection by construction.
func selectRoulette(costs []float64, rng *rand.Rand) int {
	var (
		total float64
		i     int
	)
	for i = 0; i < len(costs); i++ {
		total += 1.0 / (costs[i] + rouletteFloor)
	}

	var r = rng.Float64() * total
	for i = 0; i < len(costs); i++ {
		r -= 1.0 / (costs[i] + rouletteFloor)
		if r <= 0 {
			return i
		}
	}

	// FP underflow on the final subtraction: fall back to the last index.
	return len(costs) - 1
}

// selectRanking sorts individuals by cost and samples with probability
// proportional to rank: the best of N gets weight N, the worst gets 1.
func selectRanking(costs []float64, rng *rand.Rand) int {
	var (
		nPop  = len(costs)
		order = make([]int, nPop)
		i     int
	)
	for i = 0; i < nPop; i++ {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return costs[order[a]] < costs[order[b]] })

	// Sum of weights N + (N-1) + … + 1.
	var total = float64(nPop*(nPop+1)) / 2
	var r = rng.Float64() * total
	for i = 0; i < nPop; i++ {
		r -= float64(nPop - i)
		if r <= 0 {
			return order[i]
		}
	}

	return order[nPop-1]
}

// selectParent dispatches to the configured selection scheme and returns
// the chosen individual's index.
func selectParent(costs []float64, scheme Selection, rng *rand.Rand) int {
	switch scheme {
	case Tournament:
		return selectTournament(costs, rng)
	case Roulette:
		return selectRoulette(costs, rng)
	default:
		return selectRanking(costs, rng)
	}
}

// crossoverOX is order crossover: a random contiguous slice [i, j) of
// parent 1 is copied into the child at the same positions; the remaining
// positions are filled — in child-index order starting just after the
// slice end, wrapping — with parent 2's cities in their parent-2 order,
// skipping cities already placed.
func crossoverOX(p1, p2 []int, rng *rand.Rand) []int {
	var (
		n    = len(p1)
		i, j = randPair(n, rng)
	)
	if i > j {
		i, j = j, i
	}

	var (
		child = make([]int, n)
		used  = make([]bool, n)
		k     int
	)
	for k = 0; k < n; k++ {
		child[k] = -1
	}
	for k = i; k < j; k++ {
		child[k] = p1[k]
		used[p1[k]] = true
	}

	var pos = j
	for k = 0; k < n; k++ {
		if used[p2[k]] {
			continue
		}
		if pos == n {
			pos = 0
		}
		child[pos] = p2[k]
		used[p2[k]] = true
		pos++
	}

	return child
}

// crossoverPMX is partially matched crossover: a random slice [i, j) of
// parent 1 is copied into the child; each parent-2 city of that range not
// yet placed finds its slot by following the mapping chain
// "city → position of parent-1's occupant in parent 2 → …" until an empty
// slot appears; every remaining empty slot takes parent 2's city directly.
func crossoverPMX(p1, p2 []int, rng *rand.Rand) []int {
	var (
		n    = len(p1)
		i, j = randPair(n, rng)
	)
	if i > j {
		i, j = j, i
	}

	var (
		child   = make([]int, n)
		used    = make([]bool, n)
		posInP2 = make([]int, n) // posInP2[city] = its index in p2
		k       int
	)
	for k = 0; k < n; k++ {
		child[k] = -1
		posInP2[p2[k]] = k
	}
	for k = i; k < j; k++ {
		child[k] = p1[k]
		used[p1[k]] = true
	}

	var (
		val int
		pos int
	)
	for k = i; k < j; k++ {
		val = p2[k]
		if used[val] {
			continue
		}
		// Chase the displacement chain until an empty child slot.
		pos = k
		for child[pos] != -1 {
			pos = posInP2[p1[pos]]
		}
		child[pos] = val
		used[val] = true
	}

	for k = 0; k < n; k++ {
		if child[k] == -1 {
			child[k] = p2[k]
		}
	}

	return child
}

// crossoverCX is cycle crossover: starting at index 0, the cycle of
// indices linking the parents (index → position of parent 2's value in
// parent 1 → …) is traced until it closes; cycle positions take parent 1's
// value, every other position takes parent 2's.
func crossoverCX(p1, p2 []int, _ *rand.Rand) []int {
	var (
		n       = len(p1)
		child   = make([]int, n)
		inCycle = make([]bool, n)
		posInP1 = make([]int, n) // posInP1[city] = its index in p1
		k       int
	)
	for k = 0; k < n; k++ {
		posInP1[p1[k]] = k
	}

	var idx = 0
	for !inCycle[idx] {
		inCycle[idx] = true
		idx = posInP1[p2[idx]]
	}

	for k = 0; k < n; k++ {
		if inCycle[k] {
			child[k] = p1[k]
		} else {
			child[k] = p2[k]
		}
	}

	return child
}

// recombine dispatches to the configured crossover operator.
func recombine(p1, p2 []int, op Crossover, rng *rand.Rand) []int {
	switch op {
	case OX:
		return crossoverOX(p1, p2, rng)
	case PMX:
		return crossoverPMX(p1, p2, rng)
	default:
		return crossoverCX(p1, p2, rng)
	}
}

// Genetic runs the genetic algorithm on dist with parameters p and a
// deterministic random stream derived from seed (0 ⇒ fixed default seed).
//
// Unset numeric fields of p receive their documented defaults; the
// effective configuration is echoed in Result.Meta.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrTooFewCities, ErrNonFiniteWeight,
// ErrNegativeWeight, ErrInvalidParam, ErrUnknownSelection,
// ErrUnknownCrossover, ErrUnknownNeighborhood.
func Genetic(dist matrix.Matrix, p GeneticParams, seed int64) (Result, error) {
	var begin = time.Now()

	p = p.normalized()
	if err := validateGeneticParams(p); err != nil {
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

		population = make([][]int, p.PopulationSize)
		costs      = make([]float64, p.PopulationSize)
		i          int
	)
	for i = 0; i < p.PopulationSize; i++ {
		population[i] = randPermutation(n, rng)
		costs[i] = routeCostFlat(w, n, population[i])
	}

	var (
		bestRoute = make([]int, n)
		bestCost  = math.Inf(1)
	)
	for i = 0; i < p.PopulationSize; i++ {
		if costs[i] < bestCost {
			bestCost = costs[i]
			copy(bestRoute, population[i])
		}
	}

	var (
		g     int
		child []int
	)
	for g = 0; g < p.Generations; g++ {
		var newPop = make([][]int, 0, p.PopulationSize)

		// Elitism: the incumbent best survives unchanged in slot 0.
		var elite = make([]int, n)
		copy(elite, bestRoute)
		newPop = append(newPop, elite)

		for len(newPop) < p.PopulationSize {
			var (
				par1 = population[selectParent(costs, p.Selection, rng)]
				par2 = population[selectParent(costs, p.Selection, rng)]
			)
			child = recombine(par1, par2, p.Crossover, rng)

			if rng.Float64() < p.MutationProb {
				child = applyMove(child, randomMove(n, p.MutationType, rng))
			}

			newPop = append(newPop, child)
		}

		population = newPop
		for i = 0; i < p.PopulationSize; i++ {
			costs[i] = routeCostFlat(w, n, population[i])
		}

		for i = 0; i < p.PopulationSize; i++ {
			if costs[i] < bestCost {
				bestCost = costs[i]
				copy(bestRoute, population[i])
			}
		}
	}

	return Result{
		Route:   bestRoute,
		Cost:    round1e9(bestCost),
		Runtime: time.Since(begin),
		Meta:    Meta{Algorithm: AlgGenetic, Seed: seed, Params: p},
	}, nil
}
