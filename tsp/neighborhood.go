// Package tsp - the local move model (swap / insert / two-opt reversal).
//
// Every engine explores the same neighborhood: pick two positions (i, j)
// of the route and transform it with one operator. Each operator comes in
// two halves that must stay in lockstep:
//
//   - applyMove builds the transformed route as a fresh permutation
//     (callers never alias current and candidate buffers);
//   - delta* computes the exact cost change in O(1) by touching only the
//     edges adjacent to the changed positions.
//
// The contract binding them is the package's primary correctness invariant:
//
//	routeCostFlat(applyMove(r, mv)) == routeCostFlat(r) + moveDelta(r, mv)
//
// within floating tolerance, for every valid (route, move) pair. The route
// is a cycle: route[n-1] connects back to route[0], so every neighbor
// lookup wraps around, and the wraparound cases below must stay distinct
// from the interior ones.
//
// Complexity: delta* are O(1); applyMove is O(1) for swap and O(|i-j|)
// for insert and reversal (physical element movement is unavoidable on a
// flat array).
package tsp

import "math/rand"

// randomMove draws a uniform move of the given operator: two distinct
// positions from the caller's random stream. TwoOpt stores the pair
// ordered (the reversal segment [i, j) needs i < j); Swap and Insert keep
// the drawn order, Insert because moving left and moving right are
// different transformations.
func randomMove(n int, op Neighborhood, rng *rand.Rand) Move {
	var i, j = randPair(n, rng)
	if op == TwoOpt && i > j {
		i, j = j, i
	}

	return Move{Op: op, I: i, J: j}
}

// applyMove returns a fresh route with mv applied. The input is never
// mutated. mv must be valid for len(route) (engine loops guarantee this).
func applyMove(route []int, mv Move) []int {
	var (
		n   = len(route)
		out = make([]int, n)
		k   int
	)
	copy(out, route)

	switch mv.Op {
	case Swap:
		out[mv.I], out[mv.J] = out[mv.J], out[mv.I]

	case TwoOpt:
		// Reverse the half-open segment [I, J).
		var l, r = mv.I, mv.J - 1
		for l < r {
			out[l], out[r] = out[r], out[l]
			l++
			r--
		}

	case Insert:
		var a = out[mv.I]
		if mv.I < mv.J {
			// Shift the block (I, J] one slot left, drop a at J.
			for k = mv.I; k < mv.J; k++ {
				out[k] = out[k+1]
			}
			out[mv.J] = a
		} else {
			// Shift the block [J, I) one slot right, drop a at J.
			for k = mv.I; k > mv.J; k-- {
				out[k] = out[k-1]
			}
			out[mv.J] = a
		}
	}

	return out
}

// moveDelta dispatches to the operator's O(1) delta over the prefetched
// weight buffer w (row-major, order n).
func moveDelta(w []float64, n int, route []int, mv Move) float64 {
	switch mv.Op {
	case Swap:
		return deltaSwap(w, n, route, mv.I, mv.J)
	case TwoOpt:
		return deltaTwoOpt(w, n, route, mv.I, mv.J)
	case Insert:
		return deltaInsert(w, n, route, mv.I, mv.J)
	default:
		return 0
	}
}

// neighbor generates one random neighbor of route under op, returning the
// fresh candidate, the move, and its O(1) cost delta.
func neighbor(w []float64, n int, route []int, op Neighborhood, rng *rand.Rand) ([]int, Move, float64) {
	var mv = randomMove(n, op, rng)

	return applyMove(route, mv), mv, moveDelta(w, n, route, mv)
}

// deltaSwap computes the cost change of exchanging route[i] and route[j].
//
// Three distinct adjacency cases, which must NOT be collapsed into one:
//
//  1. j == i+1 (direct neighbors): 3 edges are replaced —
//     (aPrev,a),(a,b),(b,bNext) become (aPrev,b),(b,a),(a,bNext).
//  2. i == 0 && j == n-1 (wraparound pair): the cyclic edges are replaced —
//     (bPrev,b),(b,a),(a,aNext) become (bPrev,a),(a,b),(b,aNext),
//     where (b → a) is the closing edge route[n-1] → route[0].
//  3. otherwise: 4 independent edges around each position are replaced.
//
// Positions are normalized to i < j first, which is why the wraparound
// pair can only surface as (0, n-1).
func deltaSwap(w []float64, n int, route []int, i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}

	var (
		a = route[i]
		b = route[j]

		aPrev = route[(i-1+n)%n]
		aNext = route[(i+1)%n]
		bPrev = route[(j-1+n)%n]
		bNext = route[(j+1)%n]

		delta float64
	)

	// Case 1: direct neighbors, a immediately before b.
	if j == i+1 {
		delta -= w[aPrev*n+a]
		delta -= w[a*n+b]
		delta -= w[b*n+bNext]

		delta += w[aPrev*n+b]
		delta += w[b*n+a]
		delta += w[a*n+bNext]

		return delta
	}

	// Case 2: wraparound pair — b immediately before a through the
	// closing edge.
	if i == 0 && j == n-1 {
		delta -= w[bPrev*n+b]
		delta -= w[b*n+a]
		delta -= w[a*n+aNext]

		delta += w[bPrev*n+a]
		delta += w[a*n+b]
		delta += w[b*n+aNext]

		return delta
	}

	// Case 3: disjoint positions, 4 edges replaced.
	delta -= w[aPrev*n+a]
	delta -= w[a*n+aNext]
	delta -= w[bPrev*n+b]
	delta -= w[b*n+bNext]

	delta += w[aPrev*n+b]
	delta += w[b*n+aNext]
	delta += w[bPrev*n+a]
	delta += w[a*n+bNext]

	return delta
}

// deltaTwoOpt computes the cost change of reversing the half-open segment
// [i, j) of the route, i < j. Exactly 2 edges change: the edge entering
// position i and the edge leaving position j-1, replaced by the two new
// boundary edges.
//
// Note: the 2-edge formula assumes the traversal cost of the reversed
// interior is unchanged, which holds for symmetric instances (the
// classical 2-opt setting). Swap and Insert deltas are exact for
// asymmetric matrices as well.
func deltaTwoOpt(w []float64, n int, route []int, i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}

	var (
		im1 = route[(i-1+n)%n] // city before the segment
		ip1 = route[i]         // first city of the segment
		jm1 = route[j-1]       // last city of the segment
		jp1 = route[j%n]       // city after the segment

		delta float64
	)

	delta -= w[im1*n+ip1]
	delta -= w[jm1*n+jp1]

	delta += w[im1*n+jm1]
	delta += w[ip1*n+jp1]

	return delta
}

// deltaInsert computes the cost change of removing the city at position i
// and re-inserting it at position j (shifting the block in between).
// Between 4 and 6 edges change: 3 around the removal gap, and up to 3 at
// the insertion point.
//
// Boundary care: when the insertion point is wraparound-adjacent to the
// removal point, route[(j±1)%n] is the city being removed itself; the
// correct neighbor is then the already-displaced aNext/aPrev, not the
// original occupant.
func deltaInsert(w []float64, n int, route []int, i, j int) float64 {
	if i == j {
		return 0
	}

	var (
		a     = route[i]
		aPrev = route[(i-1+n)%n]
		aNext = route[(i+1)%n]

		delta float64
	)

	// Removal: stitch the gap aPrev → aNext.
	delta -= w[aPrev*n+a]
	delta -= w[a*n+aNext]
	delta += w[aPrev*n+aNext]

	var left, right int
	if i < j {
		// Moving right: a lands between old route[j] and route[(j+1)%n].
		left = route[j]
		if (j+1)%n == i {
			// Insertion point wraps onto the removal position; the city
			// that actually follows is a's displaced successor.
			right = aNext
		} else {
			right = route[(j+1)%n]
		}
	} else {
		// Moving left: a lands between old route[(j-1)%n] and route[j].
		if (j-1+n)%n == i {
			left = aPrev
		} else {
			left = route[(j-1+n)%n]
		}
		right = route[j]
	}

	// Insertion: split left → right into left → a → right.
	delta -= w[left*n+right]
	delta += w[left*n+a]
	delta += w[a*n+right]

	return delta
}
