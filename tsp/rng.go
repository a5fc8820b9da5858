// Package tsp - RNG utilities shared by all engines.
//
// This file centralizes deterministic random generation for the solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Performance: no hidden allocations in hot paths; O(1) helpers, O(n) shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     concurrent solver invocations; every engine call builds its own stream
//     from the caller's seed.
//   - Use deriveRNG to create independent substreams (multistart restarts).
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Multistart engines need independent substreams derived from one base RNG.
//   - A SplitMix64-style avalanche mix eliminates correlations between streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream based on a base
// RNG and a stream identifier. If base==nil, defaultRNGSeed is the parent.
// Otherwise base.Int63() is consumed once to decorrelate consecutive
// derivations, then mixed with the stream via deriveSeed.
//
// Usage: call during setup (not in hot loops) to create per-restart RNGs.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		// Int63() advances base state; intentional, so that reusing the same
		// stream id by mistake still yields distinct children.
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		r *rand.Rand
		i int
		j int
	)
	r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randPermutation returns a permutation of 0..n-1 generated deterministically
// from rng. Callers validate n upfront; n<=0 yields an empty slice.
//
// Complexity: O(n) time, O(n) space.
func randPermutation(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}

// randPair draws a uniform pair of distinct indices (i, j) from [0..n-1],
// i≠j, in the order produced by rng. Callers guarantee n ≥ 2.
//
// Complexity: O(1) expected.
func randPair(n int, rng *rand.Rand) (int, int) {
	var (
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	for j == i {
		j = rng.Intn(n)
	}

	return i, j
}
