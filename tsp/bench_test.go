package tsp

import (
	"math/rand"
	"testing"
)

// benchN is the instance size for the micro-benchmarks: large enough for
// the O(1)-vs-O(n) gap to show, small enough to set up instantly.
const benchN = 200

func benchSetup(b *testing.B) ([]float64, []int) {
	b.Helper()

	rng := rand.New(rand.NewSource(1))

	return intWeightsSym(benchN, rng), randPermutation(benchN, rng)
}

func BenchmarkMoveDelta_Swap(b *testing.B) {
	w, route := benchSetup(b)
	rng := rand.New(rand.NewSource(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mv := randomMove(benchN, Swap, rng)
		_ = moveDelta(w, benchN, route, mv)
	}
}

func BenchmarkMoveDelta_TwoOpt(b *testing.B) {
	w, route := benchSetup(b)
	rng := rand.New(rand.NewSource(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mv := randomMove(benchN, TwoOpt, rng)
		_ = moveDelta(w, benchN, route, mv)
	}
}

func BenchmarkFullRecompute(b *testing.B) {
	w, route := benchSetup(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = routeCostFlat(w, benchN, route)
	}
}

func BenchmarkHillClimb_FullPath(b *testing.B) {
	w, route := benchSetup(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hillClimb(w, benchN, route, 200, 200, Swap, rand.New(rand.NewSource(3)))
	}
}

func BenchmarkHillClimb_DeltaPath(b *testing.B) {
	w, route := benchSetup(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hillClimbDelta(w, benchN, route, 200, 200, Swap, rand.New(rand.NewSource(3)))
	}
}
