package tsp

import (
	"math/rand"
	"testing"
)

// TestRngFromSeed_ZeroPolicy: seed 0 must behave exactly like the fixed
// default seed, so "no seed given" is still fully reproducible.
func TestRngFromSeed_ZeroPolicy(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)

	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("seed 0 diverged from default seed at draw %d", i)
		}
	}
}

// TestRngFromSeed_Deterministic: one seed, one sequence.
func TestRngFromSeed_Deterministic(t *testing.T) {
	a := rngFromSeed(42)
	b := rngFromSeed(42)

	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatalf("same seed produced different sequences at draw %d", i)
		}
	}
}

// TestDeriveRNG_IndependentStreams: substreams derived with different
// stream ids, or repeatedly with the same id, must not coincide.
func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := rngFromSeed(7)
	s0 := deriveRNG(base, 0)
	s1 := deriveRNG(base, 1)

	same := true
	for i := 0; i < 16; i++ {
		if s0.Int63() != s1.Int63() {
			same = false

			break
		}
	}
	if same {
		t.Fatal("streams 0 and 1 produced identical prefixes")
	}

	// Reusing a stream id still yields a fresh child: the base advances.
	base = rngFromSeed(7)
	a := deriveRNG(base, 5)
	b := deriveRNG(base, 5)
	same = true
	for i := 0; i < 16; i++ {
		if a.Int63() != b.Int63() {
			same = false

			break
		}
	}
	if same {
		t.Fatal("repeated derivation with one id produced the same child stream")
	}
}

// TestDeriveRNG_ReproducibleFromSeed: the whole derivation tree is a pure
// function of the root seed.
func TestDeriveRNG_ReproducibleFromSeed(t *testing.T) {
	runOnce := func() []int64 {
		base := rngFromSeed(99)
		var out []int64
		for s := 0; s < 4; s++ {
			child := deriveRNG(base, uint64(s))
			out = append(out, child.Int63(), child.Int63())
		}

		return out
	}

	first := runOnce()
	second := runOnce()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("derivation tree not reproducible at draw %d", i)
		}
	}
}

// TestRandPermutation_Valid: output must be a permutation for every size,
// and deterministic for a fixed stream.
func TestRandPermutation_Valid(t *testing.T) {
	for _, n := range []int{1, 2, 5, 64} {
		rng := rand.New(rand.NewSource(13))
		p := randPermutation(n, rng)
		requirePermutation(t, p, n)

		rng = rand.New(rand.NewSource(13))
		q := randPermutation(n, rng)
		for i := range p {
			if p[i] != q[i] {
				t.Fatalf("n=%d: permutation not deterministic at index %d", n, i)
			}
		}
	}

	if p := randPermutation(0, rand.New(rand.NewSource(1))); p != nil {
		t.Fatalf("n=0: got %v, want nil", p)
	}
}

// TestRandPair_DistinctInRange draws many pairs and checks the contract.
func TestRandPair_DistinctInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for trial := 0; trial < 1000; trial++ {
		i, j := randPair(6, rng)
		if i == j || i < 0 || i >= 6 || j < 0 || j >= 6 {
			t.Fatalf("bad pair (%d, %d)", i, j)
		}
	}

	// n=2 has exactly one unordered pair; both orders must appear.
	var seen01, seen10 bool
	for trial := 0; trial < 100; trial++ {
		i, j := randPair(2, rng)
		if i == 0 && j == 1 {
			seen01 = true
		}
		if i == 1 && j == 0 {
			seen10 = true
		}
	}
	if !seen01 || !seen10 {
		t.Fatal("n=2: pair order not uniform over 100 draws")
	}
}
