package tsp

import (
	"errors"
	"testing"
)

// TestEnumNames_RoundTrip: String and Parse* are inverses over the closed
// sets, and unknown names map to their dedicated sentinels.
func TestEnumNames_RoundTrip(t *testing.T) {
	for _, nb := range []Neighborhood{Swap, Insert, TwoOpt} {
		got, err := ParseNeighborhood(nb.String())
		if err != nil || got != nb {
			t.Fatalf("neighborhood %v: parse(%q) = %v, %v", nb, nb.String(), got, err)
		}
	}
	for _, s := range []Selection{Tournament, Roulette, Ranking} {
		got, err := ParseSelection(s.String())
		if err != nil || got != s {
			t.Fatalf("selection %v: parse(%q) = %v, %v", s, s.String(), got, err)
		}
	}
	for _, c := range []Crossover{OX, PMX, CX} {
		got, err := ParseCrossover(c.String())
		if err != nil || got != c {
			t.Fatalf("crossover %v: parse(%q) = %v, %v", c, c.String(), got, err)
		}
	}
	for _, a := range []Algorithm{
		AlgHillClimbing, AlgSimulatedAnnealing, AlgTabuSearch,
		AlgGRASP, AlgGenetic, AlgNearestNeighbor,
	} {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Fatalf("algorithm %v: parse(%q) = %v, %v", a, a.String(), got, err)
		}
	}

	if _, err := ParseNeighborhood("2opt"); !errors.Is(err, ErrUnknownNeighborhood) {
		t.Fatalf("parse(\"2opt\"): error = %v", err)
	}
	if _, err := ParseSelection("elitist"); !errors.Is(err, ErrUnknownSelection) {
		t.Fatalf("parse(\"elitist\"): error = %v", err)
	}
	if _, err := ParseCrossover("ox"); !errors.Is(err, ErrUnknownCrossover) {
		t.Fatalf("parse(\"ox\"): error = %v", err)
	}
	if _, err := ParseAlgorithm("brute_force"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("parse(\"brute_force\"): error = %v", err)
	}
}

// TestValidatePermutation covers the structural route invariant.
func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name  string
		route []int
		n     int
		ok    bool
	}{
		{"identity", []int{0, 1, 2, 3}, 4, true},
		{"shuffled", []int{2, 0, 3, 1}, 4, true},
		{"single", []int{0}, 1, true},
		{"short", []int{0, 1, 2}, 4, false},
		{"long", []int{0, 1, 2, 3, 4}, 4, false},
		{"duplicate", []int{0, 1, 1, 3}, 4, false},
		{"out of range", []int{0, 1, 2, 4}, 4, false},
		{"negative", []int{0, -1, 2, 3}, 4, false},
		{"empty vs zero", nil, 0, false},
	}
	for _, tc := range cases {
		err := ValidatePermutation(tc.route, tc.n)
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("%s: error = %v, want ErrDimensionMismatch", tc.name, err)
		}
	}
}
