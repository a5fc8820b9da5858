package tsp

import (
	"errors"
	"math/rand"
	"testing"
)

// TestGraspConstruct_AlphaZeroIsGreedy: with alpha 0 the candidate band
// collapses to the minimum, so on a tie-free instance the construction is
// exactly nearest-neighbor from whatever start city the stream drew.
func TestGraspConstruct_AlphaZeroIsGreedy(t *testing.T) {
	// Distinct off-diagonal values: no ties, the RCL always has one entry.
	n := 6
	w := make([]float64, n*n)
	v := 1.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w[i*n+j] = v
				v++
			}
		}
	}

	route := graspConstruct(w, n, 0, rand.New(rand.NewSource(47)))
	requirePermutation(t, route, n)

	// Replay the greedy rule from the drawn start.
	visited := make([]bool, n)
	visited[route[0]] = true
	current := route[0]
	for step := 1; step < n; step++ {
		next := -1
		for c := 0; c < n; c++ {
			if visited[c] {
				continue
			}
			if next == -1 || w[current*n+c] < w[current*n+next] {
				next = c
			}
		}
		if route[step] != next {
			t.Fatalf("step %d: construction chose %d, greedy chooses %d (route %v)",
				step, route[step], next, route)
		}
		visited[next] = true
		current = next
	}
}

// TestGraspConstruct_ValidAcrossAlphas: every alpha in [0,1] must yield a
// permutation, including the degenerate all-equal instance where the RCL
// is the whole candidate list.
func TestGraspConstruct_ValidAcrossAlphas(t *testing.T) {
	rng := rand.New(rand.NewSource(53))

	for _, alpha := range []float64{0, 0.3, 0.5, 1} {
		for _, n := range []int{4, 9, 25} {
			route := graspConstruct(intWeightsAsym(n, rng), n, alpha, rng)
			requirePermutation(t, route, n)
		}
	}

	// All-equal distances: uniform selection, still a permutation.
	n := 8
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				w[i*n+j] = 5
			}
		}
	}
	route := graspConstruct(w, n, 0, rng)
	requirePermutation(t, route, n)
}

// TestGRASP_DeterministicAndConsistent: fixed seed ⇒ fixed result; the
// reported cost belongs to the reported route and beats a random tour.
func TestGRASP_DeterministicAndConsistent(t *testing.T) {
	setup := rand.New(rand.NewSource(59))

	n := 16
	w := intWeightsSym(n, setup)
	dist := denseFromFlat(t, w, n)

	p := DefaultGRASPParams()
	p.Iterations = 20
	p.Neighborhood = TwoOpt

	res1, err := GRASP(dist, p, 77)
	if err != nil {
		t.Fatalf("GRASP: %v", err)
	}
	res2, err := GRASP(dist, p, 77)
	if err != nil {
		t.Fatalf("GRASP (second run): %v", err)
	}

	requirePermutation(t, res1.Route, n)
	if res1.Cost != res2.Cost {
		t.Fatalf("same seed, different costs: %v vs %v", res1.Cost, res2.Cost)
	}

	if recomputed := round1e9(routeCostFlat(w, n, res1.Route)); res1.Cost != recomputed {
		t.Fatalf("reported cost %v, route recomputes to %v", res1.Cost, recomputed)
	}

	randomTour := round1e9(routeCostFlat(w, n, randPermutation(n, rand.New(rand.NewSource(4)))))
	if res1.Cost > randomTour {
		t.Fatalf("GRASP cost %v worse than a random tour %v", res1.Cost, randomTour)
	}
}

// TestGRASP_ConfigErrors: the RCL alpha domain is [0,1]; an explicit zero
// is legal and must not be rejected or replaced.
func TestGRASP_ConfigErrors(t *testing.T) {
	dist := denseFromFlat(t, intWeightsSym(6, rand.New(rand.NewSource(61))), 6)

	if _, err := GRASP(dist, GRASPParams{Alpha: 2}, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("alpha=2: error = %v, want ErrInvalidParam", err)
	}
	if _, err := GRASP(dist, GRASPParams{Alpha: -0.1}, 0); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("alpha=-0.1: error = %v, want ErrInvalidParam", err)
	}
	if _, err := GRASP(dist, GRASPParams{Neighborhood: Neighborhood(8)}, 0); !errors.Is(err, ErrUnknownNeighborhood) {
		t.Fatalf("bad neighborhood: error = %v, want ErrUnknownNeighborhood", err)
	}

	res, err := GRASP(dist, GRASPParams{Alpha: 0, Iterations: 5}, 0)
	if err != nil {
		t.Fatalf("explicit alpha=0 rejected: %v", err)
	}
	got, ok := res.Meta.Params.(GRASPParams)
	if !ok {
		t.Fatalf("meta params type %T", res.Meta.Params)
	}
	if got.Alpha != 0 {
		t.Fatalf("explicit alpha=0 was replaced with %v", got.Alpha)
	}
}
