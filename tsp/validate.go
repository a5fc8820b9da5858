// Package tsp - validation utilities shared by all engines.
//
// This file contains small, tight helpers that:
//  1. Validate distance matrices (shape, order) before any search loop runs.
//  2. Validate engine parameter structs (domains, closed enums).
//  3. Validate route permutations (the package-wide structural invariant).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Fail fast: a solver call either completes with a valid result or
//     returns a configuration error before entering its search loop.
package tsp

import "github.com/anteqkois/inteligencja-obliczeniowa/matrix"

// minMoveCities is the smallest instance the move operators are defined on.
// Below n=4 the swap/insert adjacency cases collapse onto each other and
// two-opt boundary math degenerates, so move-based engines reject it.
const minMoveCities = 4

// validateDistMatrix checks shape only (non-nil, square, n ≥ minN) and
// returns the matrix order. Per-entry value checks (finite, non-negative)
// happen exactly once in prefetchWeights / RouteCost.
//
// Complexity: O(1).
func validateDistMatrix(dist matrix.Matrix, minN int) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr < minN {
		return 0, ErrTooFewCities
	}

	return nr, nil
}

// ValidatePermutation checks that route is a permutation of {0..n-1} of
// length n. It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(route []int, n int) error {
	if n <= 0 || len(route) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// validNeighborhood reports membership in the closed operator set.
//
// Complexity: O(1).
func validNeighborhood(nb Neighborhood) error {
	switch nb {
	case Swap, Insert, TwoOpt:
		return nil
	default:
		return ErrUnknownNeighborhood
	}
}

// validateHillClimbingParams enforces the HillClimbingParams domain.
//
// Complexity: O(1).
func validateHillClimbingParams(p HillClimbingParams) error {
	if p.NStarts < 1 || p.MaxIter < 1 || p.StopNoImprove < 1 {
		return ErrInvalidParam
	}

	return validNeighborhood(p.Neighborhood)
}

// validateAnnealingParams enforces the AnnealingParams domain.
// The geometric schedule requires 0 < Alpha < 1 and 0 < TMin ≤ T0.
//
// Complexity: O(1).
func validateAnnealingParams(p AnnealingParams) error {
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return ErrInvalidParam
	}
	if p.T0 <= 0 || p.TMin <= 0 || p.TMin > p.T0 {
		return ErrInvalidParam
	}
	if p.MaxIter < 1 {
		return ErrInvalidParam
	}

	return validNeighborhood(p.Neighborhood)
}

// validateTabuParams enforces the TabuParams domain.
//
// Complexity: O(1).
func validateTabuParams(p TabuParams) error {
	if p.MaxIter < 1 || p.StopNoImprove < 1 {
		return ErrInvalidParam
	}
	if p.TabuTenure < 1 || p.NNeighbors < 1 {
		return ErrInvalidParam
	}

	return validNeighborhood(p.Neighborhood)
}

// validateGRASPParams enforces the GRASPParams domain (RCL alpha ∈ [0,1]).
//
// Complexity: O(1).
func validateGRASPParams(p GRASPParams) error {
	if p.Alpha < 0 || p.Alpha > 1 {
		return ErrInvalidParam
	}
	if p.Iterations < 1 || p.IHCMaxIter < 1 || p.IHCStopNoImprove < 1 {
		return ErrInvalidParam
	}

	return validNeighborhood(p.Neighborhood)
}

// validateGeneticParams enforces the GeneticParams domain. The population
// must hold the elite plus at least one offspring slot.
//
// Complexity: O(1).
func validateGeneticParams(p GeneticParams) error {
	if p.PopulationSize < 2 || p.Generations < 1 {
		return ErrInvalidParam
	}
	if p.MutationProb < 0 || p.MutationProb > 1 {
		return ErrInvalidParam
	}
	switch p.Selection {
	case Tournament, Roulette, Ranking:
	default:
		return ErrUnknownSelection
	}
	switch p.Crossover {
	case OX, PMX, CX:
	default:
		return ErrUnknownCrossover
	}

	return validNeighborhood(p.MutationType)
}

// validateStartCity verifies start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartCity(n, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}
