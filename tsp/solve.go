// Package tsp - unified dispatcher.
//
// Solve is the canonical entry point: it routes a distance matrix and an
// Options bundle to the requested engine. Every engine keeps the same
// contract — a pure function of (matrix, parameters, seed) returning a
// valid route permutation, its closed-cycle cost, the wall-clock runtime,
// and an echo of the effective configuration.
//
// Design principles:
//   - Deterministic: seed routing to every stochastic engine; no
//     time-based randomness anywhere.
//   - Strict sentinels: only errors from types.go; no fmt.Errorf in the
//     library.
//   - Fail fast: configuration errors surface before any search loop runs.
package tsp

import "github.com/anteqkois/inteligencja-obliczeniowa/matrix"

// Solve validates inputs and routes to the engine selected by opts.Algo.
// Only the parameter set matching the algorithm is consulted; see the
// engine functions for per-engine contracts and error sets.
//
// Complexity: per chosen engine.
func Solve(dist matrix.Matrix, opts Options) (Result, error) {
	switch opts.Algo {
	case AlgHillClimbing:
		return HillClimb(dist, opts.HillClimbing, opts.Seed)
	case AlgSimulatedAnnealing:
		return Anneal(dist, opts.Annealing, opts.Seed)
	case AlgTabuSearch:
		return TabuSearch(dist, opts.Tabu, opts.Seed)
	case AlgGRASP:
		return GRASP(dist, opts.GRASP, opts.Seed)
	case AlgGenetic:
		return Genetic(dist, opts.Genetic, opts.Seed)
	case AlgNearestNeighbor:
		return NearestNeighbor(dist, opts.NearestNeighbor)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
