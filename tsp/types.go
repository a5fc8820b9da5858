// Package tsp - shared types and sentinel errors.
//
// This file defines the closed enums used for operator/selection/crossover
// dispatch, the uniform solver Result, and ONLY package-level sentinel
// errors. All solvers MUST return these sentinels and tests MUST check them
// via errors.Is. No solver panics on user input.
package tsp

import (
	"errors"
	"time"
)

var (
	// ErrNilMatrix indicates that a nil distance matrix was supplied.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare signals that the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch indicates an ill-shaped input: route length not
	// matching the matrix order, out-of-range indices, or a malformed
	// permutation.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight signals a negative distance entry.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrNonFiniteWeight signals a NaN or ±Inf distance entry.
	ErrNonFiniteWeight = errors.New("tsp: non-finite edge weight")

	// ErrTooFewCities is returned when an engine that relies on the local
	// move model receives an instance with n < 4; the swap/insert/reversal
	// edge arithmetic is undefined below that size.
	ErrTooFewCities = errors.New("tsp: instance too small for move operators")

	// ErrStartOutOfRange indicates start city outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start city out of range")

	// ErrUnknownNeighborhood marks a neighborhood operator outside the
	// closed {Swap, Insert, TwoOpt} set.
	ErrUnknownNeighborhood = errors.New("tsp: unknown neighborhood type")

	// ErrUnknownSelection marks a GA selection scheme outside the closed
	// {Tournament, Roulette, Ranking} set.
	ErrUnknownSelection = errors.New("tsp: unknown selection scheme")

	// ErrUnknownCrossover marks a GA crossover outside the closed
	// {OX, PMX, CX} set.
	ErrUnknownCrossover = errors.New("tsp: unknown crossover operator")

	// ErrUnsupportedAlgorithm is returned by the dispatcher for an
	// unrecognized Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidParam signals a recognized parameter whose value lies
	// outside its valid domain (e.g. negative tenure, alpha ∉ (0,1)).
	ErrInvalidParam = errors.New("tsp: parameter out of valid domain")
)

// Neighborhood selects the local move operator shared by all trajectory
// engines and by GA mutation. The zero value is Swap.
type Neighborhood uint8

const (
	// Swap exchanges the cities at two positions.
	Swap Neighborhood = iota
	// Insert removes the city at one position and re-inserts it at another,
	// shifting the cities in between.
	Insert
	// TwoOpt reverses the half-open segment [i, j) of the route.
	TwoOpt
)

// String implements fmt.Stringer using the external parameter names.
func (nb Neighborhood) String() string {
	switch nb {
	case Swap:
		return "swap"
	case Insert:
		return "insert"
	case TwoOpt:
		return "two_opt"
	default:
		return "unknown"
	}
}

// ParseNeighborhood maps an external name onto the closed enum.
// Unknown names are a configuration error, never silently defaulted.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch s {
	case "swap":
		return Swap, nil
	case "insert":
		return Insert, nil
	case "two_opt":
		return TwoOpt, nil
	default:
		return 0, ErrUnknownNeighborhood
	}
}

// Selection picks the GA parent-selection scheme. The zero value is
// Tournament.
type Selection uint8

const (
	// Tournament samples k individuals without replacement and keeps the
	// cheapest.
	Tournament Selection = iota
	// Roulette samples proportional to 1/cost.
	Roulette
	// Ranking samples proportional to rank (worst=1 … best=N).
	Ranking
)

// String implements fmt.Stringer using the external parameter names.
func (s Selection) String() string {
	switch s {
	case Tournament:
		return "tournament"
	case Roulette:
		return "roulette"
	case Ranking:
		return "ranking"
	default:
		return "unknown"
	}
}

// ParseSelection maps an external name onto the closed enum.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "tournament":
		return Tournament, nil
	case "roulette":
		return Roulette, nil
	case "ranking":
		return Ranking, nil
	default:
		return 0, ErrUnknownSelection
	}
}

// Crossover picks the GA recombination operator. The zero value is OX.
type Crossover uint8

const (
	// OX is order crossover: a parent-1 slice plus parent-2 fill order.
	OX Crossover = iota
	// PMX is partially matched crossover: slice copy plus mapping chains.
	PMX
	// CX is cycle crossover: positions alternate between parents by cycle.
	CX
)

// String implements fmt.Stringer using the external parameter names.
func (c Crossover) String() string {
	switch c {
	case OX:
		return "OX"
	case PMX:
		return "PMX"
	case CX:
		return "CX"
	default:
		return "unknown"
	}
}

// ParseCrossover maps an external name onto the closed enum.
func ParseCrossover(s string) (Crossover, error) {
	switch s {
	case "OX":
		return OX, nil
	case "PMX":
		return PMX, nil
	case "CX":
		return CX, nil
	default:
		return 0, ErrUnknownCrossover
	}
}

// Algorithm routes Solve to one of the six engines.
type Algorithm uint8

const (
	// AlgHillClimbing is multistart hill climbing.
	AlgHillClimbing Algorithm = iota
	// AlgSimulatedAnnealing is single-trajectory annealing.
	AlgSimulatedAnnealing
	// AlgTabuSearch is tabu search with aspiration.
	AlgTabuSearch
	// AlgGRASP is greedy-randomized construction with local refinement.
	AlgGRASP
	// AlgGenetic is the population-based genetic algorithm.
	AlgGenetic
	// AlgNearestNeighbor is the deterministic greedy baseline.
	AlgNearestNeighbor
)

// String implements fmt.Stringer using the external algorithm names.
func (a Algorithm) String() string {
	switch a {
	case AlgHillClimbing:
		return "hill_climbing"
	case AlgSimulatedAnnealing:
		return "simulated_annealing"
	case AlgTabuSearch:
		return "tabu_search"
	case AlgGRASP:
		return "grasp"
	case AlgGenetic:
		return "genetic"
	case AlgNearestNeighbor:
		return "nearest_neighbor"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps an external name onto the closed enum.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "hill_climbing":
		return AlgHillClimbing, nil
	case "simulated_annealing":
		return AlgSimulatedAnnealing, nil
	case "tabu_search":
		return AlgTabuSearch, nil
	case "grasp":
		return AlgGRASP, nil
	case "genetic":
		return AlgGenetic, nil
	case "nearest_neighbor":
		return AlgNearestNeighbor, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// Move identifies one local transformation of a route: the operator and the
// two affected positions (0-indexed, I≠J). For TwoOpt the pair is stored
// ordered (I<J); Swap and Insert keep the drawn order because Insert is
// direction-sensitive.
type Move struct {
	Op Neighborhood
	I  int
	J  int
}

// Meta echoes the configuration a solver actually ran with, including any
// defaults applied to unset fields. Params holds the engine's effective
// parameter struct (HillClimbingParams, AnnealingParams, …).
type Meta struct {
	Algorithm Algorithm
	Seed      int64
	Params    any
}

// Result is the uniform outcome of every solver in this package.
type Result struct {
	// Route is a permutation of 0..n-1; the cycle closes implicitly with
	// the edge Route[n-1]→Route[0].
	Route []int

	// Cost is the closed-cycle length of Route, stabilized to 1e-9.
	Cost float64

	// Runtime is the wall-clock duration of the solver call.
	Runtime time.Duration

	// Meta echoes the effective configuration (see Meta).
	Meta Meta
}
