// Package tsp - engine parameter sets.
//
// Each engine has a typed parameter struct with named, defaulted options.
// Policy:
//   - Default*Params() returns the documented defaults.
//   - Fields whose zero value lies outside the valid domain (iteration
//     budgets, tenures, temperatures, population sizes) are filled with
//     their defaults by normalized(); a zero there always means "unset".
//   - Fields where zero is a legal choice (GRASP Alpha, MutationProb,
//     StartCity, every enum) pass through untouched: an explicit value is
//     never overridden, and an invalid explicit value fails validation
//     instead of being silently replaced.
//
// Result.Meta echoes the normalized struct, so callers always see the
// configuration that actually ran.
package tsp

// HillClimbingParams configures multistart hill climbing (§ HillClimb).
type HillClimbingParams struct {
	// NStarts is the number of independent trajectories (default 10).
	NStarts int
	// MaxIter bounds iterations per trajectory (default 500).
	MaxIter int
	// StopNoImprove ends a trajectory after that many non-improving
	// iterations in a row (default 50).
	StopNoImprove int
	// Neighborhood selects the move operator (default Swap).
	Neighborhood Neighborhood
	// UseDelta switches the inner loop to O(1) incremental cost updates
	// instead of full recomputation (default false).
	UseDelta bool
}

// DefaultHillClimbingParams returns the documented defaults.
func DefaultHillClimbingParams() HillClimbingParams {
	return HillClimbingParams{
		NStarts:       10,
		MaxIter:       500,
		StopNoImprove: 50,
		Neighborhood:  Swap,
	}
}

// normalized fills unset (zero) fields whose zero value is invalid.
func (p HillClimbingParams) normalized() HillClimbingParams {
	var d = DefaultHillClimbingParams()
	if p.NStarts == 0 {
		p.NStarts = d.NStarts
	}
	if p.MaxIter == 0 {
		p.MaxIter = d.MaxIter
	}
	if p.StopNoImprove == 0 {
		p.StopNoImprove = d.StopNoImprove
	}

	return p
}

// AnnealingParams configures simulated annealing (§ Anneal).
type AnnealingParams struct {
	// T0 is the initial temperature (default 1000).
	T0 float64
	// TMin stops the trajectory once T ≤ TMin (default 1).
	TMin float64
	// Alpha is the geometric cooling factor, 0 < Alpha < 1 (default 0.99).
	Alpha float64
	// MaxIter bounds the number of temperature steps (default 5000).
	MaxIter int
	// Neighborhood selects the move operator (default Swap).
	Neighborhood Neighborhood
	// UseDelta selects the O(1) incremental cost path over the O(n)
	// full-recompute path (default false). Both paths are semantically
	// identical and tested for agreement.
	UseDelta bool
}

// DefaultAnnealingParams returns the documented defaults.
func DefaultAnnealingParams() AnnealingParams {
	return AnnealingParams{
		T0:           1000,
		TMin:         1,
		Alpha:        0.99,
		MaxIter:      5000,
		Neighborhood: Swap,
	}
}

// normalized fills unset (zero) fields whose zero value is invalid.
func (p AnnealingParams) normalized() AnnealingParams {
	var d = DefaultAnnealingParams()
	if p.T0 == 0 {
		p.T0 = d.T0
	}
	if p.TMin == 0 {
		p.TMin = d.TMin
	}
	if p.Alpha == 0 {
		p.Alpha = d.Alpha
	}
	if p.MaxIter == 0 {
		p.MaxIter = d.MaxIter
	}

	return p
}

// TabuParams configures tabu search (§ TabuSearch).
type TabuParams struct {
	// MaxIter bounds the number of search iterations (default 2000).
	MaxIter int
	// StopNoImprove ends the search after that many non-improving
	// iterations in a row (default 200).
	StopNoImprove int
	// TabuTenure is the capacity of the short-term move memory (default 10).
	TabuTenure int
	// Neighborhood selects the move operator (default TwoOpt via
	// DefaultTabuParams; the enum zero value Swap is a legal explicit
	// choice and is therefore never overridden).
	Neighborhood Neighborhood
	// NNeighbors is the number of candidate moves explored per iteration
	// (default 30).
	NNeighbors int
}

// DefaultTabuParams returns the documented defaults.
func DefaultTabuParams() TabuParams {
	return TabuParams{
		MaxIter:       2000,
		StopNoImprove: 200,
		TabuTenure:    10,
		Neighborhood:  TwoOpt,
		NNeighbors:    30,
	}
}

// normalized fills unset (zero) fields whose zero value is invalid.
func (p TabuParams) normalized() TabuParams {
	var d = DefaultTabuParams()
	if p.MaxIter == 0 {
		p.MaxIter = d.MaxIter
	}
	if p.StopNoImprove == 0 {
		p.StopNoImprove = d.StopNoImprove
	}
	if p.TabuTenure == 0 {
		p.TabuTenure = d.TabuTenure
	}
	if p.NNeighbors == 0 {
		p.NNeighbors = d.NNeighbors
	}

	return p
}

// GRASPParams configures greedy-randomized construction with hill-climb
// refinement (§ GRASP).
type GRASPParams struct {
	// Alpha widens the restricted candidate list, 0 ≤ Alpha ≤ 1:
	// 0 degenerates to nearest-neighbor greed, 1 to uniform-random choice.
	// Zero is a legal explicit value; the documented default 0.3 comes
	// from DefaultGRASPParams.
	Alpha float64
	// Iterations is the number of construct+refine rounds (default 100).
	Iterations int
	// Neighborhood selects the refinement move operator (default Swap).
	Neighborhood Neighborhood
	// IHCMaxIter bounds refinement iterations per round (default 300).
	IHCMaxIter int
	// IHCStopNoImprove is the refinement stagnation limit (default 100).
	IHCStopNoImprove int
	// UseDelta selects incremental cost updates in refinement
	// (default true via DefaultGRASPParams).
	UseDelta bool
}

// DefaultGRASPParams returns the documented defaults.
func DefaultGRASPParams() GRASPParams {
	return GRASPParams{
		Alpha:            0.3,
		Iterations:       100,
		Neighborhood:     Swap,
		IHCMaxIter:       300,
		IHCStopNoImprove: 100,
		UseDelta:         true,
	}
}

// normalized fills unset (zero) fields whose zero value is invalid.
func (p GRASPParams) normalized() GRASPParams {
	var d = DefaultGRASPParams()
	if p.Iterations == 0 {
		p.Iterations = d.Iterations
	}
	if p.IHCMaxIter == 0 {
		p.IHCMaxIter = d.IHCMaxIter
	}
	if p.IHCStopNoImprove == 0 {
		p.IHCStopNoImprove = d.IHCStopNoImprove
	}

	return p
}

// GeneticParams configures the genetic algorithm (§ Genetic).
type GeneticParams struct {
	// PopulationSize is the number of individuals (default 80).
	PopulationSize int
	// Generations is the number of rebuild rounds (default 300).
	Generations int
	// Selection picks the parent-selection scheme (default Tournament).
	Selection Selection
	// Crossover picks the recombination operator (default OX).
	Crossover Crossover
	// MutationType is the move operator used for mutation (default Swap).
	MutationType Neighborhood
	// MutationProb is the per-child mutation probability in [0,1].
	// Zero is a legal explicit value; the documented default 0.1 comes
	// from DefaultGeneticParams.
	MutationProb float64
}

// DefaultGeneticParams returns the documented defaults.
func DefaultGeneticParams() GeneticParams {
	return GeneticParams{
		PopulationSize: 80,
		Generations:    300,
		Selection:      Tournament,
		Crossover:      OX,
		MutationType:   Swap,
		MutationProb:   0.1,
	}
}

// normalized fills unset (zero) fields whose zero value is invalid.
func (p GeneticParams) normalized() GeneticParams {
	var d = DefaultGeneticParams()
	if p.PopulationSize == 0 {
		p.PopulationSize = d.PopulationSize
	}
	if p.Generations == 0 {
		p.Generations = d.Generations
	}

	return p
}

// NearestNeighborParams configures the deterministic greedy baseline
// (§ NearestNeighbor).
type NearestNeighborParams struct {
	// StartCity is the index the tour construction begins at (default 0).
	StartCity int
}

// DefaultNearestNeighborParams returns the documented defaults.
func DefaultNearestNeighborParams() NearestNeighborParams {
	return NearestNeighborParams{StartCity: 0}
}

// Options bundles the algorithm choice, the seed, and every engine's
// parameter set for the unified Solve dispatcher. Only the parameter set
// matching Algo is consulted.
type Options struct {
	// Algo selects the engine.
	Algo Algorithm
	// Seed feeds the engine's deterministic random stream; 0 means the
	// fixed default seed (see rng.go).
	Seed int64

	HillClimbing    HillClimbingParams
	Annealing       AnnealingParams
	Tabu            TabuParams
	GRASP           GRASPParams
	Genetic         GeneticParams
	NearestNeighbor NearestNeighborParams
}

// DefaultOptions returns an Options with every engine at its documented
// defaults and Algo set to hill climbing.
func DefaultOptions() Options {
	return Options{
		Algo:            AlgHillClimbing,
		Seed:            0,
		HillClimbing:    DefaultHillClimbingParams(),
		Annealing:       DefaultAnnealingParams(),
		Tabu:            DefaultTabuParams(),
		GRASP:           DefaultGRASPParams(),
		Genetic:         DefaultGeneticParams(),
		NearestNeighbor: DefaultNearestNeighborParams(),
	}
}
