// Command tspsolve runs one TSP heuristic experiment described by a YAML
// configuration: load a distance matrix from CSV, run the chosen solver a
// number of times with derived seeds, print per-repeat outcomes, and
// optionally append a summary row to a results CSV.
//
// Example configuration:
//
//	matrix: data/cities76.csv
//	algorithm: tabu_search
//	seed: 42
//	repeats: 5
//	results: results.csv
//	tabu_search:
//	  max_iter: 2000
//	  stop_no_improve: 200
//	  tabu_tenure: 10
//	  neighborhood_type: two_opt
//	  n_neighbors: 30
//
// Omitted parameters fall back to the solver defaults; unknown algorithm,
// neighborhood, selection, or crossover names abort before anything runs.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/anteqkois/inteligencja-obliczeniowa/matrix"
	"github.com/anteqkois/inteligencja-obliczeniowa/tsp"
)

type hillClimbingConfig struct {
	NStarts          int    `yaml:"n_starts"`
	MaxIter          int    `yaml:"max_iter"`
	StopNoImprove    int    `yaml:"stop_no_improve"`
	NeighborhoodType string `yaml:"neighborhood_type"`
	UseDelta         bool   `yaml:"use_delta"`
}

type annealingConfig struct {
	T0               float64 `yaml:"t0"`
	TMin             float64 `yaml:"t_min"`
	Alpha            float64 `yaml:"alpha"`
	MaxIter          int     `yaml:"max_iter"`
	NeighborhoodType string  `yaml:"neighborhood_type"`
	UseDelta         bool    `yaml:"use_delta"`
}

type tabuConfig struct {
	MaxIter          int    `yaml:"max_iter"`
	StopNoImprove    int    `yaml:"stop_no_improve"`
	TabuTenure       int    `yaml:"tabu_tenure"`
	NeighborhoodType string `yaml:"neighborhood_type"`
	NNeighbors       int    `yaml:"n_neighbors"`
}

type graspConfig struct {
	Alpha            *float64 `yaml:"alpha"`
	Iterations       int      `yaml:"iterations"`
	NeighborhoodType string   `yaml:"neighborhood_type"`
	IHCMaxIter       int      `yaml:"ihc_max_iter"`
	IHCStopNoImprove int      `yaml:"ihc_stop_no_improve"`
	UseDelta         *bool    `yaml:"use_delta"`
}

type geneticConfig struct {
	PopulationSize int      `yaml:"population_size"`
	Generations    int      `yaml:"generations"`
	Selection      string   `yaml:"selection"`
	Crossover      string   `yaml:"crossover"`
	MutationType   string   `yaml:"mutation_type"`
	MutationProb   *float64 `yaml:"mutation_prob"`
}

type nearestNeighborConfig struct {
	StartCity int `yaml:"start_city"`
}

// runConfig is the top-level experiment description. Exactly the section
// matching Algorithm is consulted; the others may be omitted.
type runConfig struct {
	Matrix    string `yaml:"matrix"`
	Algorithm string `yaml:"algorithm"`
	Seed      int64  `yaml:"seed"`
	Repeats   int    `yaml:"repeats"`
	Results   string `yaml:"results"`

	HillClimbing    *hillClimbingConfig    `yaml:"hill_climbing"`
	Annealing       *annealingConfig       `yaml:"simulated_annealing"`
	Tabu            *tabuConfig            `yaml:"tabu_search"`
	GRASP           *graspConfig           `yaml:"grasp"`
	Genetic         *geneticConfig         `yaml:"genetic"`
	NearestNeighbor *nearestNeighborConfig `yaml:"nearest_neighbor"`
}

// toOptions translates the YAML sections into solver Options, starting
// from the documented defaults so omitted fields keep their meaning.
func (c *runConfig) toOptions() (tsp.Options, error) {
	opts := tsp.DefaultOptions()
	opts.Seed = c.Seed

	algo, err := tsp.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("algorithm %q: %w", c.Algorithm, err)
	}
	opts.Algo = algo

	if c.HillClimbing != nil {
		s := c.HillClimbing
		p := &opts.HillClimbing
		if s.NStarts != 0 {
			p.NStarts = s.NStarts
		}
		if s.MaxIter != 0 {
			p.MaxIter = s.MaxIter
		}
		if s.StopNoImprove != 0 {
			p.StopNoImprove = s.StopNoImprove
		}
		if s.NeighborhoodType != "" {
			if p.Neighborhood, err = tsp.ParseNeighborhood(s.NeighborhoodType); err != nil {
				return tsp.Options{}, fmt.Errorf("hill_climbing.neighborhood_type %q: %w", s.NeighborhoodType, err)
			}
		}
		p.UseDelta = s.UseDelta
	}

	if c.Annealing != nil {
		s := c.Annealing
		p := &opts.Annealing
		if s.T0 != 0 {
			p.T0 = s.T0
		}
		if s.TMin != 0 {
			p.TMin = s.TMin
		}
		if s.Alpha != 0 {
			p.Alpha = s.Alpha
		}
		if s.MaxIter != 0 {
			p.MaxIter = s.MaxIter
		}
		if s.NeighborhoodType != "" {
			if p.Neighborhood, err = tsp.ParseNeighborhood(s.NeighborhoodType); err != nil {
				return tsp.Options{}, fmt.Errorf("simulated_annealing.neighborhood_type %q: %w", s.NeighborhoodType, err)
			}
		}
		p.UseDelta = s.UseDelta
	}

	if c.Tabu != nil {
		s := c.Tabu
		p := &opts.Tabu
		if s.MaxIter != 0 {
			p.MaxIter = s.MaxIter
		}
		if s.StopNoImprove != 0 {
			p.StopNoImprove = s.StopNoImprove
		}
		if s.TabuTenure != 0 {
			p.TabuTenure = s.TabuTenure
		}
		if s.NNeighbors != 0 {
			p.NNeighbors = s.NNeighbors
		}
		if s.NeighborhoodType != "" {
			if p.Neighborhood, err = tsp.ParseNeighborhood(s.NeighborhoodType); err != nil {
				return tsp.Options{}, fmt.Errorf("tabu_search.neighborhood_type %q: %w", s.NeighborhoodType, err)
			}
		}
	}

	if c.GRASP != nil {
		s := c.GRASP
		p := &opts.GRASP
		if s.Alpha != nil {
			p.Alpha = *s.Alpha
		}
		if s.Iterations != 0 {
			p.Iterations = s.Iterations
		}
		if s.IHCMaxIter != 0 {
			p.IHCMaxIter = s.IHCMaxIter
		}
		if s.IHCStopNoImprove != 0 {
			p.IHCStopNoImprove = s.IHCStopNoImprove
		}
		if s.UseDelta != nil {
			p.UseDelta = *s.UseDelta
		}
		if s.NeighborhoodType != "" {
			if p.Neighborhood, err = tsp.ParseNeighborhood(s.NeighborhoodType); err != nil {
				return tsp.Options{}, fmt.Errorf("grasp.neighborhood_type %q: %w", s.NeighborhoodType, err)
			}
		}
	}

	if c.Genetic != nil {
		s := c.Genetic
		p := &opts.Genetic
		if s.PopulationSize != 0 {
			p.PopulationSize = s.PopulationSize
		}
		if s.Generations != 0 {
			p.Generations = s.Generations
		}
		if s.MutationProb != nil {
			p.MutationProb = *s.MutationProb
		}
		if s.Selection != "" {
			if p.Selection, err = tsp.ParseSelection(s.Selection); err != nil {
				return tsp.Options{}, fmt.Errorf("genetic.selection %q: %w", s.Selection, err)
			}
		}
		if s.Crossover != "" {
			if p.Crossover, err = tsp.ParseCrossover(s.Crossover); err != nil {
				return tsp.Options{}, fmt.Errorf("genetic.crossover %q: %w", s.Crossover, err)
			}
		}
		if s.MutationType != "" {
			if p.MutationType, err = tsp.ParseNeighborhood(s.MutationType); err != nil {
				return tsp.Options{}, fmt.Errorf("genetic.mutation_type %q: %w", s.MutationType, err)
			}
		}
	}

	if c.NearestNeighbor != nil {
		opts.NearestNeighbor.StartCity = c.NearestNeighbor.StartCity
	}

	return opts, nil
}

// appendResultRow writes one summary row to path, creating the file with a
// header when it does not exist yet.
func appendResultRow(path string, row []string) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err = w.Write([]string{"algorithm", "n", "repeats", "seed", "best_cost", "mean_cost", "mean_runtime_s"}); err != nil {
			return err
		}
	}
	if err = w.Write(row); err != nil {
		return err
	}
	w.Flush()

	return w.Error()
}

func main() {
	configPath := flag.String("config", "run.yaml", "path to the experiment YAML")
	flag.Parse()

	raw, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	var cfg runConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}
	if cfg.Matrix == "" {
		log.Fatalf("config: matrix path is required")
	}
	if cfg.Repeats <= 0 {
		cfg.Repeats = 1
	}

	dist, err := matrix.LoadCSV(cfg.Matrix)
	if err != nil {
		log.Fatalf("load matrix %s: %v", cfg.Matrix, err)
	}

	opts, err := cfg.toOptions()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		bestCost     float64
		sumCost      float64
		sumRuntime   time.Duration
		bestRoute    []int
		rep          int
		res          tsp.Result
		firstOutcome = true
	)
	for rep = 0; rep < cfg.Repeats; rep++ {
		// Each repeat is an independent solver call with its own stream.
		opts.Seed = cfg.Seed + int64(rep)

		res, err = tsp.Solve(dist, opts)
		if err != nil {
			log.Fatalf("solve (repeat %d): %v", rep, err)
		}

		fmt.Printf("repeat %d: cost=%.3f runtime=%s seed=%d\n", rep, res.Cost, res.Runtime, opts.Seed)

		sumCost += res.Cost
		sumRuntime += res.Runtime
		if firstOutcome || res.Cost < bestCost {
			bestCost = res.Cost
			bestRoute = res.Route
			firstOutcome = false
		}
	}

	meanCost := sumCost / float64(cfg.Repeats)
	meanRuntime := sumRuntime / time.Duration(cfg.Repeats)
	fmt.Printf("%s: best=%.3f mean=%.3f mean_runtime=%s\nroute=%v\n",
		cfg.Algorithm, bestCost, meanCost, meanRuntime, bestRoute)

	if cfg.Results != "" {
		row := []string{
			cfg.Algorithm,
			strconv.Itoa(dist.Rows()),
			strconv.Itoa(cfg.Repeats),
			strconv.FormatInt(cfg.Seed, 10),
			strconv.FormatFloat(bestCost, 'f', -1, 64),
			strconv.FormatFloat(meanCost, 'f', -1, 64),
			strconv.FormatFloat(meanRuntime.Seconds(), 'f', -1, 64),
		}
		if err = appendResultRow(cfg.Results, row); err != nil {
			log.Fatalf("append results: %v", err)
		}
	}
}
