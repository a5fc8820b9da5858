// Package tsp provides approximate Travelling Salesman Problem solvers built
// on a shared local-move model with O(1) incremental cost updates.
//
// It includes six engines over a distance matrix (matrix.Matrix):
//
//   - HillClimb       — multistart hill climbing (strict improvement only).
//   - Anneal          — simulated annealing with geometric cooling.
//   - TabuSearch      — short-term move memory with aspiration.
//   - GRASP           — greedy-randomized construction + local refinement.
//   - Genetic         — population search with OX/PMX/CX crossover.
//   - NearestNeighbor — deterministic greedy baseline.
//
// All engines are pure functions of (matrix, parameters, seed): no state
// survives an invocation, and every random draw comes from an explicit
// seed-derived stream, so identical inputs yield identical results.
//
// Routes are open permutations of 0..n-1; the closing edge
// route[n-1]→route[0] is implied everywhere a tour cost is computed.
//
// Use this package when you need good (not provably optimal) tours on
// small-to-medium instances, or when comparing heuristic quality/speed
// trade-offs across parameter configurations.
package tsp
