// Package matrix provides the distance-matrix primitives consumed by the
// tsp solvers: a minimal Matrix interface, a row-major Dense implementation,
// and a CSV loader for instance files.
//
// Design:
//   - Bounds-checked accessors; sentinel errors only, no panics on user input.
//   - Dense stores elements in a flat slice for cache friendliness; solvers
//     may additionally prefetch it into their own hot-loop buffers.
//   - Clone() returns deep copies so algorithm pipelines can rely on
//     immutability of their inputs.
package matrix
