// Package tsp provides closed-tour (Hamiltonian cycle) solvers over a
// symmetric distance matrix.
//
// The package is the solver boundary of the route ordering pipeline:
//
//	SolveClosedTour(dist, opts) -> TSResult{Tour, Cost}
//
// where Tour is a permutation of 0..n-1 in cyclic visiting order (the closing
// edge Tour[n-1]→Tour[0] is implied) and Cost is the cycle length rounded to
// 1e-9. Any implementation of the Solver interface can be plugged in instead;
// New returns the built-in one.
//
// Accepted input: a square, symmetric, finite, non-negative matrix with a zero
// diagonal and order n ≥ 2. Zero off-diagonal weights are valid (the route
// engine relies on a zero-cost dummy vertex). Every rejection wraps
// ErrInvalidMatrix.
//
// Algorithms (Options.Algo):
//
//   - Auto (default): ExactHeldKarp when n ≤ Options.ExactLimit, else MultiStart.
//   - MultiStart: nearest-neighbour tours from spread start vertices plus
//     seeded random restarts, each refined by 2-opt, run on a bounded worker
//     group. Deterministic for a fixed Seed.
//   - TwoOptOnly: canonical ring refined by 2-opt.
//   - Christofides: MST + greedy odd-vertex matching + Euler circuit +
//     shortcutting, optional 2-opt polish.
//   - ExactHeldKarp: O(n²·2ⁿ) dynamic programming, n ≤ MaxExactVertices.
//
// Internally tours are closed (len n+1, tour[0]==tour[n]==start); results are
// opened before they leave the package.
package tsp
