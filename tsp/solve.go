// Package tsp - unified dispatcher.
//
// SolveClosedTour is the canonical entry point: validate Options and the
// matrix, route to the requested algorithm, then open the closed tour into
// the public permutation form.
//
// Design principles:
//   - Deterministic: seeded restarts, index tie-breaking, canonical orientation.
//   - Strict sentinels: every matrix rejection wraps ErrInvalidMatrix.
//   - Stable cost: returned costs are rounded to 1e−9.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/oceancruise/matrix"
)

// SolveClosedTour returns a permutation approximating the minimum-cost
// Hamiltonian cycle of dist, starting at opts.StartVertex, and its cost.
//
// Contracts:
//   - dist is square, symmetric, finite, non-negative, zero-diagonal, n ≥ 2.
//   - The returned Tour is a permutation of 0..n-1 with Tour[0]==opts.StartVertex.
//
// Errors: ErrInvalidMatrix variants, ErrInvalidOptions,
// ErrUnsupportedAlgorithm, ErrStartOutOfRange, ErrTooLarge.
//
// Complexity: validation O(n²); then per algorithm (see doc.go).
func SolveClosedTour(dist matrix.Matrix, opts Options) (TSResult, error) {
	if err := validateOptions(opts); err != nil {
		return TSResult{}, err
	}
	t, err := loadWeights(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(t.n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	var (
		tour []int
		cost float64
		dl   = newDeadline(opts.TimeLimit)
	)
	algo := opts.Algo
	if algo == Auto {
		algo = MultiStart
		if t.n <= opts.ExactLimit {
			algo = ExactHeldKarp
		}
	}

	switch algo {
	case ExactHeldKarp:
		tour, cost, err = heldKarp(t, opts.StartVertex)
		if err != nil {
			return TSResult{}, err
		}

	case MultiStart:
		tour, cost = multiStart(t, opts, dl)

	case TwoOptOnly:
		tour, cost = twoOpt(t, ringTour(t.n, opts.StartVertex), opts, dl)
		canonicalizeOrientationInPlace(tour)

	case Christofides:
		tour, cost, err = christofides(t, opts.StartVertex)
		if err != nil {
			return TSResult{}, err
		}
		if opts.EnableLocalSearch {
			tour, cost = twoOpt(t, tour, opts, dl)
			canonicalizeOrientationInPlace(tour)
		}

	default:
		return TSResult{}, fmt.Errorf("%v: %w", algo, ErrUnsupportedAlgorithm)
	}

	// Final invariant check (O(n)) catches wiring mistakes early.
	if err = ValidateTour(tour, t.n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: openTour(tour), Cost: cost}, nil
}

// MatrixSolver is the built-in Solver: SolveClosedTour with fixed Options.
// It holds no mutable state and is safe for concurrent use.
type MatrixSolver struct {
	opts Options
}

// New returns a MatrixSolver using opts.
func New(opts Options) *MatrixSolver {
	return &MatrixSolver{opts: opts}
}

// Options returns the solver's configuration.
func (s *MatrixSolver) Options() Options { return s.opts }

// SolveClosedTour implements Solver.
func (s *MatrixSolver) SolveClosedTour(dist matrix.Matrix) (TSResult, error) {
	return SolveClosedTour(dist, s.opts)
}
