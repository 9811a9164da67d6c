// Package tsp - validation shared by every solver.
//
// This file:
//  1. Validates Options (bounds, algorithm, start vertex).
//  2. Validates the distance matrix (shape, NaN/Inf, negativity, symmetry)
//     with the matrix validators, then copies it into a flat weight table
//     and checks the diagonal, so every algorithm reads weights without
//     interface calls.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinels from types.go,
//     wrapped with the offending position.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/oceancruise/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
// It is independent from Options.Eps (which governs local-search acceptance).
const symTol = 1e-12

// weights is a validated, immutable n×n distance table in row-major order.
type weights struct {
	n int
	w []float64
}

// at returns w(u,v). Indices are trusted: callers only pass tour entries.
func (t *weights) at(u, v int) float64 { return t.w[u*t.n+v] }

// validateOptions checks Options in isolation (n is checked separately).
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch {
	case opts.Eps < 0 || math.IsNaN(opts.Eps):
		return fmt.Errorf("Eps=%v: %w", opts.Eps, ErrInvalidOptions)
	case opts.TimeLimit < 0:
		return fmt.Errorf("TimeLimit=%v: %w", opts.TimeLimit, ErrInvalidOptions)
	case opts.MaxIters < 0:
		return fmt.Errorf("MaxIters=%d: %w", opts.MaxIters, ErrInvalidOptions)
	case opts.Restarts < 0:
		return fmt.Errorf("Restarts=%d: %w", opts.Restarts, ErrInvalidOptions)
	case opts.Workers < 0:
		return fmt.Errorf("Workers=%d: %w", opts.Workers, ErrInvalidOptions)
	case opts.ExactLimit < 0 || opts.ExactLimit > MaxExactVertices:
		return fmt.Errorf("ExactLimit=%d (max %d): %w", opts.ExactLimit, MaxExactVertices, ErrInvalidOptions)
	}
	if _, ok := algorithmNames[opts.Algo]; !ok {
		return fmt.Errorf("%v: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}

	return nil
}

// validateStartVertex verifies that start ∈ [0, n).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// loadWeights validates dist and copies it into a weights table.
// Structural checks run through the matrix validators:
//   - non-nil, square (matrix.ValidateSquare), n ≥ 2,
//   - every entry finite (matrix.ValidateFinite),
//   - no negative entries (matrix.ValidateNonNegative),
//   - |a_ij − a_ji| ≤ symTol (matrix.ValidateSymmetric),
//
// then the copy pass enforces diagonal ≈ 0 (|a_ii| ≤ symTol). Matrix
// sentinels are mapped onto the tsp family by fromMatrixError.
//
// Complexity: O(n²) time, O(n²) space.
func loadWeights(dist matrix.Matrix) (*weights, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fromMatrixError(err)
	}
	n := dist.Rows()
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooSmall)
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return nil, fromMatrixError(err)
	}
	if err := matrix.ValidateNonNegative(dist); err != nil {
		return nil, fromMatrixError(err)
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return nil, fromMatrixError(err)
	}

	t := &weights{n: n, w: make([]float64, n*n)}
	if err := copyWeights(dist, t); err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < n; i++ {
		if x := t.at(i, i); math.Abs(x) > symTol {
			return nil, fmt.Errorf("(%d,%d)=%v: %w", i, i, x, ErrNonZeroDiagonal)
		}
	}

	return t, nil
}

// copyWeights fills t from dist, row by row for *matrix.Dense and entry by
// entry for any other implementation.
func copyWeights(dist matrix.Matrix, t *weights) error {
	var (
		n    = t.n
		i, j int
		row  []float64
		x    float64
		err  error
	)
	if d, ok := dist.(*matrix.Dense); ok {
		for i = 0; i < n; i++ {
			if row, err = d.Row(i); err != nil {
				return fromMatrixError(err)
			}
			copy(t.w[i*n:(i+1)*n], row)
		}

		return nil
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = dist.At(i, j); err != nil {
				return fromMatrixError(err)
			}
			t.w[i*n+j] = x
		}
	}

	return nil
}

// fromMatrixError maps a matrix validator error onto the matching tsp
// sentinel. Both stay reachable through errors.Is.
func fromMatrixError(err error) error {
	var sentinel error
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		sentinel = ErrNilMatrix
	case errors.Is(err, matrix.ErrNonSquare), errors.Is(err, matrix.ErrOutOfRange):
		sentinel = ErrNonSquare
	case errors.Is(err, matrix.ErrNaNInf):
		sentinel = ErrNaNInf
	case errors.Is(err, matrix.ErrNegative):
		sentinel = ErrNegativeWeight
	case errors.Is(err, matrix.ErrAsymmetry):
		sentinel = ErrAsymmetry
	default:
		sentinel = ErrInvalidMatrix
	}

	return fmt.Errorf("%w: %w", sentinel, err)
}

// ValidateMatrix reports whether dist satisfies the solver input contract.
// It returns nil or an error wrapping ErrInvalidMatrix.
func ValidateMatrix(dist matrix.Matrix) error {
	_, err := loadWeights(dist)

	return err
}
