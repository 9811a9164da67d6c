package tsp

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/oceancruise/matrix"
)

// ErrInvalidMatrix is the umbrella sentinel for every distance-matrix
// rejection. The specific sentinels below wrap it, so
// errors.Is(err, ErrInvalidMatrix) holds for all of them.
var ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

var (
	// ErrNilMatrix signals a nil distance matrix.
	ErrNilMatrix = fmt.Errorf("%w: nil", ErrInvalidMatrix)

	// ErrNonSquare signals Rows() != Cols().
	ErrNonSquare = fmt.Errorf("%w: not square", ErrInvalidMatrix)

	// ErrTooSmall signals an order below 2; a cycle needs two vertices.
	ErrTooSmall = fmt.Errorf("%w: order < 2", ErrInvalidMatrix)

	// ErrNonZeroDiagonal signals |a_ii| above tolerance.
	ErrNonZeroDiagonal = fmt.Errorf("%w: non-zero diagonal", ErrInvalidMatrix)

	// ErrNegativeWeight signals a negative entry.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidMatrix)

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf weight", ErrInvalidMatrix)

	// ErrAsymmetry signals |a_ij − a_ji| above tolerance.
	ErrAsymmetry = fmt.Errorf("%w: not symmetric", ErrInvalidMatrix)
)

var (
	// ErrInvalidOptions signals an inconsistent Options value.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrStartOutOfRange signals StartVertex ∉ [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrUnsupportedAlgorithm signals an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTooLarge signals an instance above MaxExactVertices for ExactHeldKarp.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")

	// ErrDimensionMismatch signals a tour/permutation of the wrong shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")
)

// MaxExactVertices bounds ExactHeldKarp: memory grows as n·2ⁿ.
const MaxExactVertices = 16

// Algorithm selects the closed-tour strategy.
type Algorithm int

const (
	// Auto picks ExactHeldKarp for small instances and MultiStart otherwise.
	Auto Algorithm = iota
	// MultiStart runs parallel nearest-neighbour/random starts refined by 2-opt.
	MultiStart
	// TwoOptOnly refines the canonical ring 0,1,…,n-1 with 2-opt.
	TwoOptOnly
	// Christofides runs the MST/matching/Euler pipeline.
	Christofides
	// ExactHeldKarp solves optimally by dynamic programming.
	ExactHeldKarp
)

var algorithmNames = map[Algorithm]string{
	Auto:          "auto",
	MultiStart:    "multistart",
	TwoOptOnly:    "twoopt",
	Christofides:  "christofides",
	ExactHeldKarp: "heldkarp",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a name produced by Algorithm.String back to its value.
func ParseAlgorithm(s string) (Algorithm, error) {
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Options configures the built-in solver. The zero value is not valid; start
// from DefaultOptions.
type Options struct {
	// Algo selects the strategy.
	Algo Algorithm

	// StartVertex is where the returned cycle starts.
	StartVertex int

	// Eps is the strict improvement threshold for local search (Δ < −Eps).
	Eps float64

	// ExactLimit is the largest order Auto hands to Held–Karp.
	ExactLimit int

	// Restarts is the number of MultiStart starting tours.
	Restarts int

	// Workers bounds concurrent restarts; 0 means GOMAXPROCS.
	Workers int

	// Seed drives the random restarts; 0 selects a fixed default stream.
	Seed int64

	// MaxIters bounds accepted 2-opt moves per tour; 0 means unlimited.
	MaxIters int

	// TimeLimit bounds local search; 0 means unlimited. When it expires the
	// best tour found so far is returned.
	TimeLimit time.Duration

	// EnableLocalSearch adds a 2-opt polish after Christofides.
	EnableLocalSearch bool
}

// DefaultOptions returns the settings used by New when no options are given.
func DefaultOptions() Options {
	return Options{
		Algo:              Auto,
		Eps:               1e-12,
		ExactLimit:        10,
		Restarts:          8,
		Workers:           0,
		EnableLocalSearch: true,
	}
}

// workers resolves the effective worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// TSResult is the outcome of a closed-tour solve.
type TSResult struct {
	// Tour is a permutation of 0..n-1 in cyclic order, starting at the
	// requested start vertex; the closing edge back to Tour[0] is implied.
	Tour []int

	// Cost is the total cycle length, rounded to 1e-9.
	Cost float64
}

// Solver is the swappable closed-tour capability consumed by the route
// engine. Implementations must accept zero-weight edges and return a
// permutation of every index.
type Solver interface {
	SolveClosedTour(dist matrix.Matrix) (TSResult, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(dist matrix.Matrix) (TSResult, error)

// SolveClosedTour calls f(dist).
func (f SolverFunc) SolveClosedTour(dist matrix.Matrix) (TSResult, error) {
	return f(dist)
}
