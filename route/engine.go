package route

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/tsp"
)

// Result is the outcome of one ordering.
type Result struct {
	// Order is a permutation of 0..N-1: Order[k] is the input index of the
	// k-th station to visit.
	Order []int `json:"order"`

	// Orientation is the resolved direction (South or West, never Auto).
	Orientation Orientation `json:"orientation"`

	// Cost is the open-path length on the unit sphere (radians) over the
	// auto-shifted points, in Order.
	Cost float64 `json:"cost"`

	// Degenerate is set when the solver cycle did not contain the dummy
	// exactly once and the order was recovered by stripping it. A closed
	// tour that repeats its first vertex at the end, dummy included, is not
	// degenerate: the closing repeat is dropped before the dummy is counted.
	Degenerate bool `json:"degenerate"`

	// Warning wraps ErrDegenerateSolverOutput when Degenerate is set.
	Warning error `json:"-"`
}

// Engine orders station sets. The zero value is not usable; call New.
type Engine struct {
	orientation Orientation
	solver      tsp.Solver
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrientation forces South or West; Auto (the default) derives it from
// the point spread.
func WithOrientation(o Orientation) Option {
	return func(e *Engine) { e.orientation = o }
}

// WithSolver replaces the closed-tour solver. A nil solver keeps the default.
func WithSolver(s tsp.Solver) Option {
	return func(e *Engine) {
		if s != nil {
			e.solver = s
		}
	}
}

// WithSolverOptions uses the built-in solver with opts.
func WithSolverOptions(opts tsp.Options) Option {
	return func(e *Engine) { e.solver = tsp.New(opts) }
}

// WithLogger sets the logger used for degraded-result warnings.
// A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Engine using tsp.New(tsp.DefaultOptions()), Auto
// orientation and slog.Default() unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		orientation: Auto,
		solver:      tsp.New(tsp.DefaultOptions()),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Orientation returns the configured (possibly Auto) orientation.
func (e *Engine) Orientation() Orientation { return e.orientation }

// Order computes a visiting order for points with a fresh default Engine.
func Order(points []geo.Point, opts ...Option) (Result, error) {
	return New(opts...).Order(points)
}

// Order returns a permutation of points' indices forming a short open path,
// oriented south→north or west→east. points is not modified.
//
// N=0 yields an empty order and N=1 yields [0]; the solver is not invoked
// for either. Solver errors are returned wrapped. A malformed solver cycle
// that can still be repaired is reported through Result.Warning, not as an
// error.
//
// Complexity: O(N²) for the matrix plus the solver's cost.
func (e *Engine) Order(points []geo.Point) (Result, error) {
	n := len(points)
	shifted := geo.AutoShift(points)
	mode := e.orientation.Resolve(shifted)

	switch n {
	case 0:
		return Result{Order: []int{}, Orientation: mode}, nil
	case 1:
		return Result{Order: []int{0}, Orientation: mode}, nil
	}

	dist, err := geo.BuildDistanceMatrix(shifted, geo.UnitRadius)
	if err != nil {
		return Result{}, fmt.Errorf("route: embed: %w", err)
	}

	res, err := e.solver.SolveClosedTour(dist)
	if err != nil {
		return Result{}, fmt.Errorf("route: solve: %w", err)
	}

	dummy := geo.DummyIndex(n)
	path, ok := CutAtDummy(openCycle(res.Tour), dummy)

	out := Result{Orientation: mode}
	if !ok {
		out.Degenerate = true
		out.Warning = fmt.Errorf("dummy %d in %d-vertex cycle: %w", dummy, len(res.Tour), ErrDegenerateSolverOutput)
		e.logger.Warn("route: degenerate solver output, dummy stripped",
			slog.Int("stations", n),
			slog.Int("cycle_len", len(res.Tour)),
			slog.Any("cycle", res.Tour),
		)
	}
	if err = tsp.ValidatePermutation(path, n); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSolverOutput, err)
	}

	out.Order = Orient(shifted, path, mode)
	out.Cost = pathCost(shifted, out.Order)

	return out, nil
}

// openCycle drops a repeated closing vertex, so solvers returning either
// open permutations or closed tours are accepted.
func openCycle(tour []int) []int {
	if k := len(tour); k > 1 && tour[0] == tour[k-1] {
		return tour[:k-1]
	}

	return tour
}

func pathCost(points []geo.Point, order []int) float64 {
	var sum float64
	for k := 1; k < len(order); k++ {
		sum += geo.GreatCircleDistance(points[order[k-1]], points[order[k]], geo.UnitRadius)
	}

	return sum
}
