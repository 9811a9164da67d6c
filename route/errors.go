package route

import "errors"

var (
	// ErrDegenerateSolverOutput marks a solver cycle that did not contain the
	// dummy vertex exactly once. It is a soft failure: the engine strips the
	// dummy, still returns an order, and reports this error in
	// Result.Warning (never as the Order error).
	ErrDegenerateSolverOutput = errors.New("route: degenerate solver output")

	// ErrSolverOutput is returned when the solver's cycle cannot be turned
	// into a permutation of the input indices even after stripping the dummy.
	ErrSolverOutput = errors.New("route: solver returned an invalid tour")

	// ErrUnknownOrientation is returned by ParseOrientation.
	ErrUnknownOrientation = errors.New("route: unknown orientation")
)
