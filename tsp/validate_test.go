package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oceancruise/matrix"
	"github.com/katalvlaran/oceancruise/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolveClosedTour_RejectsInvalidMatrix(t *testing.T) {
	t.Parallel()

	dense := func(rows [][]float64) matrix.Matrix {
		m, err := matrix.NewDenseFrom(rows)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		dist    matrix.Matrix
		wantErr error
	}{
		{"nil", nil, tsp.ErrNilMatrix},
		{"non-square", dense([][]float64{{0, 1, 2}, {1, 0, 3}}), tsp.ErrNonSquare},
		{"order one", dense([][]float64{{0}}), tsp.ErrTooSmall},
		{"asymmetric", dense([][]float64{{0, 1}, {2, 0}}), tsp.ErrAsymmetry},
		{"negative", dense([][]float64{{0, -1}, {-1, 0}}), tsp.ErrNegativeWeight},
		{"diagonal", dense([][]float64{{1, 1}, {1, 0}}), tsp.ErrNonZeroDiagonal},
		{"nan", dense([][]float64{{0, math.NaN()}, {math.NaN(), 0}}), tsp.ErrNaNInf},
		{"inf", dense([][]float64{{0, math.Inf(1)}, {math.Inf(1), 0}}), tsp.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.SolveClosedTour(tc.dist, tsp.DefaultOptions())
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
			require.ErrorIs(t, tsp.ValidateMatrix(tc.dist), tsp.ErrInvalidMatrix)
		})
	}
}

// entryView hides the concrete *matrix.Dense so only Rows/Cols/At are seen.
type entryView struct{ matrix.Matrix }

func TestValidateMatrix_KeepsMatrixSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rows      [][]float64
		wantTSP   error
		wantMatrix error
	}{
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 3}}, tsp.ErrNonSquare, matrix.ErrNonSquare},
		{"asymmetric", [][]float64{{0, 1}, {2, 0}}, tsp.ErrAsymmetry, matrix.ErrAsymmetry},
		{"negative", [][]float64{{0, -1}, {-1, 0}}, tsp.ErrNegativeWeight, matrix.ErrNegative},
		{"nan", [][]float64{{0, math.NaN()}, {math.NaN(), 0}}, tsp.ErrNaNInf, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDenseFrom(tc.rows)
			require.NoError(t, err)

			err = tsp.ValidateMatrix(m)
			require.ErrorIs(t, err, tc.wantTSP)
			require.ErrorIs(t, err, tc.wantMatrix)
			require.ErrorIs(t, err, tsp.ErrInvalidMatrix)
		})
	}

	_, err := tsp.SolveClosedTour(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolveClosedTour_AnyMatrixImplementation(t *testing.T) {
	t.Parallel()

	m := euclid(t, regularPolygon(6))
	want, err := tsp.SolveClosedTour(m, tsp.DefaultOptions())
	require.NoError(t, err)

	got, err := tsp.SolveClosedTour(entryView{m}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, want.Tour, got.Tour)
	require.InDelta(t, want.Cost, got.Cost, 1e-9)

	bad, err := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 0}})
	require.NoError(t, err)
	require.ErrorIs(t, tsp.ValidateMatrix(entryView{bad}), tsp.ErrNonZeroDiagonal)
}

func TestSolveClosedTour_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	m := euclid(t, regularPolygon(4))

	bad := []func(*tsp.Options){
		func(o *tsp.Options) { o.Eps = -1 },
		func(o *tsp.Options) { o.TimeLimit = -1 },
		func(o *tsp.Options) { o.MaxIters = -1 },
		func(o *tsp.Options) { o.Restarts = -1 },
		func(o *tsp.Options) { o.Workers = -2 },
		func(o *tsp.Options) { o.ExactLimit = tsp.MaxExactVertices + 1 },
	}
	for _, mutate := range bad {
		o := tsp.DefaultOptions()
		mutate(&o)
		_, err := tsp.SolveClosedTour(m, o)
		require.ErrorIs(t, err, tsp.ErrInvalidOptions)
	}

	o := tsp.DefaultOptions()
	o.Algo = tsp.Algorithm(42)
	_, err := tsp.SolveClosedTour(m, o)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	o = tsp.DefaultOptions()
	o.StartVertex = 4
	_, err = tsp.SolveClosedTour(m, o)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestSolveClosedTour_ExactTooLarge(t *testing.T) {
	t.Parallel()

	m := euclid(t, randomPoints(tsp.MaxExactVertices+1, 3))
	_, err := tsp.SolveClosedTour(m, optsFor(tsp.ExactHeldKarp))
	require.ErrorIs(t, err, tsp.ErrTooLarge)
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, a := range allAlgorithms {
		got, err := tsp.ParseAlgorithm(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}
	_, err := tsp.ParseAlgorithm("simulated-annealing")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}
