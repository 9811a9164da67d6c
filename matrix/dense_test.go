// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/oceancruise/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_SetSym(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 2, 4))

	a, _ := m.At(0, 2)
	b, _ := m.At(2, 0)
	assert.Equal(t, 4.0, a)
	assert.Equal(t, 4.0, b)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, rect.SetSym(0, 1, 1), matrix.ErrNonSquare)
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, row)

	_, err = matrix.NewDenseFrom([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	orig, _ := m.At(0, 0)
	assert.Equal(t, 1.0, orig)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
