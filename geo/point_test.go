package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	t.Parallel()

	p, err := geo.NewPoint(-45.5, 400)
	require.NoError(t, err)
	assert.Equal(t, geo.Point{Lat: -45.5, Lon: 400}, p)

	_, err = geo.NewPoint(91, 0)
	require.ErrorIs(t, err, geo.ErrLatitudeOutOfRange)

	_, err = geo.NewPoint(0, math.NaN())
	require.ErrorIs(t, err, geo.ErrNonFinite)
}

func TestPointsFromLatLon(t *testing.T) {
	t.Parallel()

	pts, err := geo.PointsFromLatLon([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []geo.Point{{Lat: 1, Lon: 3}, {Lat: 2, Lon: 4}}, pts)

	_, err = geo.PointsFromLatLon([]float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, geo.ErrLengthMismatch)
}
