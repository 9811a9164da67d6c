package cruise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oceancruise/cruise"
	"github.com/katalvlaran/oceancruise/geo"
	"github.com/katalvlaran/oceancruise/route"
)

func TestNewProfile(t *testing.T) {
	depths := []float64{10, 50, 100}
	p, err := cruise.NewProfile(cruise.Station{Name: "S"}, depths, []float64{1.1, 1.2, 1.3})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	depths[0] = -1
	assert.Equal(t, 10.0, p.Depths[0], "inputs are copied")

	_, err = cruise.NewProfile(cruise.Station{Name: "S"}, depths, []float64{1})
	assert.ErrorIs(t, err, geo.ErrLengthMismatch)
}

func TestNewTransect(t *testing.T) {
	st := []cruise.Station{{Name: "n", Lat: 10}, {Name: "s", Lat: -10}, {Name: "m", Lat: 0}}
	depths := [][]float64{{0, 10}, {0}, {0, 5, 10}}
	values := [][]float64{{1, 2}, {3}, {4, 5, 6}}

	tr, err := cruise.NewTransect("Cd", "GA03", st, depths, values)
	require.NoError(t, err)
	require.Len(t, tr.Profiles, 3)
	assert.Equal(t, "GA03", tr.Track().Name)
	assert.Equal(t, []float64{10, -10, 0}, tr.Track().Latitudes())

	_, err = cruise.NewTransect("Cd", "GA03", st, depths[:2], values)
	assert.ErrorIs(t, err, geo.ErrLengthMismatch)

	values[2] = values[2][:1]
	_, err = cruise.NewTransect("Cd", "GA03", st, depths, values)
	assert.ErrorIs(t, err, geo.ErrLengthMismatch)
}

func TestTransect_Sort(t *testing.T) {
	st := []cruise.Station{{Name: "n", Lat: 10}, {Name: "s", Lat: -10}, {Name: "m", Lat: 0, Lon: 0.5}}
	tr, err := cruise.NewTransect("Cd", "GA03", st,
		[][]float64{{0}, {0}, {0}}, [][]float64{{1}, {2}, {3}})
	require.NoError(t, err)

	sorted, res, err := tr.Sort(route.New())
	require.NoError(t, err)
	assert.Equal(t, route.South, res.Orientation)
	assert.Equal(t, []int{1, 2, 0}, res.Order)
	assert.Equal(t, []float64{2}, sorted.Profiles[0].Values)
	assert.Equal(t, []float64{1}, sorted.Profiles[2].Values)

	d := sorted.Distances(geo.EarthRadiusKm)
	require.Len(t, d, 3)
	assert.Zero(t, d[0])
	assert.Greater(t, d[2], d[1])
}
