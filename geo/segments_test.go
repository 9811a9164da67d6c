package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/oceancruise/geo"
	"github.com/stretchr/testify/assert"
)

func TestSegmentDistances_Count(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 6; n++ {
		pts := make([]geo.Point, n)
		for i := range pts {
			pts[i] = geo.Point{Lat: float64(i), Lon: float64(2 * i)}
		}
		segs := geo.SegmentDistances(pts, geo.EarthRadiusKm)
		assert.NotNil(t, segs)
		assert.Len(t, segs, max(n-1, 0))
		for _, d := range segs {
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}

func TestSegmentDistances_RealRadius(t *testing.T) {
	t.Parallel()

	pts := []geo.Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 3}}
	segs := geo.SegmentDistances(pts, geo.EarthRadiusKm)
	km := geo.EarthRadiusKm * math.Pi / 180

	assert.InDelta(t, km, segs[0], 1e-9)
	assert.InDelta(t, 2*km, segs[1], 1e-9)
	assert.InDelta(t, 3*km, geo.TrackLength(pts, geo.EarthRadiusKm), 1e-9)
}

func TestCumulativeDistances(t *testing.T) {
	t.Parallel()

	pts := geo.AutoShift([]geo.Point{{Lat: 0, Lon: 359}, {Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}})
	cum := geo.CumulativeDistances(pts, geo.EarthRadiusKm)
	km := geo.EarthRadiusKm * math.Pi / 180

	assert.Len(t, cum, 3)
	assert.Zero(t, cum[0])
	assert.InDelta(t, km, cum[1], 1e-9)
	assert.InDelta(t, 2*km, cum[2], 1e-9)

	assert.Empty(t, geo.CumulativeDistances(nil, geo.EarthRadiusKm))
}
