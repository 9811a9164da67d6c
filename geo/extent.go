package geo

import "math"

// Extent is the latitude/longitude bounding range of a point set, computed
// on the longitudes as given (callers auto-shift first).
type Extent struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// ExtentOf returns the bounding ranges of points. An empty input yields the
// zero Extent (both spans 0).
func ExtentOf(points []Point) Extent {
	if len(points) == 0 {
		return Extent{}
	}
	e := Extent{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for _, p := range points {
		e.MinLat = math.Min(e.MinLat, p.Lat)
		e.MaxLat = math.Max(e.MaxLat, p.Lat)
		e.MinLon = math.Min(e.MinLon, p.Lon)
		e.MaxLon = math.Max(e.MaxLon, p.Lon)
	}

	return e
}

// LatSpan returns MaxLat - MinLat.
func (e Extent) LatSpan() float64 { return e.MaxLat - e.MinLat }

// LonSpan returns MaxLon - MinLon.
func (e Extent) LonSpan() float64 { return e.MaxLon - e.MinLon }
