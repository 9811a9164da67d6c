package geo

// SegmentDistances returns the N-1 great-circle distances between
// consecutive points of an ordered track, using the given radius
// (EarthRadiusKm for kilometres). Returns an empty, non-nil slice for N ≤ 1.
//
// Points must already be auto-shifted; the reduction is only meaningful on
// the same longitudes the order was computed from.
func SegmentDistances(points []Point, radius float64) []float64 {
	if len(points) <= 1 {
		return []float64{}
	}
	out := make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		out[i-1] = GreatCircleDistance(points[i-1], points[i], radius)
	}

	return out
}

// CumulativeDistances returns the along-track distance of every point from
// the first one: out[0] == 0 and out[i] == out[i-1] + segment i-1.
// Returns an empty slice for an empty track.
func CumulativeDistances(points []Point, radius float64) []float64 {
	out := make([]float64, len(points))
	for i, d := range SegmentDistances(points, radius) {
		out[i+1] = out[i] + d
	}

	return out
}

// TrackLength returns the sum of SegmentDistances.
func TrackLength(points []Point, radius float64) float64 {
	var total float64
	for _, d := range SegmentDistances(points, radius) {
		total += d
	}

	return total
}
