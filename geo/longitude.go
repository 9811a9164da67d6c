package geo

import "math"

// fullTurn is the longitude period in degrees.
const fullTurn = 360.0

// Wraparound detection bands: a set is considered to straddle the prime
// meridian when it has longitudes on both sides of it, within these bands.
const (
	eastBandMin, eastBandMax = 0.0, 90.0
	westBandMin, westBandMax = 270.0, 360.0
)

// ShiftBase is the base longitude AutoShift uses: results lie in [-180, 180).
const ShiftBase = -180.0

// NormalizeLongitude maps lon into the half-open interval [base, base+360)
// by computing ((lon-base) mod 360) + base. Total and pure.
func NormalizeLongitude(lon, base float64) float64 {
	r := math.Mod(lon-base, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	// r+360 can round up to exactly 360 for tiny negative r.
	if r >= fullTurn {
		r -= fullTurn
	}

	return r + base
}

// DetectWraparound reports whether points contain at least one longitude in
// [0,90) and at least one in [270,360). Longitudes are tested as given.
// Complexity: O(n), stops at the first pair of hits.
func DetectWraparound(points []Point) bool {
	var east, west bool
	for _, p := range points {
		if p.Lon >= eastBandMin && p.Lon < eastBandMax {
			east = true
		}
		if p.Lon >= westBandMin && p.Lon < westBandMax {
			west = true
		}
		if east && west {
			return true
		}
	}

	return false
}

// ShiftLongitudes returns a new slice with every longitude normalized
// against base. The input slice is not modified.
func ShiftLongitudes(points []Point, base float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.WithLongitude(NormalizeLongitude(p.Lon, base))
	}

	return out
}

// AutoShift remaps longitudes into [-180, 180) when DetectWraparound is true;
// otherwise it returns an unmodified copy. Run it before any computation that
// depends on longitude spread (distance matrices, orientation, reduction).
func AutoShift(points []Point) []Point {
	if DetectWraparound(points) {
		return ShiftLongitudes(points, ShiftBase)
	}
	out := make([]Point, len(points))
	copy(out, points)

	return out
}
