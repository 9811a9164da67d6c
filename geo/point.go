package geo

import (
	"fmt"
	"math"
)

// Point is a geographic position in degrees. Latitude lies in [-90, 90];
// longitude is not range-restricted and may need normalization.
// Point is a value type: every transformation returns a new Point.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewPoint validates and returns a Point.
// Errors: ErrNonFinite, ErrLatitudeOutOfRange.
func NewPoint(lat, lon float64) (Point, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Point{}, fmt.Errorf("NewPoint(%v, %v): %w", lat, lon, ErrNonFinite)
	}
	if lat < -90 || lat > 90 {
		return Point{}, fmt.Errorf("NewPoint(%v, %v): %w", lat, lon, ErrLatitudeOutOfRange)
	}

	return Point{Lat: lat, Lon: lon}, nil
}

// WithLongitude returns a copy of p with its longitude replaced.
func (p Point) WithLongitude(lon float64) Point {
	return Point{Lat: p.Lat, Lon: lon}
}

// String renders the point as "(lat, lon)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lat, p.Lon)
}

// PointsFromLatLon zips parallel latitude and longitude slices.
// Returns ErrLengthMismatch when the lengths differ; nothing is truncated.
func PointsFromLatLon(lats, lons []float64) ([]Point, error) {
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("PointsFromLatLon: %d lats, %d lons: %w", len(lats), len(lons), ErrLengthMismatch)
	}
	out := make([]Point, len(lats))
	for i := range lats {
		out[i] = Point{Lat: lats[i], Lon: lons[i]}
	}

	return out, nil
}
