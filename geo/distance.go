package geo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/oceancruise/matrix"
)

const (
	// EarthRadiusKm is the mean Earth radius used for along-track kilometres.
	EarthRadiusKm = 6371.0

	// UnitRadius yields central angles in radians; solvers only need
	// relative costs.
	UnitRadius = 1.0
)

const degToRad = math.Pi / 180

// GreatCircleDistance returns the haversine distance between a and b on a
// sphere of the given radius. Symmetric, non-negative, zero for identical
// points. The haversine term is clamped to 1 to keep asin in its domain for
// near-antipodal pairs.
func GreatCircleDistance(a, b Point, radius float64) float64 {
	var (
		φ1 = a.Lat * degToRad
		φ2 = b.Lat * degToRad
		Δφ = φ2 - φ1
		Δλ = (b.Lon - a.Lon) * degToRad
	)
	sinφ := math.Sin(Δφ / 2)
	sinλ := math.Sin(Δλ / 2)
	h := sinφ*sinφ + math.Cos(φ1)*math.Cos(φ2)*sinλ*sinλ

	return 2 * radius * math.Asin(math.Min(1, math.Sqrt(h)))
}

// DummyIndex returns the index of the synthetic zero-cost vertex in a
// distance matrix built for n points.
func DummyIndex(n int) int { return n }

// BuildDistanceMatrix returns the (N+1)×(N+1) matrix of pairwise
// great-circle distances for points, plus a dummy vertex at DummyIndex(N)
// whose row and column are all zero. The diagonal is zero and the matrix is
// symmetric by construction.
//
// Points are used as given: callers must AutoShift them first.
//
// Complexity: O(N²) time and memory.
func BuildDistanceMatrix(points []Point, radius float64) (*matrix.Dense, error) {
	n := len(points)
	m, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return nil, fmt.Errorf("BuildDistanceMatrix: %w", err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = m.SetSym(i, j, GreatCircleDistance(points[i], points[j], radius)); err != nil {
				return nil, fmt.Errorf("BuildDistanceMatrix: %w", err)
			}
		}
	}
	// Row/column n stay zero: the dummy is adjacent to everything at no cost.

	return m, nil
}
