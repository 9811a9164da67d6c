// Package tsp_test - shared helpers for black-box solver tests.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/oceancruise/matrix"
	"github.com/katalvlaran/oceancruise/tsp"
	"github.com/stretchr/testify/require"
)

// euclid builds a symmetric Euclidean distance matrix over 2D points.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	n := len(pts)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, m.SetSym(i, j, d))
		}
	}

	return m
}

// regularPolygon returns n points on the unit circle in counter-clockwise order.
func regularPolygon(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}

	return pts
}

// randomPoints returns n deterministic points in the unit square.
func randomPoints(n int, seed int64) [][2]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	return pts
}

// withDummy appends a vertex with zero distance to every other vertex.
func withDummy(t testing.TB, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	n := m.Rows()
	out, err := matrix.NewDense(n+1, n+1)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.NoError(t, out.Set(i, j, v))
		}
	}

	return out
}

// bruteForceCost enumerates every cycle through vertex 0.
func bruteForceCost(t testing.TB, m *matrix.Dense) float64 {
	t.Helper()
	n := m.Rows()
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			perm := append([]int{0}, rest...)
			c, err := tsp.TourCost(m, perm)
			require.NoError(t, err)
			best = math.Min(best, c)
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// optsFor returns DefaultOptions with the algorithm replaced.
func optsFor(algo tsp.Algorithm) tsp.Options {
	o := tsp.DefaultOptions()
	o.Algo = algo

	return o
}

var allAlgorithms = []tsp.Algorithm{tsp.Auto, tsp.MultiStart, tsp.TwoOptOnly, tsp.Christofides, tsp.ExactHeldKarp}
