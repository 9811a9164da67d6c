// Package tsp — cost utilities.
//
// Costs are summed along cycle edges and stabilized to 1e-9 so results do not
// drift across platforms or optimization levels.
package tsp

import (
	"math"

	"github.com/katalvlaran/oceancruise/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// closedCost sums w along a closed tour (len n+1).
//
// Complexity: O(n).
func closedCost(t *weights, tour []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		sum += t.at(tour[i], tour[i+1])
	}

	return round1e9(sum)
}

// TourCost returns the cycle length of perm on dist, including the closing
// edge perm[n-1]→perm[0].
//
// Errors: any ErrInvalidMatrix variant for dist, ErrDimensionMismatch when
// perm is not a permutation of 0..n-1.
//
// Complexity: O(n²) (the matrix is validated).
func TourCost(dist matrix.Matrix, perm []int) (float64, error) {
	t, err := loadWeights(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(perm, t.n); err != nil {
		return 0, err
	}

	return closedCost(t, closeTour(perm)), nil
}
