package tsp

import (
	"fmt"
	"math"
)

// heldKarp solves the instance exactly with the Held–Karp dynamic program.
//
// dp[mask*n+j] is the cheapest path that starts at vertex 0, visits exactly
// the vertices in mask (bit 0 always set) and ends at j. The tour is closed
// by returning from the best j to 0, reconstructed from the parent table and
// finally rotated to start and canonicalized.
//
// Ties are broken by the smallest predecessor/last vertex, so the result is
// deterministic.
//
// Time:   O(n²·2ⁿ).
// Memory: O(n·2ⁿ).
func heldKarp(t *weights, start int) ([]int, float64, error) {
	n := t.n
	if n > MaxExactVertices {
		return nil, 0, fmt.Errorf("n=%d > %d: %w", n, MaxExactVertices, ErrTooLarge)
	}

	var (
		full   = 1 << n
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
	)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev, j, k int
		cand             float64
	)
	for mask = 1; mask < full; mask += 2 { // odd masks contain vertex 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + t.at(k, j)
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	all := full - 1
	last := -1
	best := math.Inf(1)
	for j = 1; j < n; j++ {
		cand = dp[all*n+j] + t.at(j, 0)
		if cand < best {
			best, last = cand, j
		}
	}

	perm := make([]int, n)
	mask = all
	j = last
	for i := n - 1; i >= 1; i-- {
		perm[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}
	perm[0] = 0

	tour, err := rotateToStart(perm, start)
	if err != nil {
		return nil, 0, err
	}
	canonicalizeOrientationInPlace(tour)

	return tour, closedCost(t, tour), nil
}
