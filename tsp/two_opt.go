// Package tsp - 2-opt local search on symmetric instances.
//
// twoOpt repeatedly scans candidate pairs (i,k), 1 ≤ i < k ≤ n−1, of a closed
// tour T and reverses T[i..k] whenever
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d) < −Eps,  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// A pass applies every improving move it meets; the search stops after a
// pass without improvement, after MaxIters accepted moves, or when the
// deadline expires. In every case the current tour is valid and returned.
//
// Design:
//   - Deterministic scanning order; no RNG.
//   - O(1) per candidate check, O(k−i) per accepted move, no allocation in the loop.
//   - Final cost recomputed from scratch (not accumulated deltas) and rounded to 1e−9.
//
// Complexity: O(passes·n²) time, O(n) space.
package tsp

import "time"

// deadlineCheckMask throttles wall-clock checks to one per 1024 candidates.
const deadlineCheckMask = 1023

// deadline is a soft wall-clock budget; the zero value never expires.
type deadline struct {
	at time.Time
}

// newDeadline starts a budget of d; d == 0 means unlimited.
func newDeadline(d time.Duration) deadline {
	if d <= 0 {
		return deadline{}
	}

	return deadline{at: time.Now().Add(d)}
}

// expired reports whether the budget is spent.
func (d deadline) expired() bool {
	return !d.at.IsZero() && time.Now().After(d.at)
}

// twoOpt improves the closed tour init (not modified) and returns the
// improved closed tour with its cost.
func twoOpt(t *weights, init []int, opts Options, dl deadline) ([]int, float64) {
	n := len(init) - 1
	cur := make([]int, n+1)
	copy(cur, init)
	if n < 4 {
		// Every tour on ≤3 vertices has the same cost.
		return cur, closedCost(t, cur)
	}

	var (
		a, b, c, d int
		delta      float64
		i, k       int
		accepted   int
		step       int
		improved   = true
	)
	for improved {
		improved = false
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				step++
				if step&deadlineCheckMask == 0 && dl.expired() {
					return cur, closedCost(t, cur)
				}

				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = (t.at(a, c) + t.at(b, d)) - (t.at(a, b) + t.at(c, d))
				if delta >= -opts.Eps {
					continue
				}

				reverseArcInPlace(cur, i, k)
				improved = true
				accepted++
				if opts.MaxIters > 0 && accepted >= opts.MaxIters {
					return cur, closedCost(t, cur)
				}
			}
		}
	}

	return cur, closedCost(t, cur)
}
