// Package tsp — tour utilities shared by exact/heuristic solvers.
//
// Two representations are used:
//   - permutation: len n, each vertex once, cyclic order with implied closure
//     (the public TSResult.Tour form);
//   - closed tour: len n+1 with tour[0]==tour[n]==start (the internal form all
//     local-search moves operate on).
//
// Provided helpers:
//   - ValidatePermutation / ValidateTour: shape invariants.
//   - closeTour / openTour: convert between the two forms.
//   - rotateToStart: cyclic shift so a tour starts at a given vertex.
//   - canonicalizeOrientationInPlace: unique direction for a fixed start.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//   - shortcutEulerian: skip revisits in an Euler walk.
package tsp

import "fmt"

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("len=%d, n=%d: %w", len(perm), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("perm[%d]=%d out of range: %w", i, v, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("perm[%d]=%d repeated: %w", i, v, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces closed-cycle invariants:
// len(tour)==n+1, tour[0]==tour[n]==start, tour[:n] is a permutation.
//
// Complexity: O(n).
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return fmt.Errorf("len=%d, n=%d: %w", len(tour), n, ErrDimensionMismatch)
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("tour not closed at %d: %w", start, ErrDimensionMismatch)
	}

	return ValidatePermutation(tour[:n], n)
}

// closeTour returns a fresh closed copy of perm (appends perm[0]).
func closeTour(perm []int) []int {
	out := make([]int, len(perm)+1)
	copy(out, perm)
	out[len(perm)] = perm[0]

	return out
}

// openTour returns a fresh copy of closed without its closing vertex.
func openTour(closed []int) []int {
	out := make([]int, len(closed)-1)
	copy(out, closed[:len(closed)-1])

	return out
}

// rotateToStart returns a closed tour equivalent to the cyclic permutation
// perm, shifted so it starts and ends at start.
//
// Complexity: O(n).
func rotateToStart(perm []int, start int) ([]int, error) {
	n := len(perm)
	pivot := -1
	for i, v := range perm {
		if v == start {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, fmt.Errorf("start %d not in tour: %w", start, ErrDimensionMismatch)
	}

	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = perm[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// canonicalizeOrientationInPlace fixes the direction of a closed tour: when
// the right neighbour of start is larger than the left one, the interior is
// reversed. Two tours describing the same cycle thus compare equal.
//
// Complexity: O(n).
func canonicalizeOrientationInPlace(tour []int) {
	n := len(tour) - 1
	if n < 3 {
		return
	}
	if tour[1] > tour[n-1] {
		reverseArcInPlace(tour, 1, n-1)
	}
}

// reverseArcInPlace reverses the inclusive segment tour[i..k] in place.
// Callers guarantee 1 ≤ i < k ≤ n-1 on a closed tour.
//
// Complexity: O(k-i).
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// shortcutEulerian converts an Euler walk (with revisits) into a closed
// Hamiltonian tour by keeping first occurrences, then rotates it to start.
//
// Errors: ErrDimensionMismatch when the walk misses a vertex or leaves range.
//
// Complexity: O(len(euler) + n).
func shortcutEulerian(euler []int, n, start int) ([]int, error) {
	visited := make([]bool, n)
	cycle := make([]int, 0, n)
	for _, v := range euler {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("euler vertex %d: %w", v, ErrDimensionMismatch)
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}
	if len(cycle) != n {
		return nil, fmt.Errorf("euler walk covers %d of %d vertices: %w", len(cycle), n, ErrDimensionMismatch)
	}

	return rotateToStart(cycle, start)
}

// ringTour returns the closed canonical ring start, start+1, …, n-1, 0, …, start.
func ringTour(n, start int) []int {
	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = (start + i) % n
	}
	out[n] = start

	return out
}
