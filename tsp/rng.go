// Package tsp - RNG utilities for the random restarts.
//
// Goals:
//   - Determinism: same seed ⇒ identical restarts on every platform.
//   - Independence: each restart owns its own stream, so restarts can run on
//     any worker in any order and still produce the same tours.
//
// math/rand.Rand is NOT goroutine-safe; never share one across workers.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the deterministic RNG for restart number stream.
func streamRNG(seed int64, stream int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(stream))))
}

// randomTour returns a closed tour over a Fisher–Yates shuffle of 0..n-1,
// rotated to start.
//
// Complexity: O(n).
func randomTour(n, start int, rng *rand.Rand) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	tour, _ := rotateToStart(perm, start)

	return tour
}
