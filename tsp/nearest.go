package tsp

// nearestNeighborTour builds a closed tour greedily from `from`: repeatedly
// move to the closest unvisited vertex, ties broken by the smallest index.
// The result is rotated so it starts at start.
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighborTour(t *weights, from, start int) []int {
	n := t.n
	visited := make([]bool, n)
	perm := make([]int, 0, n)

	cur := from
	visited[cur] = true
	perm = append(perm, cur)

	var (
		v, next int
		best    float64
	)
	for len(perm) < n {
		next = -1
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if next < 0 || t.at(cur, v) < best {
				next, best = v, t.at(cur, v)
			}
		}
		visited[next] = true
		perm = append(perm, next)
		cur = next
	}

	// perm is a permutation containing start, so rotation cannot fail.
	tour, _ := rotateToStart(perm, start)

	return tour
}
