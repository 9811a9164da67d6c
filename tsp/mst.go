package tsp

import "math"

// minimumSpanningTree computes an MST of the complete graph given by t with
// Prim's algorithm rooted at vertex 0 and returns its adjacency lists.
// Ties are broken by the smallest vertex index, so the tree is deterministic.
//
// Time:  O(n²).
// Space: O(n).
func minimumSpanningTree(t *weights) [][]int {
	n := t.n
	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	parent := make([]int, n)
	adj := make([][]int, n)

	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0

	var u, v, it int
	for it = 0; it < n; it++ {
		// Closest vertex outside the tree.
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u < 0 || bestCost[v] < bestCost[u]) {
				u = v
			}
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		for v = 0; v < n; v++ {
			if !inTree[v] && t.at(u, v) < bestCost[v] {
				bestCost[v] = t.at(u, v)
				parent[v] = u
			}
		}
	}

	return adj
}
