package tsp

// greedyMatch pairs odd-degree vertices: it repeatedly takes the first
// unmatched vertex and joins it to its nearest unmatched partner (smallest
// index on ties), appending each matching edge to adj in place.
// len(odd) is even for any graph (handshake lemma).
//
// Complexity: O(k²), where k = len(odd).
func greedyMatch(t *weights, odd []int, adj [][]int) {
	remaining := append([]int(nil), odd...)
	for len(remaining) > 1 {
		u := remaining[0]
		remaining = remaining[1:]

		bestIdx := 0
		for i := 1; i < len(remaining); i++ {
			if t.at(u, remaining[i]) < t.at(u, remaining[bestIdx]) {
				bestIdx = i
			}
		}
		v := remaining[bestIdx]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}
