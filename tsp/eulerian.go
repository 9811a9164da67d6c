package tsp

// eulerianCircuit returns an Euler circuit of the undirected multigraph adj
// starting and ending at start (Hierholzer's algorithm). adj is not modified.
//
// Complexity: O(E·deg) because reverse edges are removed by linear search.
func eulerianCircuit(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = append([]int(nil), adj[u]...)
	}

	var circuit []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		for i, x := range local[v] {
			if x == u {
				local[v] = append(local[v][:i], local[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	return circuit
}
