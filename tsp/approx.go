// Package tsp — Christofides-style approximation.
//
// christofides builds a closed tour by:
//
//  1. Minimum spanning tree (Prim, O(n²)).
//  2. Greedy matching of the odd-degree MST vertices.
//  3. Euler circuit of the resulting multigraph (Hierholzer).
//  4. Shortcutting revisits into a Hamiltonian cycle.
//
// With a true minimum-weight perfect matching on a metric instance the tour
// is within 1.5·OPT. The greedy matching keeps the pipeline deterministic
// and valid but drops that guarantee, and instances carrying a zero-cost
// dummy vertex are not metric anyway; the optional 2-opt polish in the
// dispatcher recovers most of the difference.
package tsp

// christofides returns a closed tour starting at start and its cost.
func christofides(t *weights, start int) ([]int, float64, error) {
	adj := minimumSpanningTree(t)

	odd := make([]int, 0, t.n/2+1)
	for v := 0; v < t.n; v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}
	greedyMatch(t, odd, adj)

	tour, err := shortcutEulerian(eulerianCircuit(adj, start), t.n, start)
	if err != nil {
		return nil, 0, err
	}
	canonicalizeOrientationInPlace(tour)

	return tour, closedCost(t, tour), nil
}
