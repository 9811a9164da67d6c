// Package route infers a geographically sensible visiting order for a set of
// stations.
//
// The Engine turns an unordered point set into an open path:
//
//  1. Normalize: geo.AutoShift repairs 0°/360° wraparound.
//  2. Embed:     geo.BuildDistanceMatrix on the unit sphere, with a zero-cost
//     dummy vertex at index N.
//  3. Solve:     a tsp.Solver returns a closed tour over the N+1 vertices.
//  4. Cut:       the cycle is opened at the dummy (CutAtDummy); its zero-cost
//     edges are dropped, leaving the best Hamiltonian path.
//  5. Orient:    the path runs west→east when the longitude span exceeds the
//     latitude span, south→north otherwise, unless an Orientation is forced.
//
// The result is a permutation of the original indices; callers apply it to
// their own records (see package cruise).
//
// An Engine holds only immutable configuration and is safe for concurrent
// use. Orientation is always an explicit option, never package state.
package route
