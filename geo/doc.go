// Package geo provides the geographic primitives of the route ordering
// pipeline: points, longitude normalization, great-circle distances,
// distance matrices and along-track distance reduction.
//
// Longitude handling:
//
//   - NormalizeLongitude maps any longitude into [base, base+360).
//   - DetectWraparound flags point sets that straddle the 0°/360° meridian
//     (some longitude in [0,90) and some in [270,360)).
//   - AutoShift remaps such sets into [-180,180) so that a cruise crossing
//     0° does not look like it spans the whole globe.
//
// Distances:
//
//   - GreatCircleDistance is the haversine distance on a sphere of a given
//     radius (EarthRadiusKm for kilometres, UnitRadius for solver costs).
//   - BuildDistanceMatrix returns an (N+1)×(N+1) matrix whose last row and
//     column belong to a zero-cost dummy vertex at DummyIndex(N).
//   - SegmentDistances / CumulativeDistances reduce an ordered track.
//
// Nothing in this package normalizes implicitly: callers run AutoShift
// before building matrices or reducing tracks. All functions are pure and
// safe for concurrent use.
package geo
