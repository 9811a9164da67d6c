// Package oceancruise orders and measures the stations of oceanographic
// cruises.
//
// 🚀 What is oceancruise?
//
//	Station logs arrive unordered and with longitudes in whatever convention
//	the ship used. oceancruise turns them into a track:
//		• Longitudes: normalization and automatic 0°/360° wraparound repair
//		• Distances: haversine great-circle matrices and along-track km
//		• Ordering: closed-tour TSP solvers opened at a zero-cost dummy vertex
//		• Orientation: south→north or west→east, inferred or forced
//		• Records: stations, tracks, profiles and transects
//
// Under the hood, everything is organized in small packages:
//
//	geo/      — points, longitude normalization, extents, distances
//	matrix/   — dense distance matrices and validators
//	tsp/      — Held–Karp, Christofides, 2-opt and parallel multi-start
//	route/    — the ordering engine (shift → embed → solve → cut → orient)
//	cruise/   — Station, Track, Profile, Transect
//	internal/ — config, logging, metrics, sheets, GeoJSON, sqlite, HTTP
//	cmd/cruiseroute — CLI: order a sheet, or serve the HTTP API
//
// Quick start:
//
//	res, err := route.Order([]geo.Point{{Lat: 1, Lon: 2}, {Lat: 10, Lon: 20}, {Lat: 3, Lon: 6}})
//	// res.Order == [0 2 1], res.Orientation == route.West
package oceancruise
