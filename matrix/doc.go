// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the route
// ordering pipeline.
//
// The package is intentionally small:
//
//   - Matrix is the read/write surface consumed by solvers (Rows, Cols, At, Set, Clone).
//   - Dense is a row-major implementation backed by a single flat slice.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateFinite,
//     ValidateNonNegative) centralize the structural checks solvers rely on.
//
// Distance matrices built by package geo are Dense values of order N+1
// (N stations plus one synthetic dummy vertex). All indexers return
// sentinel errors instead of panicking; match them with errors.Is.
package matrix
