// SPDX-License-Identifier: MIT

// Package matrix provides the small dense matrix used by the linear solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Constructors from shapes, row literals and identities.
//   - Minor/Induced submatrix extraction (copies) used by cofactor expansion.
//   - Mul, MatVec, Scale, Transpose and AllClose kernels.
//   - ToGonum/FromGonum bridges to gonum.org/v1/gonum/mat for callers that
//     need factorizations beyond the package's own kernels.
//
// Matrices here are meant for small systems (classroom 3×3, a few dozen rows
// at most). All loops run in a fixed order, so results are reproducible
// bit-for-bit across runs.
//
// Ownership: every constructor and kernel returns a freshly allocated Dense.
// Nothing in this package retains or aliases caller slices.
package matrix
