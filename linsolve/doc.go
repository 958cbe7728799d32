// SPDX-License-Identifier: MIT

// Package linsolve solves small dense linear systems and inverts small
// matrices with the classical direct methods.
//
// The linsolve package provides:
//
//   - GaussianEliminate: forward elimination with partial pivoting and unit
//     pivots, followed by back substitution.
//   - GaussJordan: the same pivoting, eliminating above and below so the
//     reduced right-hand side is the solution.
//   - Determinant: recursive cofactor (Laplace) expansion along row 0
//     (strategy Cofactor), or an LU factorization (strategy LU).
//   - Adjoint: the classical adjugate, adj[j,i] = (−1)^(i+j)·det(minor(i,j)).
//   - Inverse: adj/det (strategy Cofactor) or an LU-based inverse (strategy LU).
//   - Residual: A·x − b, for verifying a solution by direct substitution.
//
// Ownership: no function mutates its arguments. The eliminators work on
// private copies of A and b, so the same system can be handed to several
// solvers in a row.
//
// Complexity:
//
//   - GaussianEliminate, GaussJordan: O(n³).
//   - Determinant/Adjoint/Inverse with Cofactor: O(n!) (n² minors for the
//     adjugate). Fine for the 3×3 and 4×4 systems this package is written
//     for; use WithStrategy(LU) beyond that.
//   - Determinant/Inverse with LU: O(n³) via gonum.org/v1/gonum/mat.
package linsolve
