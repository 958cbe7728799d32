// SPDX-License-Identifier: MIT

package linsolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for linear solving.
// Shape errors are reported with the matrix package sentinels
// (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch).
var (
	// ErrSingular is returned when a pivot is zero (within the pivot tolerance)
	// after partial pivoting, or when the determinant is zero for inversion.
	ErrSingular = errors.New("linsolve: singular matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linsolve: invalid option supplied")
)

// Operation tags for error wrapping.
const (
	opGaussian    = "GaussianEliminate"
	opGaussJordan = "GaussJordan"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opResidual    = "Residual"
)

// linsolveErrorf wraps err with an operation tag, preserving it via %w.
func linsolveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
