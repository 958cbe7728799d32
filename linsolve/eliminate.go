// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/numlab/matrix"
)

// system is a private working copy of A·x = b.
type system struct {
	a    *matrix.Dense // clone of A
	rows [][]float64   // row views into a; SwapRows keeps them aligned
	rhs  []float64     // b
	n    int
}

// newSystem validates (a, b) and copies them into a working system.
func newSystem(a *matrix.Dense, b []float64) (*system, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, err
	}
	rhs := make([]float64, n)
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("b[%d]=%g: %w", i, v, matrix.ErrNaNInf)
		}
		rhs[i] = v
	}

	work := a.Clone()
	rows := make([][]float64, n)
	var err error
	for i := range rows {
		if rows[i], err = work.RowView(i); err != nil {
			return nil, err
		}
	}

	return &system{a: work, rows: rows, rhs: rhs, n: n}, nil
}

// pivot selects the row ≥ i with the largest |a[r,i]| (first on ties),
// swaps it into row i, and scales row i so its pivot is exactly 1.
// The right-hand side is scaled by the same original pivot value.
func (s *system) pivot(i int, tol float64) error {
	best, bestAbs := i, math.Abs(s.rows[i][i])
	for r := i + 1; r < s.n; r++ {
		if v := math.Abs(s.rows[r][i]); v > bestAbs {
			best, bestAbs = r, v
		}
	}
	if best != i {
		if err := s.a.SwapRows(i, best); err != nil {
			return err
		}
		s.rhs[i], s.rhs[best] = s.rhs[best], s.rhs[i]
	}

	p := s.rows[i][i]
	if math.Abs(p) <= tol {
		return fmt.Errorf("column %d: pivot %g: %w", i, p, ErrSingular)
	}
	row := s.rows[i]
	for k := i; k < s.n; k++ {
		row[k] /= p
	}
	s.rhs[i] /= p

	return nil
}

// eliminate subtracts multiples of the unit-pivot row i from row j so that
// a[j,i] becomes zero. Columns left of i are already zero in row i.
func (s *system) eliminate(i, j int) {
	factor := s.rows[j][i]
	if factor == 0 {
		return
	}
	src, dst := s.rows[i], s.rows[j]
	for k := i; k < s.n; k++ {
		dst[k] -= factor * src[k]
	}
	s.rhs[j] -= factor * s.rhs[i]
}

// GaussianEliminate solves A·x = b by Gaussian elimination with partial pivoting.
//
// Algorithm Outline:
//  1. For each column i: choose the row ≥ i with the largest |a[r,i]|, swap it in,
//     divide the row and b[i] by the pivot so a[i,i] = 1.
//  2. Eliminate a[j,i] for every j > i.
//  3. Back-substitute from the last row: x[i] = b[i] − a[i,i+1:]·x[i+1:].
//
// A and b are not modified.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch: shape.
//   - matrix.ErrNaNInf: non-finite entry in b.
//   - ErrSingular: a pivot is zero (|p| <= pivot tolerance) after pivoting.
//   - ErrOptionViolation: invalid options.
//
// Complexity: O(n³) time, O(n²) space for the working copy.
func GaussianEliminate(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, linsolveErrorf(opGaussian, err)
	}
	s, err := newSystem(a, b)
	if err != nil {
		return nil, linsolveErrorf(opGaussian, err)
	}

	var i, j int
	for i = 0; i < s.n; i++ {
		if err = s.pivot(i, o.PivotTolerance); err != nil {
			return nil, linsolveErrorf(opGaussian, err)
		}
		for j = i + 1; j < s.n; j++ {
			s.eliminate(i, j)
		}
	}

	x := make([]float64, s.n)
	for i = s.n - 1; i >= 0; i-- {
		x[i] = s.rhs[i] - floats.Dot(s.rows[i][i+1:], x[i+1:])
	}

	return x, nil
}

// GaussJordan solves A·x = b by Gauss–Jordan elimination with partial pivoting.
//
// The pivot step is the one used by GaussianEliminate; the pivot variable is
// then eliminated from every other row, above and below, leaving the identity
// on the left and the solution in the reduced right-hand side. No back
// substitution pass is needed.
//
// A and b are not modified. Errors match GaussianEliminate.
//
// Complexity: O(n³) time, O(n²) space for the working copy.
func GaussJordan(a *matrix.Dense, b []float64, opts ...Option) ([]float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, linsolveErrorf(opGaussJordan, err)
	}
	s, err := newSystem(a, b)
	if err != nil {
		return nil, linsolveErrorf(opGaussJordan, err)
	}

	var i, j int
	for i = 0; i < s.n; i++ {
		if err = s.pivot(i, o.PivotTolerance); err != nil {
			return nil, linsolveErrorf(opGaussJordan, err)
		}
		for j = 0; j < s.n; j++ {
			if j != i {
				s.eliminate(i, j)
			}
		}
	}

	return s.rhs, nil
}

// Residual returns A·x − b. A verified solution has a residual near zero.
func Residual(a *matrix.Dense, x, b []float64) ([]float64, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, linsolveErrorf(opResidual, err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return nil, linsolveErrorf(opResidual, err)
	}
	floats.Sub(ax, b)

	return ax, nil
}
