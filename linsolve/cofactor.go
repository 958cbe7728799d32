// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// Determinant returns det(m).
//
// With the default Cofactor strategy the determinant is expanded along row 0:
//
//	det(M) = Σ_c (−1)^c · M[0,c] · det(minor(0,c))
//
// with 1×1 and 2×2 base cases. No pivoting is done; cost is O(n!).
// With WithStrategy(LU) an LU factorization is used instead (O(n³)).
//
// A singular matrix has determinant 0; that is a result, not an error.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrOptionViolation.
func Determinant(m *matrix.Dense, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, linsolveErrorf(opDeterminant, err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return 0, linsolveErrorf(opDeterminant, err)
	}

	var det float64
	switch o.Strategy {
	case LU:
		det, err = luDeterminant(m)
	default:
		det, err = cofactorDeterminant(m)
	}
	if err != nil {
		return 0, linsolveErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorDeterminant expands along row 0. m must be square.
func cofactorDeterminant(m *matrix.Dense) (float64, error) {
	switch m.Rows() {
	case 1:
		return m.At(0, 0)
	case 2:
		rows := m.ToRows()
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0], nil
	}

	row0, err := m.Row(0)
	if err != nil {
		return 0, err
	}
	var (
		det, sub float64
		sign     = 1.0
		minor    *matrix.Dense
	)
	for col, a0c := range row0 {
		if minor, err = m.Minor(0, col); err != nil {
			return 0, err
		}
		if sub, err = cofactorDeterminant(minor); err != nil {
			return 0, err
		}
		det += sign * a0c * sub
		sign = -sign
	}

	return det, nil
}

// Adjoint returns the classical adjugate of m (the transpose of its cofactor
// matrix): adj[j,i] = (−1)^(i+j)·det(minor(i,j)). It always satisfies
// m·adj(m) = det(m)·I. The adjugate of a 1×1 matrix is [1].
//
// Complexity: n² cofactor determinants of size n−1.
func Adjoint(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, linsolveErrorf(opAdjoint, err)
	}
	n := m.Rows()
	cof, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, linsolveErrorf(opAdjoint, err)
	}
	if n == 1 {
		if err = cof.Set(0, 0, 1); err != nil {
			return nil, linsolveErrorf(opAdjoint, err)
		}

		return cof, nil
	}

	var (
		i, j  int
		d     float64
		minor *matrix.Dense
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if minor, err = m.Minor(i, j); err != nil {
				return nil, linsolveErrorf(opAdjoint, err)
			}
			if d, err = cofactorDeterminant(minor); err != nil {
				return nil, linsolveErrorf(opAdjoint, err)
			}
			if (i+j)%2 == 1 {
				d = -d
			}
			if err = cof.Set(i, j, d); err != nil {
				return nil, linsolveErrorf(opAdjoint, fmt.Errorf("cofactor (%d,%d): %w", i, j, err))
			}
		}
	}

	adj, err := matrix.Transpose(cof)
	if err != nil {
		return nil, linsolveErrorf(opAdjoint, err)
	}

	return adj, nil
}
