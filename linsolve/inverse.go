// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// Inverse returns m⁻¹.
//
// With the default Cofactor strategy the result is adj(m)/det(m), divided
// element-wise. With WithStrategy(LU) gonum's LU-based inverse is used.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare: shape.
//   - ErrSingular: |det(m)| <= singular tolerance (default: exactly zero).
//   - ErrOptionViolation: invalid options.
func Inverse(m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, linsolveErrorf(opInverse, err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, linsolveErrorf(opInverse, err)
	}

	if o.Strategy == LU {
		inv, err := luInverse(m, o.SingularTolerance)
		if err != nil {
			return nil, linsolveErrorf(opInverse, err)
		}
		return inv, nil
	}

	det, err := cofactorDeterminant(m)
	if err != nil {
		return nil, linsolveErrorf(opInverse, err)
	}
	if math.Abs(det) <= o.SingularTolerance {
		return nil, linsolveErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	adj, err := Adjoint(m)
	if err != nil {
		return nil, linsolveErrorf(opInverse, err)
	}

	rows := adj.ToRows()
	for i := range rows {
		for j := range rows[i] {
			rows[i][j] /= det
		}
	}
	inv, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, linsolveErrorf(opInverse, err)
	}

	return inv, nil
}
