// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/numlab/matrix"
)

// luDeterminant factorizes m with partial pivoting and returns det(m).
func luDeterminant(m *matrix.Dense) (float64, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return 0, err
	}
	var lu mat.LU
	lu.Factorize(g)

	return lu.Det(), nil
}

// luInverse returns m⁻¹ through gonum's LU-based inverse.
// Matrices whose determinant is within tol of zero, or that gonum reports as
// numerically singular, fail with ErrSingular.
func luInverse(m *matrix.Dense, tol float64) (*matrix.Dense, error) {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return nil, err
	}
	var lu mat.LU
	lu.Factorize(g)
	if det := lu.Det(); math.Abs(det) <= tol {
		return nil, fmt.Errorf("det=%g: %w", det, ErrSingular)
	}

	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		// mat.Condition or mat.ErrSingular: either way the result is not trustworthy.
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	return matrix.FromGonum(&inv)
}
