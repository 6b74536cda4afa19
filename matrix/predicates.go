// SPDX-License-Identifier: MIT

// Package matrix: tolerance-aware predicates.
//
// Purpose:
//   - Compare matrices with an explicit numeric policy (Options.eps, Options.rtol).
//   - Check the structural properties gate matrices are expected to carry
//     (unitary, Hermitian, diagonal, identity).
//
// AI-Hints:
//   - Predicates return (bool, error): the error reports misuse (nil, shape),
//     the bool reports the property. Never treat an error as "false".
package matrix

import "math/cmplx"

const (
	opAllClose    = "AllClose"
	opIsUnitary   = "IsUnitary"
	opIsHermitian = "IsHermitian"
	opIsDiagonal  = "IsDiagonal"
	opIsIdentity  = "IsIdentity"
)

// AllClose reports whether |a[i,j]-b[i,j]| <= eps + rtol*|b[i,j]| for all entries.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return closeSlices(da.data, db.data, gatherOptions(opts...)), nil
}

// closeSlices compares equal-length slices under o.
func closeSlices(a, b []complex128, o Options) bool {
	for k := range a {
		if cmplx.Abs(a[k]-b[k]) > o.eps+o.rtol*cmplx.Abs(b[k]) {
			return false
		}
	}

	return true
}

// IsIdentity reports whether m is within tolerance of the identity.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	id, _ := NewIdentity(m.Rows())
	ok, err := AllClose(m, id, opts...)
	if err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}

	return ok, nil
}

// IsUnitary reports whether m·m† ≈ I.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	dag, err := ConjTranspose(m)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}
	prod, err := Mul(m, dag)
	if err != nil {
		return false, matrixErrorf(opIsUnitary, err)
	}

	return IsIdentity(prod, opts...)
}

// IsHermitian reports whether m ≈ m†.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsHermitian(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsHermitian, err)
	}
	dag, err := ConjTranspose(m)
	if err != nil {
		return false, matrixErrorf(opIsHermitian, err)
	}

	return AllClose(m, dag, opts...)
}

// IsDiagonal reports whether every off-diagonal entry is within eps of zero.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsDiagonal(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opIsDiagonal, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opIsDiagonal, err)
	}
	o := gatherOptions(opts...)
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			if i != j && cmplx.Abs(dm.data[i*dm.c+j]) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two matrices of the same shape.
// Shape mismatch and nil operands compare unequal.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, WithEpsilon(0))
	return err == nil && ok
}
