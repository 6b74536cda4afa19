// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition/subtraction, products, transposes, Kronecker products
// and integer powers. All functions validate fail-fast and never mutate inputs.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer; any other
//     Matrix is first materialised through asDense (At-based copy).
//   - Errors are wrapped via matrixErrorf with the op* tags below.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opScale         = "Scale"
	opKron          = "Kron"
	opMatVec        = "MatVec"
	opPow           = "Pow"
	opAsDense       = "asDense"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise an At-based copy.
// Complexity: O(1) fast path, O(r*c) fallback.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, _ := NewDense(da.r, da.c) // shape already validated
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b.
// MAIN DESCRIPTION:
//   - Standard triple loop in i→k→j order over flat buffers.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: materialise operands as *Dense (no copy for *Dense inputs).
//   - Stage 3: accumulate rows; skip zero a[i,k] (gate matrices are mostly zeros).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, _ := NewDense(da.r, db.c)
	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * da.c
		rowOffsetR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// transposeInto copies mᵀ (optionally conjugated) into a fresh Dense.
func transposeInto(m Matrix, conjugate bool, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, _ := NewDense(dm.c, dm.r)
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			v = dm.data[i*dm.c+j]
			if conjugate {
				v = complex(real(v), -imag(v))
			}
			res.data[j*dm.r+i] = v
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) { return transposeInto(m, false, opTranspose) }

// ConjTranspose returns the conjugate transpose m† as a new matrix.
// For unitary gate matrices m† is the inverse.
// Complexity: O(r*c).
func ConjTranspose(m Matrix) (*Dense, error) { return transposeInto(m, true, opConjTranspose) }

// Scale returns alpha·m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := dm.clone()
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Kron returns the Kronecker product a ⊗ b of shape (ar*br)×(ac*bc).
// The left operand indexes the most significant block, matching the
// big-endian wire order used for state vectors (index = 3·i + j).
// Complexity: O(ar*ac*br*bc).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := da.r*db.r, da.c*db.c
	res, _ := NewDense(rows, cols)
	var (
		i, j, p, q int
		av         complex128
	)
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			if av == 0 {
				continue
			}
			for p = 0; p < db.r; p++ {
				for q = 0; q < db.c; q++ {
					res.data[(i*db.r+p)*cols+j*db.c+q] = av * db.data[p*db.c+q]
				}
			}
		}
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, dm.r)
	var i, j int
	for i = 0; i < dm.r; i++ {
		var sum complex128
		for j = 0; j < dm.c; j++ {
			sum += dm.data[i*dm.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Pow returns mⁿ for n ≥ 0 by repeated squaring; m⁰ is the identity.
// MAIN DESCRIPTION:
//   - Generic exponentiation by composition, used for period checks (S³ = I)
//     and to materialise integer gate powers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativeExponent.
//
// Complexity:
//   - O(log n) products, each O(d³).
func Pow(m Matrix, n int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matrixErrorf(opPow, ErrNegativeExponent)
	}
	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	result, _ := NewIdentity(base.r)
	base = base.clone()
	for n > 0 {
		if n&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		n >>= 1
		if n > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}
