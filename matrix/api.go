// SPDX-License-Identifier: MIT

// Package matrix: constructors and read-only helpers for the shapes that
// gate generators build (identity, diagonal, permutation, literal rows).
package matrix

import "fmt"

const (
	opNewIdentity    = "NewIdentity"
	opNewDiag        = "NewDiag"
	opNewFromRows    = "NewFromRows"
	opNewPermutation = "NewPermutation"
	opDiagonal       = "Diagonal"
)

// NewIdentity returns the n×n identity.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiag returns a square matrix with d on the main diagonal.
// Errors: ErrInvalidDimensions for an empty d, ErrNaNInf for non-finite entries.
func NewDiag(d []complex128) (*Dense, error) {
	m, err := NewDense(len(d), len(d))
	if err != nil {
		return nil, matrixErrorf(opNewDiag, err)
	}
	for i, v := range d {
		if err = m.Set(i, i, v); err != nil {
			return nil, matrixErrorf(opNewDiag, err)
		}
	}

	return m, nil
}

// NewFromRows builds a Dense from literal rows; all rows must share a length.
// Errors: ErrInvalidDimensions (no rows / empty row), ErrDimensionMismatch (ragged),
// ErrNaNInf.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opNewFromRows, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opNewFromRows, err)
			}
		}
	}

	return m, nil
}

// NewPermutation returns the n×n permutation matrix P with P[f(i), i] = 1,
// i.e. P maps basis vector |i⟩ to |f(i)⟩.
// Errors: ErrInvalidDimensions, ErrBadPermutation when f is not a bijection on [0,n).
// Complexity: O(n²) for the zero fill, O(n) for the mapping.
func NewPermutation(n int, f func(i int) int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opNewPermutation, err)
	}
	seen := make([]bool, n)
	var i, dst int
	for i = 0; i < n; i++ {
		dst = f(i)
		if dst < 0 || dst >= n || seen[dst] {
			return nil, matrixErrorf(opNewPermutation, fmt.Errorf("f(%d)=%d: %w", i, dst, ErrBadPermutation))
		}
		seen[dst] = true
		m.data[dst*n+i] = 1
	}

	return m, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Diagonal(m Matrix) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	out := make([]complex128, dm.r)
	for i := range out {
		out[i] = dm.data[i*dm.c+i]
	}

	return out, nil
}

// Trace returns the sum of the main diagonal.
func Trace(m Matrix) (complex128, error) {
	d, err := Diagonal(m)
	if err != nil {
		return 0, err
	}
	var sum complex128
	for _, v := range d {
		sum += v
	}

	return sum, nil
}
