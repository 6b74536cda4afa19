// SPDX-License-Identifier: MIT

// Package ops - canonical matrix generators.
//
// Purpose:
//   - One pure function per family returning a fresh *matrix.Dense; callers may
//     mutate the result freely.
//   - Subspace-parametrised generators validate before allocating, so no
//     partial matrix is ever returned.
//
// Conventions:
//   - Permutation gates are built with matrix.NewPermutation: column k holds a
//     single 1 in row f(k), i.e. |k⟩ ↦ |f(k)⟩.
//   - Two-wire gates use index 3·i + j for |i,j⟩ (first wire most significant).
//
// AI-Hints:
//   - TZ, TS and TT read the subspace in caller order; do not pass Sorted() to them.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qutrit/matrix"
)

const (
	opShiftMatrix = "ShiftMatrix"
	opXMatrix     = "XMatrix"
	opYMatrix     = "YMatrix"
	opZMatrix     = "ZMatrix"
	opHMatrix     = "HMatrix"
	opCNOTMatrix  = "CNOTMatrix"
	opSMatrix     = "SMatrix"
	opTMatrix     = "TMatrix"
)

// mustPermutation panics only on a programming error in a fixed index map.
func mustPermutation(n int, f func(int) int) *matrix.Dense {
	m, err := matrix.NewPermutation(n, f)
	if err != nil {
		panic(err)
	}

	return m
}

// ShiftMatrix returns the cyclic shift |i⟩ ↦ |i+1 mod 3⟩.
func ShiftMatrix() *matrix.Dense {
	return mustPermutation(dim, func(i int) int { return (i + 1) % dim })
}

// ClockMatrix returns diag(1, ω, ω²).
func ClockMatrix() *matrix.Dense {
	m, _ := matrix.NewDiag([]complex128{1, Omega, omega2})
	return m
}

// SWAPMatrix exchanges the two registers: |i,j⟩ ↦ |j,i⟩.
func SWAPMatrix() *matrix.Dense {
	return mustPermutation(dim*dim, func(k int) int { return dim*(k%dim) + k/dim })
}

// AddMatrix adds the first register to the second: |i,j⟩ ↦ |i, i+j mod 3⟩.
func AddMatrix() *matrix.Dense {
	return mustPermutation(dim*dim, func(k int) int {
		i, j := k/dim, k%dim
		return dim*i + (i+j)%dim
	})
}

// XMatrix swaps the two subspace states and fixes the third.
// Errors: ErrInvalidSubspace.
func XMatrix(s Subspace) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, opsErrorf(opXMatrix, err)
	}
	s = s.Sorted()

	return mustPermutation(dim, func(i int) int {
		switch i {
		case s[0]:
			return s[1]
		case s[1]:
			return s[0]
		default:
			return i
		}
	}), nil
}

// YMatrix places -i at (a,b) and +i at (b,a) for the sorted pair (a,b).
// Errors: ErrInvalidSubspace.
func YMatrix(s Subspace) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, opsErrorf(opYMatrix, err)
	}
	s = s.Sorted()
	m, _ := matrix.NewDense(dim, dim)
	_ = m.Set(s.Unused(), s.Unused(), 1)
	_ = m.Set(s[0], s[1], complex(0, -1))
	_ = m.Set(s[1], s[0], complex(0, 1))

	return m, nil
}

// ZMatrix is the identity with -1 at the second listed subspace index.
// Errors: ErrInvalidSubspace.
func ZMatrix(s Subspace) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, opsErrorf(opZMatrix, err)
	}
	m, _ := matrix.NewIdentity(dim)
	_ = m.Set(s[1], s[1], -1)

	return m, nil
}

// HMatrix is the subspace Hadamard: √2 on the unused state, [[1,1],[1,-1]] on
// the pair, everything divided by √2.
// Errors: ErrInvalidSubspace.
func HMatrix(s Subspace) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, opsErrorf(opHMatrix, err)
	}
	s = s.Sorted()
	m, _ := matrix.NewDense(dim, dim)
	_ = m.Set(s.Unused(), s.Unused(), math.Sqrt2)
	_ = m.Set(s[0], s[0], 1)
	_ = m.Set(s[0], s[1], 1)
	_ = m.Set(s[1], s[0], 1)
	_ = m.Set(s[1], s[1], -1)

	return matrix.Scale(m, complex(1/math.Sqrt2, 0))
}

// CNOTMatrix is the 9×9 identity whose diagonal block at control is replaced by XMatrix(s).
// Errors: ErrInvalidSubspace, ErrInvalidControlValue.
func CNOTMatrix(s Subspace, control int) (*matrix.Dense, error) {
	if control < 0 || control >= dim {
		return nil, opsErrorf(opCNOTMatrix, fmt.Errorf("control %d: %w", control, ErrInvalidControlValue))
	}
	x, err := XMatrix(s)
	if err != nil {
		return nil, opsErrorf(opCNOTMatrix, err)
	}
	m, _ := matrix.NewIdentity(dim * dim)
	if err = m.SetBlock(dim*control, dim*control, x); err != nil {
		return nil, opsErrorf(opCNOTMatrix, err)
	}

	return m, nil
}

// SMatrix returns ζ⁸·diag(1, 1, ω) when s is nil, otherwise the identity with
// i at the second listed subspace index.
// Errors: ErrInvalidSubspace.
func SMatrix(s *Subspace) (*matrix.Dense, error) {
	if s == nil {
		return matrix.NewDiag([]complex128{zeta8, zeta8, zeta8 * Omega})
	}

	return phaseOnSecond(opSMatrix, *s, complex(0, 1))
}

// TMatrix returns diag(1, ζ, ζ⁸) when s is nil, otherwise the identity with
// e^{iπ/4} at the second listed subspace index.
// Errors: ErrInvalidSubspace.
func TMatrix(s *Subspace) (*matrix.Dense, error) {
	if s == nil {
		return matrix.NewDiag([]complex128{1, Zeta, zeta8})
	}

	return phaseOnSecond(opTMatrix, *s, eighth)
}

// phaseOnSecond builds the subspace branch shared by TS and TT.
func phaseOnSecond(tag string, s Subspace, phase complex128) (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, opsErrorf(tag, err)
	}
	m, _ := matrix.NewIdentity(dim)
	_ = m.Set(s[1], s[1], phase)

	return m, nil
}
