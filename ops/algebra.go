// SPDX-License-Identifier: MIT

// Package ops - operator algebra: adjoint, integer powers, control wires.
package ops

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/wires"
)

const (
	opAdjoint   = "Adjoint"
	opPow       = "Pow"
	opPowMatrix = "PowMatrix"
)

// Adjoint returns the inverse descriptor.
// The involutions (TSWAP, TX, TY, TZ, TH, TCNOT) return an equal descriptor.
// Errors: ErrAdjointUndefined for TS, TT and the period-3 families, whose
// inverse is not a single descriptor of the same family.
func (o Operator) Adjoint() (Operator, error) {
	switch o.family {
	case FamilySWAP, FamilyX, FamilyY, FamilyZ, FamilyH, FamilyCNOT:
		return o, nil
	case FamilyShift, FamilyClock, FamilyAdd, FamilyS, FamilyT:
		return Operator{}, opsErrorf(opAdjoint, fmt.Errorf("%v: %w", o.family, ErrAdjointUndefined))
	default:
		return Operator{}, opsErrorf(opAdjoint, ErrUnknownFamily)
	}
}

// MaxPowRepeat bounds the sequence length Pow expands to for families without a period.
const MaxPowRepeat = 1 << 16

// floorMod returns a mod n in [0, n) for n > 0.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// Pow returns the sequence of descriptors whose product is o^z, applied first to last.
// MAIN DESCRIPTION:
//   - Integer z is reduced modulo the family period (floor semantics, so -1 ≡ period-1).
//   - Then: 0 → empty sequence (identity); n > 0 → n copies of o.
//
// Errors:
//   - ErrPowUndefined for non-integer z, and for negative z (or z above
//     MaxPowRepeat) on families without a period (TS, TT).
func (o Operator) Pow(z float64) ([]Operator, error) {
	if !o.family.Valid() {
		return nil, opsErrorf(opPow, ErrUnknownFamily)
	}
	if math.IsNaN(z) || math.IsInf(z, 0) || z != math.Trunc(z) {
		return nil, opsErrorf(opPow, fmt.Errorf("%v^%v: %w", o.family, z, ErrPowUndefined))
	}
	var n int
	if p := o.family.Period(); p > 0 {
		n = floorMod(int(math.Mod(z, float64(p))), p)
	} else {
		if z < 0 || z > MaxPowRepeat {
			return nil, opsErrorf(opPow, fmt.Errorf("%v^%v: %w", o.family, z, ErrPowUndefined))
		}
		n = int(z)
	}
	out := make([]Operator, n)
	for i := range out {
		out[i] = o
	}

	return out, nil
}

// PowMatrix returns the canonical matrix of o^z: the product of the Pow
// sequence, or the identity for an empty one.
// Errors: as Pow.
func PowMatrix(o Operator, z float64) (*matrix.Dense, error) {
	seq, err := o.Pow(z)
	if err != nil {
		return nil, opsErrorf(opPowMatrix, err)
	}
	size := 1
	for i := 0; i < o.wires.Len(); i++ {
		size *= dim
	}
	acc, err := matrix.NewIdentity(size)
	if err != nil {
		return nil, opsErrorf(opPowMatrix, err)
	}
	for _, step := range seq {
		m, err := step.Matrix()
		if err != nil {
			return nil, opsErrorf(opPowMatrix, err)
		}
		if acc, err = matrix.Mul(m, acc); err != nil {
			return nil, opsErrorf(opPowMatrix, err)
		}
	}

	return acc, nil
}

// ControlWires returns the first wire for TAdd and TCNOT, otherwise the empty sequence.
func (o Operator) ControlWires() wires.Wires {
	switch o.family {
	case FamilyAdd, FamilyCNOT:
		first, err := o.wires.At(0)
		if err != nil {
			return wires.Wires{}
		}
		return wires.MustNew(first)
	default:
		return wires.Wires{}
	}
}
