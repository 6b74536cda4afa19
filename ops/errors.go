// SPDX-License-Identifier: MIT
// Package ops: sentinel error set.
// Every exported function returns these sentinels wrapped with context via %w;
// callers branch with errors.Is.

package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSubspace indicates a subspace that is not a sequence of two
	// distinct trits from {0,1,2}.
	ErrInvalidSubspace = errors.New("ops: subspace must be a sequence with two unique elements from the set {0, 1, 2}")

	// ErrAdjointUndefined indicates a family with no adjoint descriptor.
	ErrAdjointUndefined = errors.New("ops: adjoint is undefined for this operator")

	// ErrPowUndefined indicates an exponent the operator cannot be raised to
	// (non-integer, or negative for families without a period).
	ErrPowUndefined = errors.New("ops: power is undefined for this operator")

	// ErrWireCount indicates a wire sequence whose length differs from the family's arity.
	ErrWireCount = errors.New("ops: wrong number of wires")

	// ErrInvalidControlValue indicates a control value outside {0,1,2}, or a
	// control value on a family that has none.
	ErrInvalidControlValue = errors.New("ops: invalid control value")

	// ErrUnknownFamily indicates an unrecognised gate family tag or name.
	ErrUnknownFamily = errors.New("ops: unknown gate family")

	// ErrSubspaceNotSupported indicates a subspace passed to a family that takes none.
	ErrSubspaceNotSupported = errors.New("ops: family does not take a subspace")
)

// opsErrorf wraps err with an operation tag, preserving the sentinel via %w.
func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
