// SPDX-License-Identifier: MIT
// Package wires: sentinel error set.

package wires

import "errors"

var (
	// ErrDuplicateWire indicates a label that appears more than once.
	ErrDuplicateWire = errors.New("wires: duplicate wire label")

	// ErrUnhashableWire indicates a nil label or one whose dynamic value is not comparable.
	ErrUnhashableWire = errors.New("wires: wire label is not comparable")

	// ErrWireMismatch indicates a requested wire order that does not contain
	// every wire an operator acts on.
	ErrWireMismatch = errors.New("wires: wire order does not contain all operator wires")

	// ErrOutOfRange indicates a positional index outside [0, Len()).
	ErrOutOfRange = errors.New("wires: index out of range")
)
