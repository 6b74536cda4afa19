// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates a shape that is invalid or incompatible with the data.
	ErrShape = errors.New("tensor: invalid or incompatible shape")

	// ErrAxes indicates an axis list that is not a permutation of [0, NDim).
	ErrAxes = errors.New("tensor: axes are not a permutation")

	// ErrAbstract indicates a value read on a shape-only tensor.
	ErrAbstract = errors.New("tensor: abstract tensor has no values")

	// ErrOutOfRange indicates an element index outside the shape.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrNilTensor indicates a nil *Tensor argument.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// tensorErrorf wraps err with an operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
