// SPDX-License-Identifier: MIT
// Package stateprep: sentinel error set.

package stateprep

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates a trit sequence whose length differs from the wire
	// count, or an amplitude array whose trailing dimension is not 3^k.
	ErrShape = errors.New("stateprep: shape does not match wires")

	// ErrNormalization indicates a batch row whose L2 norm deviates from 1.
	ErrNormalization = errors.New("stateprep: state vector must have norm 1")

	// ErrInvalidTrit indicates a basis-state entry outside {0,1,2}.
	ErrInvalidTrit = errors.New("stateprep: basis state entries must be in {0, 1, 2}")

	// ErrDecompositionUndefined indicates a preparation with no gate decomposition.
	ErrDecompositionUndefined = errors.New("stateprep: decomposition is undefined")
)

func prepErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
