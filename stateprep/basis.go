// SPDX-License-Identifier: MIT

package stateprep

import (
	"fmt"

	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

const (
	opNewBasisState   = "NewBasisState"
	opBasisVector     = "BasisState.StateVector"
	opBasisDecomposed = "BasisState.Decomposition"
)

// BasisState prepares |n_0 … n_{k-1}⟩ on k wires.
type BasisState struct {
	trits []int
	wires wires.Wires
}

// NewBasisState validates trits against w.
// Errors: ErrShape (no wires, or len(n) != w.Len()), ErrInvalidTrit.
func NewBasisState(n []int, w wires.Wires) (*BasisState, error) {
	if w.Len() == 0 || len(n) != w.Len() {
		return nil, prepErrorf(opNewBasisState, fmt.Errorf("%d trits for %d wires: %w", len(n), w.Len(), ErrShape))
	}
	trits := make([]int, len(n))
	for i, v := range n {
		if v < 0 || v > 2 {
			return nil, prepErrorf(opNewBasisState, fmt.Errorf("entry %d = %d: %w", i, v, ErrInvalidTrit))
		}
		trits[i] = v
	}

	return &BasisState{trits: trits, wires: w}, nil
}

// Wires returns the wires the state is prepared on.
func (b *BasisState) Wires() wires.Wires { return b.wires }

// Trits returns a copy of the basis labels.
func (b *BasisState) Trits() []int {
	out := make([]int, len(b.trits))
	copy(out, b.trits)

	return out
}

// StateVector returns the one-hot tensor of shape (3,)^m for m = order.Len().
// Each trit sits on the axis of its wire in order; wires of order that the
// state does not act on take index 0. An empty order means Wires().
// Errors: wires.ErrWireMismatch when order omits one of the state's wires.
func (b *BasisState) StateVector(order wires.Wires) (*tensor.Tensor, error) {
	if order.Len() == 0 {
		order = b.wires
	}
	if err := b.wires.RequireSubset(order); err != nil {
		return nil, prepErrorf(opBasisVector, err)
	}
	shape := make([]int, order.Len())
	idx := make([]int, order.Len())
	for p, l := range order.Labels() {
		shape[p] = 3
		if i := b.wires.Index(l); i >= 0 {
			idx[p] = b.trits[i]
		}
	}
	out, err := tensor.Zeros(shape...)
	if err != nil {
		return nil, prepErrorf(opBasisVector, err)
	}
	if err = out.Set(1, idx...); err != nil {
		return nil, prepErrorf(opBasisVector, err)
	}

	return out, nil
}

// Decomposition returns TShift gates taking |0…0⟩ to the state: n_i shifts on wire i.
func (b *BasisState) Decomposition() ([]ops.Operator, error) {
	var out []ops.Operator
	for i, l := range b.wires.Labels() {
		for k := 0; k < b.trits[i]; k++ {
			op, err := ops.TShift(l)
			if err != nil {
				return nil, prepErrorf(opBasisDecomposed, err)
			}
			out = append(out, op)
		}
	}

	return out, nil
}
