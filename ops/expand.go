// SPDX-License-Identifier: MIT

// Package ops - embedding into a larger register.
//
// Purpose:
//   - ExpandMatrix lifts a canonical matrix to the full 3^m space of a wire order
//     that contains the operator's wires (any positions, any order).
//   - Apply multiplies a (batched) state tensor by that lifted matrix.
//
// Implementation:
//   - Stage 1: locate each operator wire in the order (RequireSubset first).
//   - Stage 2: for every column basis state, split its digits into the
//     operator part (sub-column c) and the spectator part (base offset).
//   - Stage 3: scatter the nonzeros of column c of the canonical matrix back
//     into rows that share the spectator digits.
//
// Complexity:
//   - Time O(3^m · 3^k), Space O(9^m) for the dense result.
package ops

import (
	"fmt"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

const (
	opExpandMatrix = "ExpandMatrix"
	opApply        = "Apply"
	opApplyMatrix  = "ApplyMatrix"
)

// pow3 returns 3^n.
func pow3(n int) int {
	out := 1
	for i := 0; i < n; i++ {
		out *= dim
	}

	return out
}

// ExpandMatrix returns the operator's matrix acting on the register ordered by
// order. An empty order means the operator's own wires.
// Errors: wires.ErrWireMismatch when order omits an operator wire; ErrUnknownFamily.
func ExpandMatrix(o Operator, order wires.Wires) (*matrix.Dense, error) {
	if order.Len() == 0 {
		order = o.wires
	}
	if err := o.wires.RequireSubset(order); err != nil {
		return nil, opsErrorf(opExpandMatrix, err)
	}
	u, err := o.Matrix()
	if err != nil {
		return nil, opsErrorf(opExpandMatrix, err)
	}

	m, k := order.Len(), o.wires.Len()
	n := pow3(m)
	stride := make([]int, m)
	for p := range stride {
		stride[p] = pow3(m - 1 - p)
	}
	// strideOf[i] is the stride in the full register of operator wire i.
	strideOf := make([]int, k)
	for i, l := range o.wires.Labels() {
		strideOf[i] = stride[order.Index(l)]
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, opsErrorf(opExpandMatrix, err)
	}
	sub := pow3(k)
	var (
		col, row, r, i, c, base, digit, rem int
		v                                   complex128
	)
	for col = 0; col < n; col++ {
		c, base = 0, col
		for i = 0; i < k; i++ {
			digit = (col / strideOf[i]) % dim
			c = c*dim + digit
			base -= digit * strideOf[i]
		}
		for r = 0; r < sub; r++ {
			if v, err = u.At(r, c); err != nil {
				return nil, opsErrorf(opExpandMatrix, err)
			}
			if v == 0 {
				continue
			}
			row, rem = base, r
			for i = k - 1; i >= 0; i-- {
				row += (rem % dim) * strideOf[i]
				rem /= dim
			}
			if err = out.Set(row, col, v); err != nil {
				return nil, opsErrorf(opExpandMatrix, err)
			}
		}
	}

	return out, nil
}

// Apply returns ExpandMatrix(o, order)·state for a state of shape (3,)^m or
// (B, 3, …, 3). Abstract states yield an abstract result of the same shape.
// Errors: tensor.ErrShape, wires.ErrWireMismatch.
func Apply(o Operator, state *tensor.Tensor, order wires.Wires) (*tensor.Tensor, error) {
	if state == nil {
		return nil, opsErrorf(opApply, tensor.ErrNilTensor)
	}
	if order.Len() == 0 {
		order = o.wires
	}
	shape := state.Shape()
	m := order.Len()
	lead := len(shape) - m
	if lead != 0 && lead != 1 {
		return nil, opsErrorf(opApply, fmt.Errorf("state %v for %d wires: %w", shape, m, tensor.ErrShape))
	}
	for _, d := range shape[lead:] {
		if d != dim {
			return nil, opsErrorf(opApply, fmt.Errorf("state %v for %d wires: %w", shape, m, tensor.ErrShape))
		}
	}
	u, err := ExpandMatrix(o, order)
	if err != nil {
		return nil, opsErrorf(opApply, err)
	}
	out, err := ApplyMatrix(u, state)
	if err != nil {
		return nil, opsErrorf(opApply, err)
	}

	return out, nil
}

// ApplyMatrix multiplies every trailing block of u.Cols() amplitudes of state
// by u, so a batch axis (or any leading axes) is carried through unchanged.
// The result keeps state's shape; abstract states yield an abstract result.
// Errors: ErrNonSquare from matrix, tensor.ErrShape when the state size is
// not a multiple of u.Cols().
func ApplyMatrix(u *matrix.Dense, state *tensor.Tensor) (*tensor.Tensor, error) {
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, opsErrorf(opApplyMatrix, err)
	}
	if state == nil {
		return nil, opsErrorf(opApplyMatrix, tensor.ErrNilTensor)
	}
	n := u.Cols()
	if state.Size()%n != 0 {
		return nil, opsErrorf(opApplyMatrix,
			fmt.Errorf("state of %d amplitudes for a %d-dim matrix: %w", state.Size(), n, tensor.ErrShape))
	}
	if state.IsAbstract() {
		return tensor.Placeholder(state.Shape()...)
	}

	flat := state.Data()
	out := make([]complex128, 0, len(flat))
	for off := 0; off < len(flat); off += n {
		y, err := matrix.MatVec(u, flat[off:off+n])
		if err != nil {
			return nil, opsErrorf(opApplyMatrix, err)
		}
		out = append(out, y...)
	}

	return tensor.New(out, state.Shape()...)
}
