// SPDX-License-Identifier: MIT

// Package stateprep - explicit amplitude vectors.
//
// Purpose:
//   - Accept (3^k,) or (B, 3^k) amplitude tensors and check shape and norm once.
//   - Re-project onto another wire order: reshape, pad extra wires, transpose.
//
// Implementation (StateVector):
//   - Stage 1: reshape to (B?, 3, …, 3); return it if order equals Wires().
//   - Stage 2: require order ⊇ Wires() (wires.ErrWireMismatch otherwise).
//   - Stage 3: for each extra wire, in order of appearance in the target, stack a
//     trailing axis holding (amplitude, 0, 0), i.e. the extra wire sits in |0⟩.
//   - Stage 4: transpose so axis p carries order[p]; a batch axis stays first.
//
// AI-Hints:
//   - Abstract (shape-only) tensors skip the norm check and stay abstract through
//     every stage, so projection still reports the right shape.
package stateprep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

const (
	opNewStateVector = "NewStateVector"
	opProject        = "StateVector.StateVector"
)

// StateVector prepares an explicit amplitude vector on k wires.
type StateVector struct {
	state   *tensor.Tensor // as supplied: (3^k,) or (B, 3^k)
	wires   wires.Wires
	batched bool
}

// NewStateVector validates state against w.
// Errors: ErrShape (rank not 1 or 2, trailing dim != 3^k), ErrNormalization.
func NewStateVector(state *tensor.Tensor, w wires.Wires, opts ...Option) (*StateVector, error) {
	if state == nil {
		return nil, prepErrorf(opNewStateVector, tensor.ErrNilTensor)
	}
	if w.Len() == 0 {
		return nil, prepErrorf(opNewStateVector, fmt.Errorf("no wires: %w", ErrShape))
	}
	shape := state.Shape()
	if len(shape) != 1 && len(shape) != 2 {
		return nil, prepErrorf(opNewStateVector, fmt.Errorf("rank %d: %w", len(shape), ErrShape))
	}
	want := 1
	for i := 0; i < w.Len(); i++ {
		want *= 3
	}
	if got := shape[len(shape)-1]; got != want {
		return nil, prepErrorf(opNewStateVector,
			fmt.Errorf("state vector must have shape (%d,) or (batch_size, %d), got %v: %w", want, want, shape, ErrShape))
	}

	if !state.IsAbstract() {
		o := gatherOptions(opts...)
		norms, err := state.NormLast()
		if err != nil {
			return nil, prepErrorf(opNewStateVector, err)
		}
		for row, n := range norms {
			if !(math.Abs(n-1) <= o.tol) { // NaN fails
				return nil, prepErrorf(opNewStateVector, fmt.Errorf("row %d has norm %g: %w", row, n, ErrNormalization))
			}
		}
	}
	// keep a private copy; Reshape never aliases
	own, err := state.Reshape(shape...)
	if err != nil {
		return nil, prepErrorf(opNewStateVector, err)
	}

	return &StateVector{state: own, wires: w, batched: len(shape) == 2}, nil
}

// Wires returns the wires the vector is defined on.
func (s *StateVector) Wires() wires.Wires { return s.wires }

// BatchSize returns the leading batch extent, or 0 for an unbatched vector.
func (s *StateVector) BatchSize() int {
	if !s.batched {
		return 0
	}

	return s.state.Shape()[0]
}

// StateVector returns the amplitudes as a (B?, 3, …, 3) tensor whose data axes
// follow order. An empty order means Wires().
// Errors: wires.ErrWireMismatch.
func (s *StateVector) StateVector(order wires.Wires) (*tensor.Tensor, error) {
	k := s.wires.Len()
	shape := make([]int, 0, k+1)
	if s.batched {
		shape = append(shape, s.BatchSize())
	}
	for i := 0; i < k; i++ {
		shape = append(shape, 3)
	}
	t, err := s.state.Reshape(shape...)
	if err != nil {
		return nil, prepErrorf(opProject, err)
	}
	if order.Len() == 0 || order.Equal(s.wires) {
		return t, nil
	}
	if err = s.wires.RequireSubset(order); err != nil {
		return nil, prepErrorf(opProject, err)
	}

	extra := order.Difference(s.wires)
	current := append(s.wires.Labels(), extra.Labels()...)
	for i := 0; i < extra.Len(); i++ {
		zeros := tensor.ZerosLike(t)
		if t, err = tensor.StackLast(t, zeros, zeros); err != nil {
			return nil, prepErrorf(opProject, err)
		}
	}

	pos := make(map[any]int, len(current))
	for i, l := range current {
		pos[l] = i
	}
	axes := make([]int, 0, order.Len()+1)
	shift := 0
	if s.batched {
		axes = append(axes, 0)
		shift = 1
	}
	for _, l := range order.Labels() {
		axes = append(axes, pos[l]+shift)
	}
	if t, err = t.Transpose(axes...); err != nil {
		return nil, prepErrorf(opProject, err)
	}

	return t, nil
}

// Decomposition is not defined for arbitrary amplitude vectors.
func (s *StateVector) Decomposition() ([]ops.Operator, error) {
	return nil, prepErrorf("StateVector.Decomposition", ErrDecompositionUndefined)
}
