// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/tensor"
	"github.com/katalvlaran/qutrit/wires"
)

func TestExpandMatrix_SingleWire(t *testing.T) {
	t.Parallel()
	op := mustOp(t)(ops.TShift(1))
	id3, _ := matrix.NewIdentity(3)

	got, err := ops.ExpandMatrix(op, wires.Range(2))
	require.NoError(t, err)
	want, _ := matrix.Kron(id3, ops.ShiftMatrix())
	require.True(t, matrix.Equal(want, got))

	got, err = ops.ExpandMatrix(op, wires.MustNew(1, 0))
	require.NoError(t, err)
	want, _ = matrix.Kron(ops.ShiftMatrix(), id3)
	require.True(t, matrix.Equal(want, got))
}

func TestExpandMatrix_ReversedTwoWire(t *testing.T) {
	t.Parallel()
	// TAdd on (1, 0) seen from order (0, 1) is SWAP·Add·SWAP
	op := mustOp(t)(ops.TAdd(1, 0))
	got, err := ops.ExpandMatrix(op, wires.Range(2))
	require.NoError(t, err)

	sw := ops.SWAPMatrix()
	tmp, _ := matrix.Mul(ops.AddMatrix(), sw)
	want, _ := matrix.Mul(sw, tmp)
	require.True(t, matrix.Equal(want, got))
}

func TestExpandMatrix_OwnOrderAndMismatch(t *testing.T) {
	t.Parallel()
	op := mustOp(t)(ops.TCNOT("a", "b"))
	got, err := ops.ExpandMatrix(op, wires.Wires{})
	require.NoError(t, err)
	require.True(t, matrix.Equal(mustMatrix(t, op), got))

	_, err = ops.ExpandMatrix(op, wires.MustNew("a", "c"))
	require.ErrorIs(t, err, wires.ErrWireMismatch)
}

func TestExpandMatrix_Unitary(t *testing.T) {
	t.Parallel()
	op := mustOp(t)(ops.TH(2, ops.WithSubspace([]int{1, 2})))
	got, err := ops.ExpandMatrix(op, wires.MustNew(0, 2, 1))
	require.NoError(t, err)
	require.Equal(t, 27, got.Rows())
	ok, err := matrix.IsUnitary(got)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestApply(t *testing.T) {
	t.Parallel()
	// |2,0⟩ on wires (0,1); TCNOT(0,1) flips the target
	state, _ := tensor.Zeros(3, 3)
	require.NoError(t, state.Set(1, 2, 0))

	out, err := ops.Apply(mustOp(t)(ops.TCNOT(0, 1)), state, wires.Range(2))
	require.NoError(t, err)
	v, err := out.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)

	// batched: two rows, shift on wire 0
	batch, _ := tensor.New([]complex128{
		1, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 1,
	}, 2, 3, 3)
	out, err = ops.Apply(mustOp(t)(ops.TShift(0)), batch, wires.Range(2))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 3}, out.Shape())
	v, _ = out.At(0, 1, 0)
	require.Equal(t, complex128(1), v)
	v, _ = out.At(1, 0, 2)
	require.Equal(t, complex128(1), v)

	bad, _ := tensor.Zeros(3, 2)
	_, err = ops.Apply(mustOp(t)(ops.TShift(0)), bad, wires.Range(2))
	require.ErrorIs(t, err, tensor.ErrShape)

	abs, _ := tensor.Placeholder(3, 3)
	out, err = ops.Apply(mustOp(t)(ops.TShift(0)), abs, wires.Range(2))
	require.NoError(t, err)
	require.True(t, out.IsAbstract())
}

func TestApplyMatrix(t *testing.T) {
	t.Parallel()
	// leading axes are carried through: three rows of a single-wire state
	rows, _ := tensor.New([]complex128{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, 3, 3)
	out, err := ops.ApplyMatrix(ops.ShiftMatrix(), rows)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, out.Shape())
	for r, want := range []int{1, 2, 0} {
		v, err := out.At(r, want)
		require.NoError(t, err)
		require.Equal(t, complex128(1), v)
	}

	odd, _ := tensor.Zeros(4)
	_, err = ops.ApplyMatrix(ops.ShiftMatrix(), odd)
	require.ErrorIs(t, err, tensor.ErrShape)

	wide, _ := matrix.NewDense(3, 9)
	_, err = ops.ApplyMatrix(wide, rows)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	abs, _ := tensor.Placeholder(2, 9)
	out, err = ops.ApplyMatrix(ops.SWAPMatrix(), abs)
	require.NoError(t, err)
	require.True(t, out.IsAbstract())
	require.Equal(t, []int{2, 9}, out.Shape())
}
