// SPDX-License-Identifier: MIT

package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
	"github.com/katalvlaran/qutrit/wires"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	_, err := ops.New(ops.Family(0), wires.Range(1))
	require.ErrorIs(t, err, ops.ErrUnknownFamily)
	_, err = ops.New(ops.FamilyAdd, wires.Range(1))
	require.ErrorIs(t, err, ops.ErrWireCount)
	_, err = ops.New(ops.FamilyShift, wires.Range(1), ops.WithSubspace([]int{0, 1}))
	require.ErrorIs(t, err, ops.ErrSubspaceNotSupported)
	_, err = ops.TSWAP(0, 0)
	require.ErrorIs(t, err, wires.ErrDuplicateWire)
}

func TestParseFamily(t *testing.T) {
	t.Parallel()
	for _, f := range ops.Families {
		got, err := ops.ParseFamily(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	got, err := ops.ParseFamily("tcnot")
	require.NoError(t, err)
	require.Equal(t, ops.FamilyCNOT, got)

	_, err = ops.ParseFamily("CNOT")
	require.ErrorIs(t, err, ops.ErrUnknownFamily)
	require.Equal(t, "Family(42)", ops.Family(42).String())
}

func TestAdjoint(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	self := []ops.Operator{
		must(ops.TSWAP("a", "b")),
		must(ops.TX(0, ops.WithSubspace([]int{2, 1}))),
		must(ops.TY(0)),
		must(ops.TZ(0, ops.WithSubspace([]int{1, 0}))),
		must(ops.TH(0)),
		must(ops.TCNOT(0, 1, ops.WithControlValue(0))),
	}
	for _, op := range self {
		adj, err := op.Adjoint()
		require.NoError(t, err)
		require.True(t, adj.Equal(op), op.String())

		// the adjoint descriptor really is the inverse
		m := mustMatrix(t, op)
		dag, _ := matrix.ConjTranspose(m)
		require.True(t, matrix.Equal(dag, mustMatrix(t, adj)), op.String())
	}

	undefined := []ops.Operator{
		must(ops.TS(0)),
		must(ops.TT(0, ops.WithSubspace([]int{0, 1}))),
		must(ops.TShift(0)),
		must(ops.TClock(0)),
		must(ops.TAdd(0, 1)),
	}
	for _, op := range undefined {
		_, err := op.Adjoint()
		require.ErrorIs(t, err, ops.ErrAdjointUndefined, op.String())
	}
}

func TestPow(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	shift := must(ops.TShift(0))
	x := must(ops.TX(0))
	s := must(ops.TS(0))

	tests := []struct {
		name string
		op   ops.Operator
		z    float64
		n    int
		err  error
	}{
		{"shift 0", shift, 0, 0, nil},
		{"shift 3", shift, 3, 0, nil},
		{"shift 4", shift, 4, 1, nil},
		{"shift -1", shift, -1, 2, nil},
		{"shift -4", shift, -4, 2, nil},
		{"x 3", x, 3, 1, nil},
		{"x -1", x, -1, 1, nil},
		{"x 1e18", x, 1e18, 0, nil},
		{"x half", x, 0.5, 0, ops.ErrPowUndefined},
		{"s 2", s, 2, 2, nil},
		{"s 0", s, 0, 0, nil},
		{"s -1", s, -1, 0, ops.ErrPowUndefined},
		{"s huge", s, ops.MaxPowRepeat + 1, 0, ops.ErrPowUndefined},
		{"s nan", s, math.NaN(), 0, ops.ErrPowUndefined},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			seq, err := tc.op.Pow(tc.z)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Len(t, seq, tc.n)
			for _, o := range seq {
				require.True(t, o.Equal(tc.op))
			}
		})
	}
}

func TestPowMatrix(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	shift := must(ops.TShift(0))

	inv, err := ops.PowMatrix(shift, -1)
	require.NoError(t, err)
	dag, _ := matrix.ConjTranspose(ops.ShiftMatrix())
	require.True(t, matrix.Equal(dag, inv))

	id, err := ops.PowMatrix(must(ops.TAdd(0, 1)), 6)
	require.NoError(t, err)
	require.Equal(t, 9, id.Rows())
	requireIdentity(t, id)

	cnot := must(ops.TCNOT(0, 1))
	sq, err := ops.PowMatrix(cnot, 2)
	require.NoError(t, err)
	requireIdentity(t, sq)

	_, err = ops.PowMatrix(cnot, 1.5)
	require.ErrorIs(t, err, ops.ErrPowUndefined)
}

func TestControlWires(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	require.True(t, must(ops.TAdd("c", "t")).ControlWires().Equal(wires.MustNew("c")))
	require.True(t, must(ops.TCNOT(5, 3)).ControlWires().Equal(wires.MustNew(5)))
	require.Zero(t, must(ops.TSWAP(0, 1)).ControlWires().Len())
	require.Zero(t, must(ops.TX(0)).ControlWires().Len())
}

func TestLabelNameString(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	cnot := must(ops.TCNOT(0, 1))
	require.Equal(t, "TX", cnot.Label())
	require.Equal(t, "TCNOT", cnot.Name())
	require.Equal(t, "TCNOT(wires=[0, 1], subspace=(0, 1), control_value=2)", cnot.String())

	require.Equal(t, "TSWAP", must(ops.TSWAP(0, 1)).Label())
	require.Equal(t, "TShift(wires=[q])", must(ops.TShift("q")).String())
	require.Equal(t, "TS(wires=[0])", must(ops.TS(0)).String())
}

func TestHashAndEqual(t *testing.T) {
	t.Parallel()
	must := mustOp(t)
	a := must(ops.TX(0, ops.WithSubspace([]int{2, 0})))
	b := must(ops.TX(0, ops.WithSubspace(ops.Subspace{0, 2})))
	require.True(t, a.Equal(b)) // TX sorts
	require.Equal(t, a.Hash(), b.Hash())
	require.Len(t, a.HashHex(), 64)

	z1 := must(ops.TZ(0, ops.WithSubspace([]int{2, 0})))
	z2 := must(ops.TZ(0, ops.WithSubspace([]int{0, 2})))
	require.False(t, z1.Equal(z2)) // TZ keeps order
	require.NotEqual(t, z1.Hash(), z2.Hash())

	require.NotEqual(t, must(ops.TShift(0)).Hash(), must(ops.TShift("0")).Hash())
	require.NotEqual(t,
		must(ops.TCNOT(0, 1, ops.WithControlValue(1))).Hash(),
		must(ops.TCNOT(0, 1)).Hash())
}
