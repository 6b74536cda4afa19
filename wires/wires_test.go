// SPDX-License-Identifier: MIT

package wires_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/wires"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		labels []any
		want   error
	}{
		{"ints", []any{0, 1, 2}, nil},
		{"mixed", []any{"a", 3, struct{ X int }{1}}, nil},
		{"empty", nil, nil},
		{"duplicate", []any{0, 1, 0}, wires.ErrDuplicateWire},
		{"nil label", []any{nil}, wires.ErrUnhashableWire},
		{"slice label", []any{[]int{1}}, wires.ErrUnhashableWire},
		{"map label", []any{map[string]int{}}, wires.ErrUnhashableWire},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w, err := wires.New(tc.labels...)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.labels), w.Len())
		})
	}
}

func TestWires_Lookup(t *testing.T) {
	t.Parallel()
	w := wires.MustNew("a", "b", 7)

	require.Equal(t, 1, w.Index("b"))
	require.Equal(t, -1, w.Index("z"))
	require.Equal(t, -1, w.Index([]int{1})) // non-comparable lookups do not panic
	require.True(t, w.Contains(7))
	require.False(t, w.Contains("7"))

	l, err := w.At(2)
	require.NoError(t, err)
	require.Equal(t, 7, l)
	_, err = w.At(3)
	require.ErrorIs(t, err, wires.ErrOutOfRange)

	require.Equal(t, "[a, b, 7]", w.String())
}

func TestWires_LabelsIsCopy(t *testing.T) {
	t.Parallel()
	w := wires.Range(3)
	labels := w.Labels()
	labels[0] = "mutated"
	require.Equal(t, 0, w.Index(0))
	if diff := cmp.Diff([]any{0, 1, 2}, w.Labels()); diff != "" {
		t.Fatalf("labels changed (-want +got):\n%s", diff)
	}
}

func TestWires_SetAlgebra(t *testing.T) {
	t.Parallel()
	order := wires.MustNew(3, 0, 2, 1)
	op := wires.MustNew(0, 1)

	require.True(t, order.ContainsAll(op))
	require.False(t, op.ContainsAll(order))
	require.NoError(t, op.RequireSubset(order))

	extra := order.Difference(op)
	if diff := cmp.Diff([]any{3, 2}, extra.Labels()); diff != "" {
		t.Fatalf("Difference order (-want +got):\n%s", diff)
	}

	err := op.RequireSubset(wires.MustNew(0, 2))
	require.ErrorIs(t, err, wires.ErrWireMismatch)
	require.Contains(t, err.Error(), "[1]")
}

func TestWires_Equal(t *testing.T) {
	t.Parallel()
	require.True(t, wires.MustNew(0, 1).Equal(wires.Range(2)))
	require.False(t, wires.MustNew(1, 0).Equal(wires.Range(2)))
	require.False(t, wires.Range(1).Equal(wires.Range(2)))
	require.True(t, wires.Wires{}.Equal(wires.Range(0)))
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { wires.MustNew(1, 1) })
}

func TestAppendKey_Unambiguous(t *testing.T) {
	t.Parallel()
	key := func(labels ...any) string { return string(wires.MustNew(labels...).AppendKey(nil)) }

	require.Equal(t, key("a", 1), key("a", 1))
	require.NotEqual(t, key(0), key("0"))
	// a label that embeds what a separator-joined encoding of the next label would look like
	require.NotEqual(t, key("x", "a\x00string=b"), key("x", "a", "b"))
	require.NotEqual(t, key("ab"), key("a", "b"))
	require.NotEqual(t, key(), key(""))
}
