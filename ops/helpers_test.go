// SPDX-License-Identifier: MIT

package ops_test

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/matrix"
	"github.com/katalvlaran/qutrit/ops"
)

const tol = 1e-9

// approx compares complex values within tol.
var approx = cmp.Comparer(func(a, b complex128) bool { return cmplx.Abs(a-b) < tol })

// allSubspaces enumerates every ordered pair of distinct trits.
var allSubspaces = []ops.Subspace{{0, 1}, {1, 0}, {0, 2}, {2, 0}, {1, 2}, {2, 1}}

func mustOp(t *testing.T) func(ops.Operator, error) ops.Operator {
	return func(o ops.Operator, err error) ops.Operator {
		t.Helper()
		require.NoError(t, err)
		return o
	}
}

func mustMatrix(t *testing.T, o ops.Operator) *matrix.Dense {
	t.Helper()
	m, err := o.Matrix()
	require.NoError(t, err)

	return m
}

func requireIdentity(t *testing.T, m matrix.Matrix) {
	t.Helper()
	ok, err := matrix.IsIdentity(m)
	require.NoError(t, err)
	require.Truef(t, ok, "not identity:\n%v", m)
}

func at(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
