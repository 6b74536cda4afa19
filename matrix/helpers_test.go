// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers shared by the kernel tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the At-based
// fallback path in kernels that special-case *Dense.
type hide struct{ matrix.Matrix }

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireClose asserts AllClose under the default tolerance.
func requireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}

// shift3 is the cyclic |j⟩→|j+1 mod 3⟩ matrix.
func shift3(t *testing.T) *matrix.Dense {
	return MustFromRows(t, [][]complex128{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	})
}
