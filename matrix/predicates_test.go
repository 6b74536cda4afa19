// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/matrix"
)

func TestIsUnitary(t *testing.T) {
	t.Parallel()
	ok, err := matrix.IsUnitary(shift3(t))
	require.NoError(t, err)
	require.True(t, ok)

	h := 1 / math.Sqrt2
	had := MustFromRows(t, [][]complex128{{complex(h, 0), complex(h, 0)}, {complex(h, 0), complex(-h, 0)}})
	ok, err = matrix.IsUnitary(had)
	require.NoError(t, err)
	require.True(t, ok)

	two, _ := matrix.NewDiag([]complex128{2, 2})
	ok, err = matrix.IsUnitary(two)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsUnitary(MustFromRows(t, [][]complex128{{1, 0}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestIsHermitianAndDiagonal(t *testing.T) {
	t.Parallel()
	y := MustFromRows(t, [][]complex128{{0, complex(0, -1)}, {complex(0, 1), 0}})
	ok, err := matrix.IsHermitian(y)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsHermitian(shift3(t))
	require.NoError(t, err)
	require.False(t, ok)

	d, _ := matrix.NewDiag([]complex128{1, complex(0, 1), -1})
	ok, err = matrix.IsDiagonal(d)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsDiagonal(shift3(t))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Tolerances(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]complex128{{1}})
	b := MustFromRows(t, [][]complex128{{1 + 1e-6}})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, matrix.WithEpsilon(1e-5))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, matrix.WithRelTolerance(1e-5))
	require.NoError(t, err)
	require.True(t, ok)

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithRelTolerance(math.NaN()) })
}

func TestPermutationDiagonalTrace(t *testing.T) {
	t.Parallel()
	p, err := matrix.NewPermutation(3, func(i int) int { return (i + 1) % 3 })
	require.NoError(t, err)
	require.True(t, matrix.Equal(shift3(t), p))

	_, err = matrix.NewPermutation(3, func(int) int { return 0 })
	require.ErrorIs(t, err, matrix.ErrBadPermutation)

	d, _ := matrix.NewDiag([]complex128{1, 2, complex(0, 3)})
	diag, err := matrix.Diagonal(d)
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 2, complex(0, 3)}, diag)

	tr, err := matrix.Trace(d)
	require.NoError(t, err)
	require.Equal(t, complex(3, 3), tr)
}
