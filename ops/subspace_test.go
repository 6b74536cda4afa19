// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qutrit/ops"
)

func TestParseSubspace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    any
		want  ops.Subspace
		valid bool
	}{
		{"int slice", []int{0, 1}, ops.Subspace{0, 1}, true},
		{"order kept", []int{2, 0}, ops.Subspace{2, 0}, true},
		{"any slice", []any{1, 2}, ops.Subspace{1, 2}, true},
		{"array", [2]int{1, 0}, ops.Subspace{1, 0}, true},
		{"typed", ops.Subspace{0, 2}, ops.Subspace{0, 2}, true},
		{"unsigned", []uint8{2, 1}, ops.Subspace{2, 1}, true},
		{"duplicate", []int{0, 0}, ops.Subspace{}, false},
		{"out of range", []int{0, 3}, ops.Subspace{}, false},
		{"negative", []int{-1, 0}, ops.Subspace{}, false},
		{"not iterable", 0, ops.Subspace{}, false},
		{"nil", nil, ops.Subspace{}, false},
		{"string", "01", ops.Subspace{}, false},
		{"too long", []int{0, 1, 2}, ops.Subspace{}, false},
		{"too short", []int{1}, ops.Subspace{}, false},
		{"float elements", []float64{0, 1}, ops.Subspace{}, false},
		{"mixed any", []any{0, "1"}, ops.Subspace{}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ops.ParseSubspace(tc.in)
			if !tc.valid {
				require.ErrorIs(t, err, ops.ErrInvalidSubspace)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSubspace_Helpers(t *testing.T) {
	t.Parallel()
	s := ops.Subspace{2, 0}
	require.Equal(t, ops.Subspace{0, 2}, s.Sorted())
	require.Equal(t, 1, s.Unused())
	require.Equal(t, "(2, 0)", s.String())
	require.ErrorIs(t, ops.Subspace{1, 1}.Validate(), ops.ErrInvalidSubspace)
	require.ErrorIs(t, ops.Subspace{0, 5}.Validate(), ops.ErrInvalidSubspace)
}

// TestSubspaceRejectedEverywhere checks the validator for every subspace-taking family.
func TestSubspaceRejectedEverywhere(t *testing.T) {
	t.Parallel()
	ctors := map[string]func(opts ...ops.Option) (ops.Operator, error){
		"TX":    func(o ...ops.Option) (ops.Operator, error) { return ops.TX(0, o...) },
		"TY":    func(o ...ops.Option) (ops.Operator, error) { return ops.TY(0, o...) },
		"TZ":    func(o ...ops.Option) (ops.Operator, error) { return ops.TZ(0, o...) },
		"TH":    func(o ...ops.Option) (ops.Operator, error) { return ops.TH(0, o...) },
		"TS":    func(o ...ops.Option) (ops.Operator, error) { return ops.TS(0, o...) },
		"TT":    func(o ...ops.Option) (ops.Operator, error) { return ops.TT(0, o...) },
		"TCNOT": func(o ...ops.Option) (ops.Operator, error) { return ops.TCNOT(0, 1, o...) },
	}
	bad := []any{[]int{0, 0}, []int{0, 3}, 1}
	for name, ctor := range ctors {
		for _, b := range bad {
			_, err := ctor(ops.WithSubspace(b))
			require.ErrorIsf(t, err, ops.ErrInvalidSubspace, "%s with %v", name, b)
		}
	}
}

func TestNilSubspace(t *testing.T) {
	t.Parallel()
	// phase gates treat nil as "no subspace"
	s, err := ops.TS(0, ops.WithSubspace(nil))
	require.NoError(t, err)
	_, has := s.Subspace()
	require.False(t, has)

	_, err = ops.TX(0, ops.WithSubspace(nil))
	require.ErrorIs(t, err, ops.ErrInvalidSubspace)
	_, err = ops.TZ(0, ops.WithSubspace(nil))
	require.ErrorIs(t, err, ops.ErrInvalidSubspace)
}
