// SPDX-License-Identifier: MIT

package ops

// DefaultControlValue is the TCNOT control state: the target flips when the
// control wire is |2⟩.
const DefaultControlValue = 2

// Option configures an Operator at construction. Values are validated by New,
// not by the setter, so an invalid option surfaces as an error rather than a panic.
type Option func(*settings)

type settings struct {
	subspace    any
	hasSubspace bool
	control     int
	hasControl  bool
}

// WithSubspace restricts a gate to a two-level slice. v may be any slice or
// array of two integers (a Subspace, []int, []any decoded from YAML, ...).
// For TS and TT a nil v means "no subspace".
func WithSubspace(v any) Option {
	return func(s *settings) {
		s.subspace = v
		s.hasSubspace = true
	}
}

// WithControlValue sets the TCNOT control state.
func WithControlValue(c int) Option {
	return func(s *settings) {
		s.control = c
		s.hasControl = true
	}
}
