// SPDX-License-Identifier: MIT

// Package ops - subspace validation.
//
// Purpose:
//   - Accept loosely typed input (slices, arrays, []any from YAML) and turn it
//     into a typed Subspace, or fail with ErrInvalidSubspace.
//
// Implementation stages (fixed order, first failure wins):
//  1. iterable: slice or array kind (a bare integer or string is rejected);
//  2. length exactly 2;
//  3. each element an integer in {0,1,2};
//  4. elements distinct.
package ops

import (
	"fmt"
	"reflect"
)

// Subspace is an ordered pair of distinct trits selecting a two-level slice
// of a single qutrit.
type Subspace [2]int

// ParseSubspace validates v and returns it as a Subspace in input order.
// Errors: ErrInvalidSubspace (with the failing stage in the message).
// Complexity: O(1).
func ParseSubspace(v any) (Subspace, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Subspace{}, fmt.Errorf("ops: subspace %v is not a sequence: %w", v, ErrInvalidSubspace)
	}
	if rv.Len() != 2 {
		return Subspace{}, fmt.Errorf("ops: subspace %v has %d elements: %w", v, rv.Len(), ErrInvalidSubspace)
	}
	var s Subspace
	for i := 0; i < 2; i++ {
		t, ok := tritOf(rv.Index(i))
		if !ok {
			return Subspace{}, fmt.Errorf("ops: subspace %v element %d: %w", v, i, ErrInvalidSubspace)
		}
		s[i] = t
	}
	if s[0] == s[1] {
		return Subspace{}, fmt.Errorf("ops: subspace %v repeats %d: %w", v, s[0], ErrInvalidSubspace)
	}

	return s, nil
}

// tritOf extracts an integer in {0,1,2} from an element, unwrapping interfaces.
func tritOf(e reflect.Value) (int, bool) {
	if e.Kind() == reflect.Interface {
		e = e.Elem()
	}
	var n int64
	switch e.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = e.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if e.Uint() > 2 {
			return 0, false
		}
		n = int64(e.Uint())
	default:
		return 0, false
	}
	if n < 0 || n > 2 {
		return 0, false
	}

	return int(n), true
}

// Validate checks membership and distinctness of an already typed pair.
func (s Subspace) Validate() error {
	if s[0] < 0 || s[0] > 2 || s[1] < 0 || s[1] > 2 {
		return fmt.Errorf("ops: subspace %v out of range: %w", s, ErrInvalidSubspace)
	}
	if s[0] == s[1] {
		return fmt.Errorf("ops: subspace %v repeats %d: %w", s, s[0], ErrInvalidSubspace)
	}

	return nil
}

// Sorted returns the pair in ascending order.
func (s Subspace) Sorted() Subspace {
	if s[0] > s[1] {
		return Subspace{s[1], s[0]}
	}

	return s
}

// Unused returns the basis state outside the pair.
func (s Subspace) Unused() int { return 3 - s[0] - s[1] }

// String renders the pair as "(a, b)".
func (s Subspace) String() string { return fmt.Sprintf("(%d, %d)", s[0], s[1]) }
