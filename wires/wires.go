// SPDX-License-Identifier: MIT

// Package wires - ordered label sequences.
//
// Purpose:
//   - Keep labels in insertion order (slice) with O(1) lookup (map label -> position).
//   - Reject malformed sequences at construction so every later lookup is total.
//
// AI-Hints:
//   - Wires is a value type; pass it by value. The zero value is the empty sequence.
//   - Use RequireSubset before projecting a state onto a caller-supplied order.
package wires

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"
)

// Wires is an ordered, duplicate-free sequence of comparable labels.
type Wires struct {
	labels []any       // insertion order; defines axis order
	index  map[any]int // label -> position
}

// New builds a sequence from labels.
// Errors: ErrUnhashableWire (nil or non-comparable label), ErrDuplicateWire.
// Complexity: O(n).
func New(labels ...any) (Wires, error) {
	w := Wires{
		labels: make([]any, len(labels)),
		index:  make(map[any]int, len(labels)),
	}
	for i, l := range labels {
		if l == nil || !reflect.ValueOf(l).Comparable() {
			return Wires{}, fmt.Errorf("wires: label %d (%T): %w", i, l, ErrUnhashableWire)
		}
		if _, dup := w.index[l]; dup {
			return Wires{}, fmt.Errorf("wires: label %v: %w", l, ErrDuplicateWire)
		}
		w.labels[i] = l
		w.index[l] = i
	}

	return w, nil
}

// MustNew is New that panics on error; intended for literals in tests and examples.
func MustNew(labels ...any) Wires {
	w, err := New(labels...)
	if err != nil {
		panic(err)
	}

	return w
}

// Range returns the integer labels 0..n-1. Non-positive n yields the empty sequence.
func Range(n int) Wires {
	if n < 0 {
		n = 0
	}
	labels := make([]any, n)
	for i := range labels {
		labels[i] = i
	}

	return MustNew(labels...)
}

// Len returns the number of labels.
func (w Wires) Len() int { return len(w.labels) }

// Labels returns a copy of the labels in order.
func (w Wires) Labels() []any {
	out := make([]any, len(w.labels))
	copy(out, w.labels)

	return out
}

// At returns the label at position i.
// Errors: ErrOutOfRange.
func (w Wires) At(i int) (any, error) {
	if i < 0 || i >= len(w.labels) {
		return nil, fmt.Errorf("wires: At(%d): %w", i, ErrOutOfRange)
	}

	return w.labels[i], nil
}

// Index returns the position of label, or -1 when absent.
func (w Wires) Index(label any) int {
	if label == nil || !reflect.ValueOf(label).Comparable() {
		return -1
	}
	if i, ok := w.index[label]; ok {
		return i
	}

	return -1
}

// Contains reports whether label is present.
func (w Wires) Contains(label any) bool { return w.Index(label) >= 0 }

// ContainsAll reports whether every label of other is present in w.
func (w Wires) ContainsAll(other Wires) bool {
	for _, l := range other.labels {
		if _, ok := w.index[l]; !ok {
			return false
		}
	}

	return true
}

// Equal reports element-wise equality, order included.
func (w Wires) Equal(other Wires) bool {
	if len(w.labels) != len(other.labels) {
		return false
	}
	for i, l := range w.labels {
		if other.labels[i] != l {
			return false
		}
	}

	return true
}

// Difference returns the labels of w that are absent from other, in w's order.
func (w Wires) Difference(other Wires) Wires {
	out := Wires{index: make(map[any]int)}
	for _, l := range w.labels {
		if _, ok := other.index[l]; ok {
			continue
		}
		out.index[l] = len(out.labels)
		out.labels = append(out.labels, l)
	}

	return out
}

// RequireSubset returns nil when order contains every label of w, otherwise
// ErrWireMismatch naming the missing labels.
func (w Wires) RequireSubset(order Wires) error {
	missing := w.Difference(order)
	if missing.Len() == 0 {
		return nil
	}

	return fmt.Errorf("wires: missing %v in %v: %w", missing, order, ErrWireMismatch)
}

// String renders labels as "[a, b, c]".
func (w Wires) String() string {
	parts := make([]string, len(w.labels))
	for i, l := range w.labels {
		parts[i] = fmt.Sprint(l)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// AppendKey appends a canonical, unambiguous encoding of w to buf for hashing:
// the label count, then each label's dynamic type and value, every field
// prefixed with its length. Wire 0 and wire "0" encode differently.
func (w Wires) AppendKey(buf []byte) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(w.labels)))
	for _, l := range w.labels {
		buf = appendField(buf, fmt.Sprintf("%T", l))
		buf = appendField(buf, fmt.Sprint(l))
	}

	return buf
}

func appendField(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}
