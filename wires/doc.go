// Package wires models ordered, duplicate-free sequences of register-line labels.
//
// A Wires value fixes the tensor-axis order of a multi-qutrit state: the i-th
// label owns axis i. Labels are opaque; any value whose dynamic type is
// comparable may be used (ints, strings, small structs).
//
// The package offers only lookup and containment:
//
//   - New / MustNew / Range construct sequences (duplicates and non-comparable
//     labels are rejected).
//   - Index, Contains, ContainsAll, Difference, Equal answer order questions.
//   - RequireSubset reports ErrWireMismatch when an order omits labels.
//
// Wires is an immutable value; every accessor returns copies.
package wires
