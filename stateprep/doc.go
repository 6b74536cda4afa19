// Package stateprep prepares multi-qutrit state vectors.
//
// Two preparations are provided:
//
//   - BasisState: a computational basis state |n_0 … n_{k-1}⟩ given as trits,
//     rendered as a one-hot tensor of shape (3,)^m over any superset wire order.
//   - StateVector: an explicit, normalised amplitude vector of length 3^k
//     (optionally batched), re-projectable onto a larger or reordered register.
//
// Both validate eagerly at construction and never return a partial tensor.
package stateprep
