// Package ops implements the closed family of fixed qutrit gates and their algebra.
//
// Every gate is described by an immutable Operator value: a Family tag, the
// wires it acts on, an optional two-level Subspace and, for TCNOT, a control
// value. Everything else is derived on demand by pure functions that switch on
// the tag:
//
//   - Matrix / Eigvals: the canonical 3×3 or 9×9 representation and its spectrum.
//   - Adjoint / Pow: new descriptors (or ErrAdjointUndefined / ErrPowUndefined).
//   - ControlWires: the first wire for TAdd and TCNOT.
//   - ExpandMatrix / Apply: embedding into a larger, reordered register.
//
// Families and periods:
//
//	TShift, TClock, TAdd             period 3
//	TSWAP, TX, TY, TZ, TH, TCNOT     period 2
//	TS, TT                           no period
//
// Subspaces are canonicalised per family: TX, TY, TH and TCNOT sort the pair,
// TZ, TS and TT keep the caller's order because the second element selects the
// basis state that receives the sign or phase.
//
// Basis ordering is big-endian over wires: for two wires (w0, w1) the basis
// index of |i,j⟩ is 3·i + j.
package ops
