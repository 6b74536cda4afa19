// Package qutrit is an operator algebra for three-level quantum systems:
// gate descriptors, their canonical matrices and spectra, and the state
// preparations they act on.
//
// 🚀 What is qutrit?
//
//	A small, deterministic library that brings together:
//		• Wires: ordered, hashable labels a gate or state acts on
//		• Gates: TShift, TClock, TAdd, TSWAP, TCNOT and the two-level
//		  subspace gates TX, TY, TZ, TH, TS, TT
//		• Algebra: matrices, eigenvalues, adjoints and integer powers
//		• State preparation: basis states and amplitude vectors projected
//		  onto any superset of wires
//		• Circuits: YAML documents evaluated step by step
//
// Everything is organized under these subpackages:
//
//	matrix/    — dense complex matrices, Kronecker products, predicates
//	tensor/    — n-dimensional complex tensors (reshape, transpose, stack)
//	wires/     — ordered label sequences
//	ops/       — gate descriptors, generators, adjoint/pow, wire expansion
//	stateprep/ — BasisState and StateVector preparations
//	batch/     — concurrent evaluation of many descriptors
//	circuit/   — YAML circuits and the Runner
//	codec/     — compressed, checksummed matrix/tensor snapshots
//	cmd/qutrit — the CLI
//
// Conventions:
//
//	Basis index of a multi-wire state is big-endian: for wires (a, b) the
//	amplitude of |i,j⟩ sits at 3·i + j, so the first wire is the most
//	significant digit. ω = e^{2πi/3}, ζ = e^{2πi/9}.
//
//	go get github.com/katalvlaran/qutrit
package qutrit
