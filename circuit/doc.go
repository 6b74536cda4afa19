// SPDX-License-Identifier: MIT

// Package circuit reads qutrit circuits from YAML and evaluates them.
//
// A document names its wires, an optional state preparation and a list of
// gate steps:
//
//	wires: [0, 1]
//	prep:
//	  basis: [2, 0]          # or amplitudes: [[re, im], ...]
//	ops:
//	  - gate: TCNOT
//	    wires: [0, 1]
//	    control: 2
//	  - gate: TX
//	    wires: [1]
//	    subspace: [1, 2]
//
// Parse/Load decode and validate a Document; Build turns it into operator
// descriptors and a stateprep.Preparation; a Runner evaluates the result.
// With no prep the circuit starts in |0…0⟩.
package circuit
