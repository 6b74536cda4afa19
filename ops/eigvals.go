// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/qutrit/matrix"

// ShiftEigvals returns [ω, ω², 1].
func ShiftEigvals() []complex128 { return []complex128{Omega, omega2, 1} }

// ClockEigvals returns the diagonal [1, ω, ω²].
func ClockEigvals() []complex128 { return []complex128{1, Omega, omega2} }

// AddEigvals returns [ω, ω², 1, ω, ω², 1, 1, 1, 1].
func AddEigvals() []complex128 {
	return []complex128{Omega, omega2, 1, Omega, omega2, 1, 1, 1, 1}
}

// SWAPEigvals returns [1, -1, 1, -1, 1, -1, 1, 1, 1]: three antisymmetric and six symmetric states.
func SWAPEigvals() []complex128 {
	return []complex128{1, -1, 1, -1, 1, -1, 1, 1, 1}
}

// involutionEigvals is the spectrum of a single-qutrit reflection on a subspace.
func involutionEigvals() []complex128 { return []complex128{-1, 1, 1} }

// CNOTEigvals returns -1 followed by eight 1s for any control and subspace.
func CNOTEigvals() []complex128 {
	out := make([]complex128, dim*dim)
	for i := range out {
		out[i] = 1
	}
	out[0] = -1

	return out
}

// diagonalOf returns the diagonal of a diagonal gate matrix.
func diagonalOf(m *matrix.Dense, err error) ([]complex128, error) {
	if err != nil {
		return nil, err
	}

	return matrix.Diagonal(m)
}
