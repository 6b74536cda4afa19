// Package matrix provides the complex linear-algebra primitives behind the
// qutrit operator model.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional NaN/Inf numeric policy.
//   - Kernels used by operator algebra: Mul, Add, Sub, Scale, Transpose,
//     ConjTranspose, Kron, MatVec and integer Pow (repeated squaring).
//   - Predicates with an explicit tolerance: AllClose, IsUnitary, IsHermitian,
//     IsDiagonal, IsIdentity.
//   - Constructors for the shapes gate generators need: NewIdentity, NewDiag,
//     NewFromRows and NewPermutation.
//
// Canonical gate matrices are small (3×3 or 9×9) and full-register embeddings
// stay below a few thousand rows, so every kernel works on dense storage.
//
// Errors are package sentinels (errors.go); callers branch with errors.Is.
package matrix
