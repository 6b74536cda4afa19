// Package tensor is the small n-dimensional complex backend used for state vectors.
//
// A Tensor is a row-major complex128 buffer with an explicit shape. It offers
// exactly the primitives state preparation needs:
//
//   - Reshape (with one inferred -1 axis),
//   - StackLast (stack equally shaped tensors along a new trailing axis),
//   - Transpose (arbitrary axis permutation),
//   - NormLast (L2 norm of every row along the last axis).
//
// A tensor built with Placeholder is abstract: it carries a shape but no
// values, the way a traced or symbolic input would. Shape-only operations
// (Reshape, StackLast, Transpose) propagate abstractness; value reads fail
// with ErrAbstract.
package tensor
