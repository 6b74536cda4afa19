// SPDX-License-Identifier: MIT

// Package tensor - dense row-major storage & shape algebra.
//
// Purpose:
//   - Hold a flat complex128 buffer with an explicit shape (offset via strides).
//   - Provide shape algebra that never aliases input buffers.
//
// Complexity quicksheet:
//   - New/Zeros/Reshape: O(size); Transpose: O(size*ndim); StackLast: O(k*size).
package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	opNew       = "New"
	opFromReal  = "FromReal"
	opZeros     = "Zeros"
	opReshape   = "Reshape"
	opTranspose = "Transpose"
	opStackLast = "StackLast"
	opNormLast  = "NormLast"
	opAt        = "At"
	opSet       = "Set"
)

// Tensor is an n-dimensional complex array. A nil data slice marks an abstract tensor.
type Tensor struct {
	shape []int        // per-axis extents (each > 0)
	data  []complex128 // row-major; nil when abstract
}

// size returns the element count for shape, or an error for empty/non-positive
// extents and for shapes whose element count overflows int.
func size(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("empty shape: %w", ErrShape)
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("extent %d in %v: %w", d, shape, ErrShape)
		}
		if n > math.MaxInt/d {
			return 0, fmt.Errorf("shape %v overflows: %w", shape, ErrShape)
		}
		n *= d
	}

	return n, nil
}

// strides returns row-major strides for shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}

	return st
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// New copies data into a tensor of the given shape.
// Errors: ErrShape when the shape is empty, has non-positive extents, or does
// not match len(data).
func New(data []complex128, shape ...int) (*Tensor, error) {
	n, err := size(shape)
	if err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	if n != len(data) {
		return nil, tensorErrorf(opNew, fmt.Errorf("shape %v needs %d values, got %d: %w", shape, n, len(data), ErrShape))
	}
	buf := make([]complex128, n)
	copy(buf, data)

	return &Tensor{shape: cloneInts(shape), data: buf}, nil
}

// FromReal is New for real-valued input.
func FromReal(data []float64, shape ...int) (*Tensor, error) {
	buf := make([]complex128, len(data))
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	t, err := New(buf, shape...)
	if err != nil {
		return nil, tensorErrorf(opFromReal, err)
	}

	return t, nil
}

// Zeros returns a zero-filled tensor.
func Zeros(shape ...int) (*Tensor, error) {
	n, err := size(shape)
	if err != nil {
		return nil, tensorErrorf(opZeros, err)
	}

	return &Tensor{shape: cloneInts(shape), data: make([]complex128, n)}, nil
}

// Placeholder returns an abstract tensor: shape only, no values.
func Placeholder(shape ...int) (*Tensor, error) {
	if _, err := size(shape); err != nil {
		return nil, tensorErrorf("Placeholder", err)
	}

	return &Tensor{shape: cloneInts(shape)}, nil
}

// ZerosLike returns a zero tensor with t's shape; abstract in, abstract out.
func ZerosLike(t *Tensor) *Tensor {
	if t.IsAbstract() {
		return &Tensor{shape: cloneInts(t.shape)}
	}

	return &Tensor{shape: cloneInts(t.shape), data: make([]complex128, len(t.data))}
}

// IsAbstract reports whether t is shape-only.
func (t *Tensor) IsAbstract() bool { return t.data == nil }

// Shape returns a copy of the extents.
func (t *Tensor) Shape() []int { return cloneInts(t.shape) }

// NDim returns the number of axes.
func (t *Tensor) NDim() int { return len(t.shape) }

// Size returns the number of elements.
func (t *Tensor) Size() int {
	n := 1
	for _, d := range t.shape {
		n *= d
	}

	return n
}

// Data returns a copy of the flat row-major buffer, or nil for an abstract tensor.
func (t *Tensor) Data() []complex128 {
	if t.data == nil {
		return nil
	}
	out := make([]complex128, len(t.data))
	copy(out, t.data)

	return out
}

// offset maps a multi-index to a flat position.
func (t *Tensor) offset(tag string, idx []int) (int, error) {
	if t.data == nil {
		return 0, tensorErrorf(tag, ErrAbstract)
	}
	if len(idx) != len(t.shape) {
		return 0, tensorErrorf(tag, fmt.Errorf("index %v for shape %v: %w", idx, t.shape, ErrOutOfRange))
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, tensorErrorf(tag, fmt.Errorf("index %v for shape %v: %w", idx, t.shape, ErrOutOfRange))
		}
		off = off*t.shape[axis] + i
	}

	return off, nil
}

// At returns the element at idx.
// Errors: ErrAbstract, ErrOutOfRange.
func (t *Tensor) At(idx ...int) (complex128, error) {
	off, err := t.offset(opAt, idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set writes v at idx. Tensors handed out by this package are never shared,
// so Set only affects t.
func (t *Tensor) Set(v complex128, idx ...int) error {
	off, err := t.offset(opSet, idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Reshape returns a tensor with the same elements and a new shape. At most one
// extent may be -1; it is inferred from the element count.
// Errors: ErrShape.
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	out := cloneInts(shape)
	infer, known := -1, 1
	for i, d := range out {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d <= 0:
			return nil, tensorErrorf(opReshape, fmt.Errorf("extent %d in %v: %w", d, shape, ErrShape))
		default:
			known *= d
		}
	}
	total := t.Size()
	if infer >= 0 {
		if total%known != 0 {
			return nil, tensorErrorf(opReshape, fmt.Errorf("cannot infer %v from %d: %w", shape, total, ErrShape))
		}
		out[infer] = total / known
	}
	n, err := size(out)
	if err != nil {
		return nil, tensorErrorf(opReshape, err)
	}
	if n != total {
		return nil, tensorErrorf(opReshape, fmt.Errorf("%v -> %v: %w", t.shape, shape, ErrShape))
	}

	return &Tensor{shape: out, data: t.Data()}, nil
}

// Transpose permutes axes: result axis i is input axis axes[i].
// Errors: ErrAxes when axes is not a permutation of [0, NDim).
// Complexity: O(size*ndim).
func (t *Tensor) Transpose(axes ...int) (*Tensor, error) {
	nd := len(t.shape)
	if len(axes) != nd {
		return nil, tensorErrorf(opTranspose, fmt.Errorf("axes %v for %d dims: %w", axes, nd, ErrAxes))
	}
	seen := make([]bool, nd)
	outShape := make([]int, nd)
	for i, a := range axes {
		if a < 0 || a >= nd || seen[a] {
			return nil, tensorErrorf(opTranspose, fmt.Errorf("axes %v: %w", axes, ErrAxes))
		}
		seen[a] = true
		outShape[i] = t.shape[a]
	}
	if t.data == nil {
		return &Tensor{shape: outShape}, nil
	}

	inStrides := strides(t.shape)
	// step[i] is the input stride walked when output axis i advances.
	step := make([]int, nd)
	for i, a := range axes {
		step[i] = inStrides[a]
	}
	out := make([]complex128, len(t.data))
	idx := make([]int, nd)
	src := 0
	for k := range out {
		out[k] = t.data[src]
		// odometer increment over the output index
		for ax := nd - 1; ax >= 0; ax-- {
			idx[ax]++
			src += step[ax]
			if idx[ax] < outShape[ax] {
				break
			}
			src -= step[ax] * outShape[ax]
			idx[ax] = 0
		}
	}

	return &Tensor{shape: outShape, data: out}, nil
}

// StackLast stacks equally shaped tensors along a new trailing axis of extent len(ts).
// The result is abstract when any input is.
// Errors: ErrNilTensor, ErrShape.
func StackLast(ts ...*Tensor) (*Tensor, error) {
	if len(ts) == 0 {
		return nil, tensorErrorf(opStackLast, fmt.Errorf("nothing to stack: %w", ErrShape))
	}
	abstract := false
	for i, t := range ts {
		if t == nil {
			return nil, tensorErrorf(opStackLast, fmt.Errorf("operand %d: %w", i, ErrNilTensor))
		}
		if !equalInts(t.shape, ts[0].shape) {
			return nil, tensorErrorf(opStackLast, fmt.Errorf("operand %d shape %v != %v: %w", i, t.shape, ts[0].shape, ErrShape))
		}
		abstract = abstract || t.IsAbstract()
	}
	shape := append(cloneInts(ts[0].shape), len(ts))
	if abstract {
		return &Tensor{shape: shape}, nil
	}
	k := len(ts)
	n := len(ts[0].data)
	out := make([]complex128, n*k)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			out[i*k+j] = ts[j].data[i]
		}
	}

	return &Tensor{shape: shape, data: out}, nil
}

// NormLast returns the L2 norm of every row along the last axis, i.e. one value
// per index of the leading axes (a single value for 1-D input).
// Errors: ErrAbstract.
func (t *Tensor) NormLast() ([]float64, error) {
	if t.data == nil {
		return nil, tensorErrorf(opNormLast, ErrAbstract)
	}
	last := t.shape[len(t.shape)-1]
	rows := len(t.data) / last
	out := make([]float64, rows)
	var r, j int
	for r = 0; r < rows; r++ {
		var sum float64
		for j = 0; j < last; j++ {
			a := cmplx.Abs(t.data[r*last+j])
			sum += a * a
		}
		out[r] = math.Sqrt(sum)
	}

	return out, nil
}

// AllClose reports whether a and b share a shape and every element differs by at most eps.
// Abstract tensors compare by shape only.
func AllClose(a, b *Tensor, eps float64) bool {
	if a == nil || b == nil || !equalInts(a.shape, b.shape) {
		return false
	}
	if a.IsAbstract() || b.IsAbstract() {
		return a.IsAbstract() == b.IsAbstract()
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders shape and, for concrete tensors, the flat data.
func (t *Tensor) String() string {
	if t.data == nil {
		return fmt.Sprintf("Tensor%v<abstract>", t.shape)
	}

	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}
