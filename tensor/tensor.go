// SPDX-License-Identifier: MIT
// Package tensor provides a dense complex128 tensor with named axes
// and the handful of operations the ZX-to-tensor evaluator needs:
// construction, axis permutation, named-axis contraction (tensordot),
// and flattening to a matrix for equivalence checking.
//
// Purpose: generalizes the module's own dense float64 matrix kernel
// to complex128 and to arbitrary rank, since a spider with n legs is
// an order-n tensor, not a matrix, and a ZX diagram's full evaluation
// contracts many such tensors together by name rather than by a fixed
// row/column convention.
//
// Naming axes (instead of positional indices) is what keeps
// TensorDot's contraction logic simple: matching axis names ARE the
// wires being fused, so contraction is "zip the shared names, sum over
// them", with no separate bookkeeping of which numeric index went
// where after each contraction.
package tensor

// Tensor is a dense, row-major complex128 array over named axes.
type Tensor struct {
	axes []string
	dims []int
	data []complex128 // flat backing storage, length == product(dims)
}

// New allocates a zero tensor with the given axis names and
// dimensions (axes[i] has size dims[i]).
func New(axes []string, dims []int) (*Tensor, error) {
	if len(axes) != len(dims) {
		return nil, ErrBadShape
	}
	size := 1
	seen := make(map[string]bool, len(axes))
	for i, d := range dims {
		if d <= 0 {
			return nil, ErrBadShape
		}
		if seen[axes[i]] {
			return nil, ErrDuplicateAxis
		}
		seen[axes[i]] = true
		size *= d
	}
	return &Tensor{
		axes: append([]string(nil), axes...),
		dims: append([]int(nil), dims...),
		data: make([]complex128, size),
	}, nil
}

// Scalar returns a rank-0 tensor (no axes) holding a single value.
func Scalar(v complex128) *Tensor {
	return &Tensor{data: []complex128{v}}
}

// Axes returns the tensor's axis names, in storage order.
func (t *Tensor) Axes() []string { return append([]string(nil), t.axes...) }

// Rank returns the number of axes.
func (t *Tensor) Rank() int { return len(t.axes) }

// DimOf returns the dimension of the named axis.
func (t *Tensor) DimOf(axis string) (int, error) {
	for i, a := range t.axes {
		if a == axis {
			return t.dims[i], nil
		}
	}
	return 0, ErrUnknownAxis
}

func (t *Tensor) axisIndex(axis string) int {
	for i, a := range t.axes {
		if a == axis {
			return i
		}
	}
	return -1
}

// flatIndex converts a per-axis index tuple (in t.axes order) into a
// flat offset.
func (t *Tensor) flatIndex(idx []int) (int, error) {
	if len(idx) != len(t.axes) {
		return 0, ErrOutOfRange
	}
	off := 0
	for i, d := range t.dims {
		if idx[i] < 0 || idx[i] >= d {
			return 0, ErrOutOfRange
		}
		off = off*d + idx[i]
	}
	return off, nil
}

// At reads the element at idx (in t.Axes() order).
func (t *Tensor) At(idx []int) (complex128, error) {
	off, err := t.flatIndex(idx)
	if err != nil {
		return 0, err
	}
	return t.data[off], nil
}

// Set writes the element at idx (in t.Axes() order).
func (t *Tensor) Set(idx []int, v complex128) error {
	off, err := t.flatIndex(idx)
	if err != nil {
		return err
	}
	t.data[off] = v
	return nil
}

// Scale multiplies every element by c in place.
func (t *Tensor) Scale(c complex128) {
	for i := range t.data {
		t.data[i] *= c
	}
}

// Conj returns a new tensor with every element complex-conjugated and
// the same axes; does not mutate the receiver.
func (t *Tensor) Conj() *Tensor {
	out := &Tensor{axes: append([]string(nil), t.axes...), dims: append([]int(nil), t.dims...), data: make([]complex128, len(t.data))}
	for i, v := range t.data {
		out.data[i] = complex(real(v), -imag(v))
	}
	return out
}

// Clone returns an independent deep copy.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{axes: append([]string(nil), t.axes...), dims: append([]int(nil), t.dims...), data: append([]complex128(nil), t.data...)}
	return out
}

// Rename replaces one axis name with another (e.g. to glue an output
// leg of one tensor to an input leg of the next before TensorDot).
func (t *Tensor) Rename(from, to string) error {
	i := t.axisIndex(from)
	if i < 0 {
		return ErrUnknownAxis
	}
	t.axes[i] = to
	return nil
}
