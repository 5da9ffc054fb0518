// SPDX-License-Identifier: MIT
package tensor

// odometer calls fn once for every index tuple in the box defined by
// dims, in row-major (last axis fastest) order, reusing a single
// backing slice across calls — fn must not retain it.
func odometer(dims []int, fn func(idx []int)) {
	if len(dims) == 0 {
		fn(nil)
		return
	}
	idx := make([]int, len(dims))
	for {
		fn(idx)
		pos := len(dims) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < dims[pos] {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}

// TensorDot contracts every axis name shared between a and b (summing
// over it, as in Einstein summation with a repeated index) and
// returns a tensor over the union of their remaining axes, a's
// uncontracted axes first. Shared axes must agree on dimension.
//
// Complexity: O(outSize * sharedSize).
func TensorDot(a, b *Tensor) (*Tensor, error) {
	var sharedA, sharedB []int
	var sharedDims []int
	aFree := make([]int, 0, len(a.axes))
	bFree := make([]int, 0, len(b.axes))

	for i, axis := range a.axes {
		if j := b.axisIndex(axis); j >= 0 {
			if a.dims[i] != b.dims[j] {
				return nil, ErrAxisDimMismatch
			}
			sharedA = append(sharedA, i)
			sharedB = append(sharedB, j)
			sharedDims = append(sharedDims, a.dims[i])
		} else {
			aFree = append(aFree, i)
		}
	}
	for j := range b.axes {
		if a.axisIndex(b.axes[j]) < 0 {
			bFree = append(bFree, j)
		}
	}

	outAxes := make([]string, 0, len(aFree)+len(bFree))
	outDims := make([]int, 0, len(aFree)+len(bFree))
	for _, i := range aFree {
		outAxes = append(outAxes, a.axes[i])
		outDims = append(outDims, a.dims[i])
	}
	for _, j := range bFree {
		outAxes = append(outAxes, b.axes[j])
		outDims = append(outDims, b.dims[j])
	}

	var out *Tensor
	if len(outAxes) == 0 {
		out = Scalar(0)
	} else {
		var err error
		out, err = New(outAxes, outDims)
		if err != nil {
			return nil, err
		}
	}

	aIdx := make([]int, len(a.axes))
	bIdx := make([]int, len(b.axes))

	odometer(outDims, func(outIdx []int) {
		for k, i := range aFree {
			aIdx[i] = outIdx[k]
		}
		for k, j := range bFree {
			bIdx[j] = outIdx[len(aFree)+k]
		}
		var sum complex128
		odometer(sharedDims, func(sIdx []int) {
			for k, i := range sharedA {
				aIdx[i] = sIdx[k]
			}
			for k, j := range sharedB {
				bIdx[j] = sIdx[k]
			}
			av, _ := a.At(aIdx)
			bv, _ := b.At(bIdx)
			sum += av * bv
		})
		_ = out.Set(outIdx, sum)
	})
	return out, nil
}
