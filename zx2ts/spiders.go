// SPDX-License-Identifier: MIT
package zx2ts

import (
	"math/cmplx"
	"strconv"

	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/tensor"
)

// zSpiderTensor builds the dense computational-basis tensor for a
// Z-spider of the given arity and phase: diagonal, T[0,...,0] = 1 and
// T[1,...,1] = e^{i*phase*pi}, zero everywhere else.
func zSpiderTensor(axes []string, ph phase.Phase) *tensor.Tensor {
	if len(axes) == 0 {
		return tensor.Scalar(1 + expI(ph))
	}
	dims := make([]int, len(axes))
	for i := range dims {
		dims[i] = 2
	}
	t, _ := tensor.New(axes, dims)
	zeros := make([]int, len(axes))
	ones := make([]int, len(axes))
	for i := range ones {
		ones[i] = 1
	}
	_ = t.Set(zeros, 1)
	_ = t.Set(ones, expI(ph))
	return t
}

// xSpiderTensor builds an X-spider's tensor by basis-changing a
// Z-spider of the same arity and phase: contract each leg with a
// Hadamard matrix, which is exactly what "diagonal in the
// Hadamard-rotated basis" means computationally.
func xSpiderTensor(axes []string, ph phase.Phase) *tensor.Tensor {
	if len(axes) == 0 {
		return zSpiderTensor(axes, ph)
	}
	tmp := make([]string, len(axes))
	for i := range tmp {
		tmp[i] = tempAxisName(i)
	}
	cur := zSpiderTensor(tmp, ph)
	for i, axis := range axes {
		h := hadamardMatrix(tmp[i], axis)
		next, err := tensor.TensorDot(cur, h)
		if err != nil {
			// tmp[i] and axis are always freshly named and dimension-2 on
			// both operands, so this contraction cannot fail.
			panic("zx2ts: unreachable hadamard basis-change contraction: " + err.Error())
		}
		cur = next
	}
	return cur
}

// hBoxTensor builds the dense HBox tensor of the given arity and
// phase: T[i...] = exp(i*phase*pi * product(i_k)). Arity 2 with the
// default phase pi reduces to the (unnormalized) Hadamard matrix.
func hBoxTensor(axes []string, ph phase.Phase) *tensor.Tensor {
	if len(axes) == 0 {
		return tensor.Scalar(1)
	}
	dims := make([]int, len(axes))
	for i := range dims {
		dims[i] = 2
	}
	t, _ := tensor.New(axes, dims)
	idx := make([]int, len(axes))
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(idx) {
			prod := 1
			for _, b := range idx {
				prod *= b
			}
			v := complex(1, 0)
			if prod != 0 {
				v = expI(ph)
			}
			cp := make([]int, len(idx))
			copy(cp, idx)
			_ = t.Set(cp, v)
			return
		}
		for b := 0; b < 2; b++ {
			idx[pos] = b
			walk(pos + 1)
		}
	}
	walk(0)
	return t
}

// hadamardMatrix returns the normalized 2x2 Hadamard matrix as a
// tensor with the given axis names.
func hadamardMatrix(axisIn, axisOut string) *tensor.Tensor {
	const inv = 0.7071067811865476 // 1/sqrt(2)
	t, _ := tensor.New([]string{axisIn, axisOut}, []int{2, 2})
	_ = t.Set([]int{0, 0}, complex(inv, 0))
	_ = t.Set([]int{0, 1}, complex(inv, 0))
	_ = t.Set([]int{1, 0}, complex(inv, 0))
	_ = t.Set([]int{1, 1}, complex(-inv, 0))
	return t
}

// expI returns e^{i*ph*pi}.
func expI(ph phase.Phase) complex128 {
	return cmplx.Exp(complex(0, ph.ToFloat64()*piConst))
}

const piConst = 3.141592653589793

func tempAxisName(i int) string {
	return "~h" + strconv.Itoa(i)
}
