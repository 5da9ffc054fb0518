// SPDX-License-Identifier: MIT
package tensor

// Permute returns a copy of t with its axes reordered to newOrder,
// which must be a permutation of t.Axes(). Does not mutate t.
func Permute(t *Tensor, newOrder []string) (*Tensor, error) {
	if len(newOrder) != len(t.axes) {
		return nil, ErrBadShape
	}
	perm := make([]int, len(newOrder))
	for i, axis := range newOrder {
		j := t.axisIndex(axis)
		if j < 0 {
			return nil, ErrUnknownAxis
		}
		perm[i] = j
	}
	outDims := make([]int, len(newOrder))
	for i, j := range perm {
		outDims[i] = t.dims[j]
	}
	out, err := New(newOrder, outDims)
	if err != nil {
		return nil, err
	}
	srcIdx := make([]int, len(t.axes))
	odometer(outDims, func(outIdx []int) {
		for i, j := range perm {
			srcIdx[j] = outIdx[i]
		}
		v, _ := t.At(srcIdx)
		_ = out.Set(outIdx, v)
	})
	return out, nil
}

// ToMatrix flattens t into a dense row-major matrix whose rows are
// indexed by the Cartesian product of rowAxes (in the given order) and
// whose columns are indexed by the Cartesian product of colAxes.
// rowAxes and colAxes together must be a permutation of t.Axes().
func ToMatrix(t *Tensor, rowAxes, colAxes []string) ([][]complex128, error) {
	combined := append(append([]string(nil), rowAxes...), colAxes...)
	perm, err := Permute(t, combined)
	if err != nil {
		return nil, err
	}
	rows, cols := 1, 1
	for _, a := range rowAxes {
		d, _ := perm.DimOf(a)
		rows *= d
	}
	for _, a := range colAxes {
		d, _ := perm.DimOf(a)
		cols *= d
	}
	out := make([][]complex128, rows)
	for i := range out {
		out[i] = make([]complex128, cols)
	}
	flat := perm.data
	for i := 0; i < rows; i++ {
		copy(out[i], flat[i*cols:(i+1)*cols])
	}
	return out, nil
}
