// SPDX-License-Identifier: MIT

// Package zx2ts evaluates a ZXGraph into a dense tensor.Tensor by
// building one small tensor per vertex and contracting them together
// along the graph's wires: every Simple edge is a directly shared axis
// name between its two endpoints' tensors (TensorDot's own
// shared-name contraction does the gluing); every
// Hadamard edge is instead "dehadamardized" by giving each endpoint
// its own private axis and bridging the two with a standalone 2x2
// Hadamard-matrix tensor, which is exactly the data model's own
// reading of a Hadamard edge as "an HBox on a Simple edge". Boundary
// vertices never get a tensor of their own; their one incident edge's
// axis is simply named after the boundary (input or output, and its
// vertex id), so it survives contraction as an external axis of the
// final result instead of being summed away.
package zx2ts

import (
	"fmt"

	"github.com/katalvlaran/zxgo/internal/cancel"
	"github.com/katalvlaran/zxgo/tensor"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// Evaluate contracts g into a single tensor.Tensor whose axes are
// named "in:<id>" / "out:<id>" per boundary vertex id. tok may be nil,
// meaning never cancel; if non-nil and observed requested between
// contraction steps, Evaluate returns ErrCancelled.
func Evaluate(g *zxgraph.ZXGraph, tok *cancel.Token) (*tensor.Tensor, error) {
	legs := make(map[int][]string)
	var parts []*tensor.Tensor

	boundary := make(map[int]bool)
	for _, id := range g.Inputs() {
		boundary[id] = true
	}
	for _, id := range g.Outputs() {
		boundary[id] = true
	}

	// Direct boundary-to-boundary wires (no interior vertex at all, the
	// identity-circuit case) never show up as an interior vertex's
	// neighbor below, so they are bridged here explicitly.
	for _, id := range g.Inputs() {
		v := g.Vertex(id)
		nb := v.Neighbors()[0]
		if !boundary[nb] {
			continue
		}
		aAxis, bAxis := boundaryAxis(g, id), boundaryAxis(g, nb)
		if v.EdgeCount(nb, zxgraph.Hadamard) > 0 {
			parts = append(parts, hadamardMatrix(aAxis, bAxis))
		} else {
			parts = append(parts, identityMatrix(aAxis, bAxis))
		}
	}

	interior := g.Interior()
	for _, id := range interior {
		v := g.Vertex(id)
		for _, nb := range v.Neighbors() {
			if boundary[nb] {
				addBoundaryLegs(g, legs, &parts, id, nb)
				continue
			}
			if nb <= id {
				continue // handled from nb's own forward pass
			}
			addInteriorLegs(legs, &parts, v, id, nb)
		}
	}

	for _, id := range interior {
		v := g.Vertex(id)
		axes := legs[id]
		switch v.Type {
		case zxgraph.ZSpider:
			parts = append(parts, zSpiderTensor(axes, v.Phase))
		case zxgraph.XSpider:
			parts = append(parts, xSpiderTensor(axes, v.Phase))
		case zxgraph.HBox:
			parts = append(parts, hBoxTensor(axes, v.Phase))
		}
	}

	if len(parts) == 0 {
		return tensor.Scalar(g.Scalar()), nil
	}

	acc := parts[0]
	for _, next := range parts[1:] {
		if tok.Requested() {
			return nil, ErrCancelled
		}
		contracted, err := tensor.TensorDot(acc, next)
		if err != nil {
			return nil, err
		}
		acc = contracted
	}
	if g.Scalar() != 1 {
		acc.Scale(g.Scalar())
	}
	return acc, nil
}

// ToMatrix evaluates g and flattens the result into a matrix with one
// row per output (in qubit order) and one column per input (in qubit
// order), the conventional way to read a ZX diagram as a unitary (or
// general linear map).
func ToMatrix(g *zxgraph.ZXGraph, tok *cancel.Token) ([][]complex128, error) {
	t, err := Evaluate(g, tok)
	if err != nil {
		return nil, err
	}
	rowAxes := make([]string, 0, len(g.Outputs()))
	for _, id := range g.Outputs() {
		rowAxes = append(rowAxes, boundaryAxis(g, id))
	}
	colAxes := make([]string, 0, len(g.Inputs()))
	for _, id := range g.Inputs() {
		colAxes = append(colAxes, boundaryAxis(g, id))
	}
	return tensor.ToMatrix(t, rowAxes, colAxes)
}

func boundaryAxis(g *zxgraph.ZXGraph, id int) string {
	role := g.RoleOf(id)
	if role == zxgraph.RoleInput {
		return fmt.Sprintf("in:%d", id)
	}
	return fmt.Sprintf("out:%d", id)
}

func addBoundaryLegs(g *zxgraph.ZXGraph, legs map[int][]string, parts *[]*tensor.Tensor, id, nb int) {
	v := g.Vertex(id)
	bAxis := boundaryAxis(g, nb)
	for k := 0; k < v.EdgeCount(nb, zxgraph.Simple); k++ {
		legs[id] = append(legs[id], bAxis)
	}
	for k := 0; k < v.EdgeCount(nb, zxgraph.Hadamard); k++ {
		own := fmt.Sprintf("hb:%d:%d:%d", id, nb, k)
		legs[id] = append(legs[id], own)
		*parts = append(*parts, hadamardMatrix(own, bAxis))
	}
}

func addInteriorLegs(legs map[int][]string, parts *[]*tensor.Tensor, v *zxgraph.ZXVertex, id, nb int) {
	for k := 0; k < v.EdgeCount(nb, zxgraph.Simple); k++ {
		axis := fmt.Sprintf("w:%d:%d:%d", id, nb, k)
		legs[id] = append(legs[id], axis)
		legs[nb] = append(legs[nb], axis)
	}
	for k := 0; k < v.EdgeCount(nb, zxgraph.Hadamard); k++ {
		aAxis := fmt.Sprintf("h:%d:%d:%d:a", id, nb, k)
		bAxis := fmt.Sprintf("h:%d:%d:%d:b", id, nb, k)
		legs[id] = append(legs[id], aAxis)
		legs[nb] = append(legs[nb], bAxis)
		*parts = append(*parts, hadamardMatrix(aAxis, bAxis))
	}
}

func identityMatrix(axisIn, axisOut string) *tensor.Tensor {
	t, _ := tensor.New([]string{axisIn, axisOut}, []int{2, 2})
	_ = t.Set([]int{0, 0}, 1)
	_ = t.Set([]int{1, 1}, 1)
	return t
}
