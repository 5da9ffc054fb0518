// SPDX-License-Identifier: MIT
package zxgraph

import "github.com/katalvlaran/zxgo/phase"

// NewIdentity returns the ZXGraph for an n-qubit circuit with no
// gates: n inputs, n outputs, one Simple edge per qubit, no interior
// vertices (scenario 1, "Empty identity", in the module's testable
// properties).
func NewIdentity(n int) *ZXGraph {
	g := NewGraph()
	for q := 0; q < n; q++ {
		in, _ := g.AddInput(q)
		out, _ := g.AddOutput(q)
		_ = g.AddEdge(in, out, Simple)
	}
	return g
}

// NewCNOT returns the ZXGraph for a single CNOT with control on qubit
// 0 and target on qubit 1: a phase-0 ZSpider on qubit 0 joined by a
// Simple edge to a phase-0 XSpider on qubit 1, each wired to its own
// input/output boundary by a Simple edge (scenario 2, "Single CNOT").
func NewCNOT() *ZXGraph {
	g := NewGraph()
	in0, _ := g.AddInput(0)
	in1, _ := g.AddInput(1)
	out0, _ := g.AddOutput(0)
	out1, _ := g.AddOutput(1)

	z := g.AddVertex(0, ZSpider, phase.Zero)
	x := g.AddVertex(1, XSpider, phase.Zero)

	_ = g.AddEdge(in0, z, Simple)
	_ = g.AddEdge(z, out0, Simple)
	_ = g.AddEdge(in1, x, Simple)
	_ = g.AddEdge(x, out1, Simple)
	_ = g.AddEdge(z, x, Simple)
	return g
}
