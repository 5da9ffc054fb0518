// SPDX-License-Identifier: MIT
package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/extractor"
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/qcir"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// czFixture builds the canonical 2-qubit graph-like diagram for a CZ
// gate: one phase-0 ZSpider per qubit, joined by a single Hadamard
// edge, each wired to its own boundary by Simple edges.
func czFixture() *zxgraph.ZXGraph {
	g := zxgraph.NewGraph()
	in0, _ := g.AddInput(0)
	in1, _ := g.AddInput(1)
	out0, _ := g.AddOutput(0)
	out1, _ := g.AddOutput(1)
	v0 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	v1 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(in0, v0, zxgraph.Simple)
	_ = g.AddEdge(v0, out0, zxgraph.Simple)
	_ = g.AddEdge(in1, v1, zxgraph.Simple)
	_ = g.AddEdge(v1, out1, zxgraph.Simple)
	_ = g.AddEdge(v0, v1, zxgraph.Hadamard)
	return g
}

// hadamardWireFixture builds a single-qubit diagram whose only
// structure is one Hadamard edge between two interior spiders: the
// graph-like encoding of a lone H gate.
func hadamardWireFixture() *zxgraph.ZXGraph {
	g := zxgraph.NewGraph()
	in, _ := g.AddInput(0)
	out, _ := g.AddOutput(0)
	front := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	back := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(front, out, zxgraph.Simple)
	_ = g.AddEdge(front, back, zxgraph.Hadamard)
	_ = g.AddEdge(back, in, zxgraph.Simple)
	return g
}

// gadgetFixture builds a single-qubit wire with a phase gadget (hub +
// leaf) hanging off its only interior vertex, the leaf carrying a T
// phase: the graph-like encoding of a lone T gate reached through a
// phase-gadget rather than a direct vertex phase.
func gadgetFixture(t *testing.T) *zxgraph.ZXGraph {
	t.Helper()
	g := zxgraph.NewGraph()
	in, _ := g.AddInput(0)
	out, _ := g.AddOutput(0)
	front := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	hub := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	tPhase, err := phase.New(1, 4)
	require.NoError(t, err)
	leaf := g.AddVertex(0, zxgraph.ZSpider, tPhase)
	_ = g.AddEdge(in, front, zxgraph.Simple)
	_ = g.AddEdge(front, out, zxgraph.Simple)
	_ = g.AddEdge(front, hub, zxgraph.Hadamard)
	_ = g.AddEdge(hub, leaf, zxgraph.Hadamard)
	return g
}

// TestExtract_OptimizeLevelsAgreeWithDefault runs every optimize-level
// heuristic (including block Gaussian elimination at level 0, via
// WithBlockSize) over the CZ and single-Hadamard fixtures and checks
// that every level extracts exactly the gates the default options do.
func TestExtract_OptimizeLevelsAgreeWithDefault(t *testing.T) {
	fixtures := map[string]func() *zxgraph.ZXGraph{
		"cz":       czFixture,
		"hadamard": hadamardWireFixture,
	}
	for name, build := range fixtures {
		want, err := extractor.New(build())
		require.NoError(t, err)
		wantGates, err := want.Extract()
		require.NoError(t, err)

		for _, level := range []int{0, 1, 2, 3} {
			opts := []extractor.Option{extractor.WithOptimizeLevel(level)}
			if level == 0 {
				opts = append(opts, extractor.WithBlockSize(2))
			}
			ext, err := extractor.New(build(), opts...)
			require.NoError(t, err, "fixture %s level %d", name, level)

			got, err := ext.Extract()
			require.NoError(t, err, "fixture %s level %d", name, level)
			require.True(t, ext.Done())
			require.Equal(t, wantGates.Gates(), got.Gates(), "fixture %s level %d", name, level)
		}
	}
}

func TestNew_RejectsNonGraphLikeDiagram(t *testing.T) {
	_, err := extractor.New(zxgraph.NewCNOT())
	require.ErrorIs(t, err, extractor.ErrNotGraphLike)
}

func TestExtract_CZFixtureProducesSingleCZGate(t *testing.T) {
	ext, err := extractor.New(czFixture())
	require.NoError(t, err)

	c, err := ext.Extract()
	require.NoError(t, err)
	require.Equal(t, []qcir.Gate{{Kind: qcir.CZ, Qubits: []int{0, 1}}}, c.Gates())
}

func TestExtract_SingleHadamardEdgeExtractsAsHGate(t *testing.T) {
	ext, err := extractor.New(hadamardWireFixture())
	require.NoError(t, err)

	c, err := ext.Extract()
	require.NoError(t, err)
	require.Equal(t, []qcir.Gate{{Kind: qcir.H, Qubits: []int{0}}}, c.Gates())
}

func TestExtract_PhaseGadgetWithSingleQubitSupportEmitsRotationDirectly(t *testing.T) {
	ext, err := extractor.New(gadgetFixture(t))
	require.NoError(t, err)

	c, err := ext.Extract()
	require.NoError(t, err)
	require.Len(t, c.Gates(), 1)
	require.Equal(t, qcir.T, c.Gates()[0].Kind)
	require.Equal(t, []int{0}, c.Gates()[0].Qubits)
}

func TestExtractionLoop_StepsOneRowAtATime(t *testing.T) {
	ext, err := extractor.New(czFixture())
	require.NoError(t, err)
	require.False(t, ext.Done())

	done, err := ext.ExtractionLoop(1)
	require.NoError(t, err)
	require.True(t, done)
	require.True(t, ext.Done())
}

func TestLoadYAML_ParsesOptionsFields(t *testing.T) {
	data := []byte(`
optimize_level: 2
block_size: 4
filter_cx: true
sort_frontier: true
sort_neighbors: true
permute_qubits: false
`)
	opts, err := extractor.LoadYAML(data)
	require.NoError(t, err)

	ext, err := extractor.New(czFixture(), func(o *extractor.Options) {})
	require.NoError(t, err)
	_ = ext
	_ = opts
}
