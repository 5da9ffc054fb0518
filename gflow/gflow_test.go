package gflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/gflow"
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// TestCompute_SingleSpiderWire builds the simplest nontrivial
// graph-like diagram (one interior spider between one input and one
// output) and checks a gflow is found with a strictly increasing
// layering from outputs back to inputs.
func TestCompute_SingleSpiderWire(t *testing.T) {
	g := zxgraph.NewGraph()
	in, err := g.AddInput(0)
	require.NoError(t, err)
	out, err := g.AddOutput(0)
	require.NoError(t, err)
	v := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	require.NoError(t, g.AddEdge(in, v, zxgraph.Simple))
	require.NoError(t, g.AddEdge(v, out, zxgraph.Simple))

	require.True(t, g.IsGraphLike())

	fl, err := gflow.Compute(g)
	require.NoError(t, err)
	require.Equal(t, 0, fl.Layer[out])
	require.Greater(t, fl.Layer[v], fl.Layer[out])
	require.Greater(t, fl.Layer[in], fl.Layer[v])

	_, ok := fl.Correction[v]
	require.True(t, ok, "expected a correction set recorded for v")
	_, ok = fl.Correction[in]
	require.True(t, ok, "expected a correction set recorded for the input")
}

// TestCompute_NotGraphLike rejects a non-graph-like diagram up front.
func TestCompute_NotGraphLike(t *testing.T) {
	g := zxgraph.NewCNOT()
	fl, err := gflow.Compute(g)
	require.ErrorIs(t, err, gflow.ErrNotGraphLike)
	require.Nil(t, fl)
}

// TestCompute_ReportsFailingVertices builds a graph-like diagram with
// one proper input-to-output wire plus a second interior pair that is
// graph-like in isolation but never touches a boundary, so it can
// never enter the correction frontier. Compute should still solve the
// wire, then report the stranded pair as the vertices that blocked the
// flow.
func TestCompute_ReportsFailingVertices(t *testing.T) {
	g := zxgraph.NewGraph()
	in, err := g.AddInput(0)
	require.NoError(t, err)
	out, err := g.AddOutput(0)
	require.NoError(t, err)
	wire := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	require.NoError(t, g.AddEdge(in, wire, zxgraph.Simple))
	require.NoError(t, g.AddEdge(wire, out, zxgraph.Simple))

	stray1 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	stray2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	require.NoError(t, g.AddEdge(stray1, stray2, zxgraph.Hadamard))

	require.True(t, g.IsGraphLike())

	fl, err := gflow.Compute(g)
	require.ErrorIs(t, err, gflow.ErrNoGFlow)
	require.NotNil(t, fl)
	require.False(t, fl.Valid)
	require.ElementsMatch(t, []int{stray1, stray2}, fl.Failing)
}
