// SPDX-License-Identifier: MIT
package zxio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
	"github.com/katalvlaran/zxgo/zxio"
)

// czFixture builds the canonical 2-qubit graph-like CZ diagram: one
// phase-0 ZSpider per qubit joined by a Hadamard edge, each wired to
// its own boundary by a Simple edge.
func czFixture(t *testing.T) *zxgraph.ZXGraph {
	t.Helper()
	g := zxgraph.NewGraph()
	in0, err := g.AddInput(0)
	require.NoError(t, err)
	in1, err := g.AddInput(1)
	require.NoError(t, err)
	out0, err := g.AddOutput(0)
	require.NoError(t, err)
	out1, err := g.AddOutput(1)
	require.NoError(t, err)
	v0 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	v1 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	require.NoError(t, g.AddEdge(in0, v0, zxgraph.Simple))
	require.NoError(t, g.AddEdge(v0, out0, zxgraph.Simple))
	require.NoError(t, g.AddEdge(in1, v1, zxgraph.Simple))
	require.NoError(t, g.AddEdge(v1, out1, zxgraph.Simple))
	require.NoError(t, g.AddEdge(v0, v1, zxgraph.Hadamard))
	return g
}

func TestWriteThenRead_RoundTripsGraphShape(t *testing.T) {
	g := czFixture(t)
	text := zxio.Write(g)

	back, err := zxio.Read(text)
	require.NoError(t, err)
	require.Len(t, back.Inputs(), 2)
	require.Len(t, back.Outputs(), 2)
	require.Len(t, back.Interior(), 2)
	require.True(t, back.IsGraphLike())
	require.NoError(t, back.IsValid())
}

func TestWriteThenRead_PreservesPhase(t *testing.T) {
	g := zxgraph.NewGraph()
	in, _ := g.AddInput(0)
	out, _ := g.AddOutput(0)
	tPhase, err := phase.New(1, 4)
	require.NoError(t, err)
	v := g.AddVertex(0, zxgraph.ZSpider, tPhase)
	require.NoError(t, g.AddEdge(in, v, zxgraph.Simple))
	require.NoError(t, g.AddEdge(v, out, zxgraph.Simple))

	back, err := zxio.Read(zxio.Write(g))
	require.NoError(t, err)
	require.Len(t, back.Interior(), 1)
	require.True(t, back.Vertex(back.Interior()[0]).Phase.Equal(tPhase))
}

func TestRead_WithKeepIDPreservesOriginalIDs(t *testing.T) {
	text := "I 5 0 (S:9)\nO 6 0 (S:9)\nZ 9 0 (S:5) (S:6)\n"

	compacted, err := zxio.Read(text)
	require.NoError(t, err)
	require.Nil(t, compacted.Vertex(9))

	kept, err := zxio.Read(text, zxio.WithKeepID(true))
	require.NoError(t, err)
	require.NotNil(t, kept.Vertex(9))
	require.NotNil(t, kept.Vertex(5))
	require.NotNil(t, kept.Vertex(6))
}

func TestRead_RejectsMalformedLine(t *testing.T) {
	_, err := zxio.Read("Z\n")
	require.ErrorIs(t, err, zxio.ErrMalformedLine)
}

func TestRead_RejectsUnknownVertexTag(t *testing.T) {
	_, err := zxio.Read("Q 0 0\n")
	require.ErrorIs(t, err, zxio.ErrUnknownVertexTag)
}

func TestRead_RejectsDuplicateID(t *testing.T) {
	_, err := zxio.Read("I 0 0\nO 0 1\n")
	require.ErrorIs(t, err, zxio.ErrDuplicateVertexID)
}

func TestRead_RejectsNeighborNeverDeclared(t *testing.T) {
	_, err := zxio.Read("I 0 0 (S:4)\n")
	require.ErrorIs(t, err, zxio.ErrNeighborNotYetSeen)
}
