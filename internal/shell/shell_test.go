// SPDX-License-Identifier: MIT
package shell_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxgo/internal/shell"
)

// TestDispatch_BuildsAndQueriesAGraph is a smoke test walking the
// same verbs a real session would: create a graph, wire up a lone
// Hadamard edge between two ZSpiders (the graph-like encoding of a
// single H gate), and run the print and graph-like queries over it.
func TestDispatch_BuildsAndQueriesAGraph(t *testing.T) {
	sh := shell.New()

	_, err := sh.Dispatch([]string{"new"})
	require.NoError(t, err)

	_, err = sh.Dispatch(strings.Fields("vertex add 0 Z"))
	require.NoError(t, err)
	_, err = sh.Dispatch(strings.Fields("vertex add 0 Z"))
	require.NoError(t, err)

	out, err := sh.Dispatch([]string{"print"})
	require.NoError(t, err)
	require.Contains(t, out, "interior=2")

	_, err = sh.Dispatch(strings.Fields("edge add 0 1 H"))
	require.NoError(t, err)

	out, err = sh.Dispatch(strings.Fields("test -graph-like"))
	require.NoError(t, err)
	require.Contains(t, out, "true")
}

func TestDispatch_CheckoutCopyListRoundTrip(t *testing.T) {
	sh := shell.New()

	out, err := sh.Dispatch([]string{"new"})
	require.NoError(t, err)
	require.Contains(t, out, "new graph 0")

	_, err = sh.Dispatch([]string{"new"})
	require.NoError(t, err)

	out, err = sh.Dispatch([]string{"list"})
	require.NoError(t, err)
	require.Equal(t, "[0 1]", out)

	out, err = sh.Dispatch(strings.Fields("copy 0"))
	require.NoError(t, err)
	require.Contains(t, out, "copied 0 -> 2")

	_, err = sh.Dispatch(strings.Fields("checkout 1"))
	require.NoError(t, err)
}

func TestDispatch_RejectsUnknownCommand(t *testing.T) {
	sh := shell.New()
	_, err := sh.Dispatch([]string{"frobnicate"})
	require.ErrorIs(t, err, shell.ErrUnknownCommand)
}

func TestDispatch_RejectsCommandsWithoutFocus(t *testing.T) {
	sh := shell.New()
	_, err := sh.Dispatch([]string{"print"})
	require.ErrorIs(t, err, shell.ErrNoFocus)
}

// TestDispatch_FullExtractionPipeline builds the graph-like CZ diagram
// by hand (two phase-0 ZSpiders joined by a Hadamard edge, each wired
// to its own boundary) and runs it through gflow and extract, mirroring
// what a real session scripting a circuit through the shell would do.
func TestDispatch_FullExtractionPipeline(t *testing.T) {
	sh := shell.New()
	_, err := sh.Dispatch([]string{"new"})
	require.NoError(t, err)

	for _, cmd := range []string{
		"vertex add 0 I", // id 0
		"vertex add 1 I", // id 1
		"vertex add 0 O", // id 2
		"vertex add 1 O", // id 3
		"vertex add 0 Z", // id 4
		"vertex add 1 Z", // id 5
		"edge add 0 4 S",
		"edge add 4 2 S",
		"edge add 1 5 S",
		"edge add 5 3 S",
		"edge add 4 5 H",
	} {
		_, err := sh.Dispatch(strings.Fields(cmd))
		require.NoError(t, err)
	}

	out, err := sh.Dispatch(strings.Fields("test -graph-like"))
	require.NoError(t, err)
	require.Contains(t, out, "true")

	out, err = sh.Dispatch([]string{"gflow"})
	require.NoError(t, err)
	require.Contains(t, out, "corrected vertex")

	out, err = sh.Dispatch([]string{"extract"})
	require.NoError(t, err)
	require.Contains(t, out, "OPENQASM")
}
