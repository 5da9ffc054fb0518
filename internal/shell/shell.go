// SPDX-License-Identifier: MIT

// Package shell is the thin command dispatcher cmd/zxgo wires stdin
// lines through. It owns no state cmd/zxgo could not rebuild itself —
// a graph manager, a simplifier, and the extractor run currently in
// progress — it just maps a line's verb onto the right call into
// zxgraph/simplify/gflow/zx2ts/extractor/zxio.
package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/zxgo/extractor"
	"github.com/katalvlaran/zxgo/gflow"
	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/simplify"
	"github.com/katalvlaran/zxgo/zx2ts"
	"github.com/katalvlaran/zxgo/zxgraph"
	"github.com/katalvlaran/zxgo/zxio"
)

// Shell holds one session's worth of state: every graph the manager
// has ever created, plus whatever extraction run is currently open on
// the focused graph.
type Shell struct {
	mgr  *zxgraph.ZXGraphMgr
	simp *simplify.Simplifier
	ext  *extractor.Extractor
}

// New returns an empty shell: no graphs, no focus, no extraction.
func New() *Shell {
	return &Shell{mgr: zxgraph.NewMgr(), simp: simplify.New()}
}

// Dispatch runs one command line (already split on whitespace) and
// returns the text to print. A non-nil error means the command was
// rejected or failed. A command rejected for its arguments leaves the
// shell's state untouched; an extraction that fails part-way keeps its
// run open and leaves the focused graph as far as extraction had
// consumed it.
func (s *Shell) Dispatch(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrNoCommand
	}
	verb, rest := args[0], args[1:]
	switch verb {
	case "new":
		id := s.mgr.New()
		return fmt.Sprintf("new graph %d, focused", id), nil
	case "delete":
		return s.cmdDelete(rest)
	case "checkout":
		return s.cmdCheckout(rest)
	case "copy":
		return s.cmdCopy(rest)
	case "list":
		ids := s.mgr.List()
		return fmt.Sprintf("%v", ids), nil
	case "print":
		return s.cmdPrint()
	case "test":
		return s.cmdTest(rest)
	case "vertex":
		return s.cmdVertex(rest)
	case "edge":
		return s.cmdEdge(rest)
	case "adjoint":
		return s.cmdAdjoint()
	case "optimize":
		return s.cmdOptimize(rest)
	case "rule":
		return s.cmdRule(rest)
	case "gflow":
		return s.cmdGFlow()
	case "zx2ts":
		return s.cmdZX2TS()
	case "extract":
		return s.cmdExtract(rest)
	case "read":
		return s.cmdRead(rest)
	case "write":
		return s.cmdWrite(rest)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}
}

func (s *Shell) focused() (*zxgraph.ZXGraph, error) {
	g, id := s.mgr.Focus()
	if id < 0 {
		return nil, ErrNoFocus
	}
	return g, nil
}

func (s *Shell) cmdDelete(args []string) (string, error) {
	id, err := wantInt(args, 0, "delete <id>")
	if err != nil {
		return "", err
	}
	if err := s.mgr.Delete(id); err != nil {
		return "", err
	}
	return fmt.Sprintf("deleted %d", id), nil
}

func (s *Shell) cmdCheckout(args []string) (string, error) {
	id, err := wantInt(args, 0, "checkout <id>")
	if err != nil {
		return "", err
	}
	if _, err := s.mgr.Checkout(id); err != nil {
		return "", err
	}
	s.ext = nil // a checkout switches the diagram out from under any open run
	return fmt.Sprintf("checked out %d", id), nil
}

func (s *Shell) cmdCopy(args []string) (string, error) {
	id, err := wantInt(args, 0, "copy <id>")
	if err != nil {
		return "", err
	}
	newID, err := s.mgr.Copy(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("copied %d -> %d, focused", id, newID), nil
}

func (s *Shell) cmdPrint() (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"inputs=%d outputs=%d interior=%d density=%.4f tcount=%d scalar=%v",
		len(g.Inputs()), len(g.Outputs()), len(g.Interior()), g.Density(), g.TCount(), g.Scalar(),
	), nil
}

func (s *Shell) cmdTest(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%w: test -valid|-empty|-graph-like|-identity", ErrWrongArgCount)
	}
	var result bool
	switch args[0] {
	case "-valid":
		result = g.IsValid() == nil
	case "-empty":
		result = g.IsEmpty()
	case "-graph-like":
		result = g.IsGraphLike()
	case "-identity":
		result = g.IsIdentity()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTestFlag, args[0])
	}
	if !result {
		return "", fmt.Errorf("test %s: false", args[0])
	}
	return fmt.Sprintf("test %s: true", args[0]), nil
}

func (s *Shell) cmdVertex(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) < 1 {
		return "", ErrWrongArgCount
	}
	switch args[0] {
	case "add":
		return vertexAdd(g, args[1:])
	case "remove":
		id, err := wantInt(args[1:], 0, "vertex remove <id>")
		if err != nil {
			return "", err
		}
		g.RemoveVertex(id)
		return fmt.Sprintf("removed vertex %d", id), nil
	default:
		return "", fmt.Errorf("%w: vertex %s", ErrUnknownCommand, args[0])
	}
}

func vertexAdd(g *zxgraph.ZXGraph, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: vertex add <qubit> <I|O|Z|X|H> [num/den]", ErrWrongArgCount)
	}
	qubit, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: bad qubit %q", ErrWrongArgCount, args[0])
	}
	switch args[1] {
	case "I":
		id, err := g.AddInput(qubit)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added input %d", id), nil
	case "O":
		id, err := g.AddOutput(qubit)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added output %d", id), nil
	}
	vtype, ok := vertexTypeByTag(args[1])
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVertexType, args[1])
	}
	ph := phase.Zero
	if len(args) >= 3 {
		ph, err = parseFraction(args[2])
		if err != nil {
			return "", err
		}
	}
	id := g.AddVertex(qubit, vtype, ph)
	return fmt.Sprintf("added vertex %d", id), nil
}

func vertexTypeByTag(tag string) (zxgraph.VertexType, bool) {
	switch tag {
	case "Z":
		return zxgraph.ZSpider, true
	case "X":
		return zxgraph.XSpider, true
	case "H":
		return zxgraph.HBox, true
	default:
		return 0, false
	}
}

func parseFraction(s string) (phase.Phase, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return phase.Zero, fmt.Errorf("%w: bad phase %q", ErrWrongArgCount, s)
	}
	den := int64(1)
	if len(parts) == 2 {
		den, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return phase.Zero, fmt.Errorf("%w: bad phase %q", ErrWrongArgCount, s)
		}
	}
	return phase.New(num, den)
}

func (s *Shell) cmdEdge(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) < 1 {
		return "", ErrWrongArgCount
	}
	switch args[0] {
	case "add":
		return edgeAdd(g, args[1:])
	case "remove":
		u, v, et, err := edgeArgs(args[1:], "edge remove <u> <v> <S|H>")
		if err != nil {
			return "", err
		}
		g.RemoveEdge(u, v, et)
		return fmt.Sprintf("removed edge %d-%d", u, v), nil
	default:
		return "", fmt.Errorf("%w: edge %s", ErrUnknownCommand, args[0])
	}
}

func edgeAdd(g *zxgraph.ZXGraph, args []string) (string, error) {
	u, v, et, err := edgeArgs(args, "edge add <u> <v> <S|H>")
	if err != nil {
		return "", err
	}
	if err := g.AddEdge(u, v, et); err != nil {
		return "", err
	}
	return fmt.Sprintf("added edge %d-%d", u, v), nil
}

func edgeArgs(args []string, usage string) (u, v int, et zxgraph.EdgeType, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrWrongArgCount, usage)
	}
	u, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad id %q", ErrWrongArgCount, args[0])
	}
	v, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad id %q", ErrWrongArgCount, args[1])
	}
	switch args[2] {
	case "S":
		et = zxgraph.Simple
	case "H":
		et = zxgraph.Hadamard
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrUnknownEdgeType, args[2])
	}
	return u, v, et, nil
}

func (s *Shell) cmdAdjoint() (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	id := s.mgr.Adopt(g.Adjoint())
	return fmt.Sprintf("adjoint registered as %d, focused", id), nil
}

func (s *Shell) cmdOptimize(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%w: optimize <strategy>", ErrWrongArgCount)
	}
	res, err := s.simp.Named(g, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %d rewrite(s) over %d round(s)", args[0], res.Rewrites, res.Rounds), nil
}

func (s *Shell) cmdRule(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%w: rule <name>", ErrWrongArgCount)
	}
	res, err := s.simp.Simp(g, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %d rewrite(s) over %d round(s)", args[0], res.Rewrites, res.Rounds), nil
}

func (s *Shell) cmdGFlow() (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	flow, err := gflow.Compute(g)
	if err != nil {
		if flow != nil {
			return "", fmt.Errorf("%w (failing vertices: %v)", err, flow.Failing)
		}
		return "", err
	}
	return fmt.Sprintf("gflow: %d corrected vertex(es), %d layer(s)", len(flow.Correction), maxLayer(flow)+1), nil
}

func maxLayer(flow *gflow.GFlow) int {
	max := 0
	for _, l := range flow.Layer {
		if l > max {
			max = l
		}
	}
	return max
}

func (s *Shell) cmdZX2TS() (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	m, err := zx2ts.ToMatrix(g, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d x %d matrix", len(m), len(m[0])), nil
}

func (s *Shell) cmdExtract(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) == 1 && args[0] == "step" {
		if s.ext == nil {
			s.ext, err = extractor.New(g)
			if err != nil {
				return "", err
			}
		}
		done, err := s.ext.ExtractionLoop(1)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("stepped one row, done=%v", done), nil
	}
	if len(args) == 1 && args[0] == "print" {
		if s.ext == nil {
			return "", ErrNoExtraction
		}
		return fmt.Sprintf("done=%v", s.ext.Done()), nil
	}
	if len(args) != 0 {
		return "", fmt.Errorf("%w: extract [step|print]", ErrWrongArgCount)
	}

	if s.ext == nil {
		s.ext, err = extractor.New(g)
		if err != nil {
			return "", err
		}
	}
	circuit, err := s.ext.Extract()
	if err != nil {
		return "", err
	}
	s.ext = nil
	return circuit.WriteQASM(), nil
}

func (s *Shell) cmdRead(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: read <path>", ErrWrongArgCount)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	g, err := zxio.Read(string(data), zxio.WithKeepID(true))
	if err != nil {
		return "", err
	}
	id := s.mgr.Adopt(g)
	return fmt.Sprintf("read %s as graph %d, focused", args[0], id), nil
}

func (s *Shell) cmdWrite(args []string) (string, error) {
	g, err := s.focused()
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%w: write <path>", ErrWrongArgCount)
	}
	if err := os.WriteFile(args[0], []byte(zxio.Write(g)), 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %s", args[0]), nil
}

func wantInt(args []string, idx int, usage string) (int, error) {
	if len(args) <= idx {
		return 0, fmt.Errorf("%w: %s", ErrWrongArgCount, usage)
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q in %s", ErrWrongArgCount, args[idx], usage)
	}
	return v, nil
}
