// SPDX-License-Identifier: MIT

// Package zxio reads and writes the module's custom .zx textual
// format: one line per vertex, a type tag (I/O for boundary vertices,
// Z/X/H for interior ones) followed by an id, a qubit, an optional
// phase, and a neighbor list of "(edgeTag:id)" tokens.
package zxio

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/zxgraph"
)

// Write renders g as a .zx file: inputs first, then outputs, each in
// qubit order, then interior vertices in ascending id order — a fixed order so two
// calls on an equal graph produce byte-identical text. Every edge is
// listed once per endpoint, adjacency-list style, matching how Read
// expects to find it.
func Write(g *zxgraph.ZXGraph) string {
	var b strings.Builder
	for _, id := range g.Inputs() {
		writeLine(&b, g, id, "I")
	}
	for _, id := range g.Outputs() {
		writeLine(&b, g, id, "O")
	}
	for _, id := range g.Interior() {
		writeLine(&b, g, id, g.Vertex(id).Type.String())
	}
	return b.String()
}

func writeLine(b *strings.Builder, g *zxgraph.ZXGraph, id int, tag string) {
	v := g.Vertex(id)
	fmt.Fprintf(b, "%s %d %d", tag, id, v.Qubit)
	if tag != "I" && tag != "O" && !v.Phase.IsZero() {
		fmt.Fprintf(b, " %d/%d", v.Phase.Numerator(), v.Phase.Denominator())
	}
	for _, n := range v.Neighbors() {
		for _, et := range []zxgraph.EdgeType{zxgraph.Simple, zxgraph.Hadamard} {
			for i := 0; i < v.EdgeCount(n, et); i++ {
				fmt.Fprintf(b, " (%s:%d)", et.String(), n)
			}
		}
	}
	b.WriteString("\n")
}

// record is one parsed line, before ids are resolved against the
// target graph (which may renumber them).
type record struct {
	tag       string
	fileID    int
	qubit     int
	phase     phase.Phase
	neighbors []neighborTok
}

type neighborTok struct {
	edge   zxgraph.EdgeType
	fileID int
}

// Read parses a .zx file back into a ZXGraph. By default vertex ids
// are compacted into a fresh dense range; WithKeepID(true) preserves
// the file's own ids instead.
//
// Every edge is expected on both endpoints' lines (as Write produces);
// Read applies it once, reading the multiplicity off the lower-id
// endpoint's listing; the higher-id endpoint's listing of the same edge
// is skipped and not compared against it.
func Read(text string, opts ...Option) (*zxgraph.ZXGraph, error) {
	o := newOptions(opts)

	records, order, err := parseRecords(text)
	if err != nil {
		return nil, err
	}

	g := zxgraph.NewGraph()
	idMap := make(map[int]int, len(records))
	for _, fid := range order {
		r := records[fid]
		graphID, err := declareVertex(g, r, o.keepID)
		if err != nil {
			return nil, err
		}
		idMap[fid] = graphID
	}

	for _, fid := range order {
		r := records[fid]
		for _, n := range r.neighbors {
			target, declared := idMap[n.fileID]
			if !declared {
				return nil, ErrNeighborNotYetSeen
			}
			if n.fileID <= fid {
				continue // each undirected pair is listed by both endpoints; take it once
			}
			if err := g.AddEdge(idMap[fid], target, n.edge); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func declareVertex(g *zxgraph.ZXGraph, r record, keepID bool) (int, error) {
	switch r.tag {
	case "I":
		if keepID {
			return r.fileID, g.AddInputWithID(r.fileID, r.qubit)
		}
		return g.AddInput(r.qubit)
	case "O":
		if keepID {
			return r.fileID, g.AddOutputWithID(r.fileID, r.qubit)
		}
		return g.AddOutput(r.qubit)
	default:
		vtype, ok := vertexTypeByTag(r.tag)
		if !ok {
			return 0, ErrUnknownVertexTag
		}
		if keepID {
			return r.fileID, g.AddVertexWithID(r.fileID, r.qubit, vtype, r.phase)
		}
		return g.AddVertex(r.qubit, vtype, r.phase), nil
	}
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

// parseRecords reads every non-blank, non-comment line into a record
// keyed by its file-declared id, plus the order the ids were first
// declared in (so Read can build the graph deterministically).
func parseRecords(text string) (map[int]record, []int, error) {
	records := make(map[int]record)
	var order []int

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := parseLine(line)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := records[r.fileID]; dup {
			return nil, nil, ErrDuplicateVertexID
		}
		records[r.fileID] = r
		order = append(order, r.fileID)
	}
	return records, order, nil
}

func parseLine(line string) (record, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return record{}, ErrMalformedLine
	}
	tag := fields[0]
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return record{}, ErrMalformedLine
	}
	qubit, err := strconv.Atoi(fields[2])
	if err != nil {
		return record{}, ErrMalformedLine
	}
	r := record{tag: tag, fileID: id, qubit: qubit, phase: phase.Zero}

	rest := fields[3:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		ph, err := parseFraction(rest[0])
		if err != nil {
			return record{}, err
		}
		r.phase = ph
		rest = rest[1:]
	}

	for _, tok := range rest {
		n, err := parseNeighborToken(tok)
		if err != nil {
			return record{}, err
		}
		r.neighbors = append(r.neighbors, n)
	}
	return r, nil
}

func parseFraction(s string) (phase.Phase, error) {
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return phase.Zero, ErrMalformedLine
	}
	den := int64(1)
	if len(parts) == 2 {
		den, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return phase.Zero, ErrMalformedLine
		}
	}
	return phase.New(num, den)
}

func parseNeighborToken(tok string) (neighborTok, error) {
	tok = strings.TrimSuffix(strings.TrimPrefix(tok, "("), ")")
	parts := strings.SplitN(tok, ":", 2)
	if len(parts) != 2 {
		return neighborTok{}, ErrMalformedLine
	}
	var et zxgraph.EdgeType
	switch parts[0] {
	case "S":
		et = zxgraph.Simple
	case "H":
		et = zxgraph.Hadamard
	default:
		return neighborTok{}, ErrUnknownEdgeTag
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		return neighborTok{}, ErrMalformedLine
	}
	return neighborTok{edge: et, fileID: id}, nil
}
