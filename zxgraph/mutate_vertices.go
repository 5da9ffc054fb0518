// SPDX-License-Identifier: MIT
package zxgraph

import "github.com/katalvlaran/zxgo/phase"

// AddInput creates a Boundary vertex for the given qubit and records it
// as that qubit's input. Returns ErrQubitTaken if the qubit already has
// an input.
//
// Complexity: O(1) amortized.
func (g *ZXGraph) AddInput(qubit int) (int, error) {
	if _, taken := g.inputs[qubit]; taken {
		return 0, ErrQubitTaken
	}
	id := g.freshID()
	g.vertices[id] = newVertex(id, qubit, float64(0), Boundary, phase.Zero)
	g.inputs[qubit] = id
	g.invalidateTopo()
	return id, nil
}

// AddOutput creates a Boundary vertex for the given qubit and records
// it as that qubit's output. Returns ErrQubitTaken if the qubit already
// has an output.
//
// Complexity: O(1) amortized.
func (g *ZXGraph) AddOutput(qubit int) (int, error) {
	if _, taken := g.outputs[qubit]; taken {
		return 0, ErrQubitTaken
	}
	id := g.freshID()
	g.vertices[id] = newVertex(id, qubit, float64(0), Boundary, phase.Zero)
	g.outputs[qubit] = id
	g.invalidateTopo()
	return id, nil
}

// AddVertex creates an interior vertex of the given type and phase on
// the given qubit (qubit is a layout hint for interior vertices, not a
// uniqueness key) and returns its fresh id.
//
// Complexity: O(1) amortized.
func (g *ZXGraph) AddVertex(qubit int, vtype VertexType, ph phase.Phase) int {
	id := g.freshID()
	g.vertices[id] = newVertex(id, qubit, float64(0), vtype, ph)
	g.interior[id] = struct{}{}
	g.invalidateTopo()
	return id
}

// AddVertexAt is like AddVertex but also records a drawing column hint.
func (g *ZXGraph) AddVertexAt(qubit int, column float64, vtype VertexType, ph phase.Phase) int {
	id := g.AddVertex(qubit, vtype, ph)
	g.vertices[id].Column = column
	return id
}

func (g *ZXGraph) freshID() int {
	id := g.nextID
	g.nextID++
	return id
}

// bumpNextID advances the fresh-id counter past id, so a later
// AddVertex/AddInput/AddOutput call can never collide with an
// explicitly-assigned id from AddVertexWithID/AddInputWithID/
// AddOutputWithID.
func (g *ZXGraph) bumpNextID(id int) {
	if id >= g.nextID {
		g.nextID = id + 1
	}
}

// AddVertexWithID is AddVertex with a caller-chosen id, for callers
// that must preserve externally-assigned ids (the .zx format's
// keep_id read option). Returns ErrDuplicateID if id is already taken.
func (g *ZXGraph) AddVertexWithID(id, qubit int, vtype VertexType, ph phase.Phase) error {
	if _, taken := g.vertices[id]; taken {
		return ErrDuplicateID
	}
	g.vertices[id] = newVertex(id, qubit, 0, vtype, ph)
	g.interior[id] = struct{}{}
	g.bumpNextID(id)
	g.invalidateTopo()
	return nil
}

// AddInputWithID is AddInput with a caller-chosen id.
func (g *ZXGraph) AddInputWithID(id, qubit int) error {
	if _, taken := g.vertices[id]; taken {
		return ErrDuplicateID
	}
	if _, taken := g.inputs[qubit]; taken {
		return ErrQubitTaken
	}
	g.vertices[id] = newVertex(id, qubit, 0, Boundary, phase.Zero)
	g.inputs[qubit] = id
	g.bumpNextID(id)
	g.invalidateTopo()
	return nil
}

// AddOutputWithID is AddOutput with a caller-chosen id.
func (g *ZXGraph) AddOutputWithID(id, qubit int) error {
	if _, taken := g.vertices[id]; taken {
		return ErrDuplicateID
	}
	if _, taken := g.outputs[qubit]; taken {
		return ErrQubitTaken
	}
	g.vertices[id] = newVertex(id, qubit, 0, Boundary, phase.Zero)
	g.outputs[qubit] = id
	g.bumpNextID(id)
	g.invalidateTopo()
	return nil
}

// RemoveVertex detaches every edge incident to v (updating neighbors'
// multisets) and then deletes v from the graph. Idempotent: removing an
// already-absent id is a no-op.
//
// Complexity: O(deg(v)).
func (g *ZXGraph) RemoveVertex(id int) {
	v, ok := g.vertices[id]
	if !ok {
		return
	}
	for other := range v.neighbors {
		if other == id {
			continue
		}
		if ov, ok := g.vertices[other]; ok {
			delete(ov.neighbors, id)
		}
	}
	delete(g.vertices, id)
	delete(g.interior, id)
	for q, vid := range g.inputs {
		if vid == id {
			delete(g.inputs, q)
		}
	}
	for q, vid := range g.outputs {
		if vid == id {
			delete(g.outputs, q)
		}
	}
	g.invalidateTopo()
}

// RemoveVertices removes every vertex in ids (order-independent, each
// individually idempotent).
//
// Complexity: O(sum of degrees).
func (g *ZXGraph) RemoveVertices(ids []int) {
	for _, id := range ids {
		g.RemoveVertex(id)
	}
}

// RemoveIsolatedVertices deletes every interior vertex with degree 0.
// Boundary vertices are never removed by this call even if detached,
// since a degree-0 boundary is an invariant violation a rule must have
// already fixed, not something to silently clean up here.
//
// Complexity: O(|V|).
func (g *ZXGraph) RemoveIsolatedVertices() {
	var dead []int
	for id := range g.interior {
		if g.vertices[id].Degree() == 0 {
			dead = append(dead, id)
		}
	}
	g.RemoveVertices(dead)
}
