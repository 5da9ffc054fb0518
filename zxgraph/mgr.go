// SPDX-License-Identifier: MIT
package zxgraph

import "errors"

// ErrNoSuchGraph indicates Checkout/Delete/Copy was called with an id
// the manager does not hold.
var ErrNoSuchGraph = errors.New("zxgraph: no graph with that id")

// ZXGraphMgr owns every live ZXGraph and vends them by integer id, the
// way the CLI's `zx` command family (new/delete/checkout/copy/list)
// needs: a single place that can create, focus, and diff graphs
// without the rest of the shell holding pointers across a checkout
// switch. Grounded on lvlath/core's split-ownership manager idiom,
// generalized from Graph ownership by the caller to a keyed registry
// of graphs, since the shell, not any one ZXGraph, needs to address
// "which graph am I editing right now".
type ZXGraphMgr struct {
	nextID int
	graphs map[int]*ZXGraph
	focus  int
}

// NewMgr returns an empty manager with no graphs and no focus.
func NewMgr() *ZXGraphMgr {
	return &ZXGraphMgr{graphs: make(map[int]*ZXGraph), focus: -1}
}

// New creates an empty ZXGraph, registers it, focuses it, and returns
// its id.
func (m *ZXGraphMgr) New() int {
	id := m.nextID
	m.nextID++
	m.graphs[id] = NewGraph()
	m.focus = id
	return id
}

// Delete removes the graph with id from the manager. If it was the
// focused graph, focus becomes unset (-1) until Checkout is called
// again. Returns ErrNoSuchGraph if id is not registered.
func (m *ZXGraphMgr) Delete(id int) error {
	if _, ok := m.graphs[id]; !ok {
		return ErrNoSuchGraph
	}
	delete(m.graphs, id)
	if m.focus == id {
		m.focus = -1
	}
	return nil
}

// Checkout focuses the graph with id and returns it. Returns
// ErrNoSuchGraph if id is not registered.
func (m *ZXGraphMgr) Checkout(id int) (*ZXGraph, error) {
	g, ok := m.graphs[id]
	if !ok {
		return nil, ErrNoSuchGraph
	}
	m.focus = id
	return g, nil
}

// Copy clones the graph with id, registers the clone under a fresh id,
// focuses it, and returns the new id. Returns ErrNoSuchGraph if id is
// not registered.
func (m *ZXGraphMgr) Copy(id int) (int, error) {
	g, ok := m.graphs[id]
	if !ok {
		return 0, ErrNoSuchGraph
	}
	newID := m.nextID
	m.nextID++
	m.graphs[newID] = g.Clone()
	m.focus = newID
	return newID, nil
}

// List returns every registered graph id in ascending order.
func (m *ZXGraphMgr) List() []int {
	out := make([]int, 0, len(m.graphs))
	for id := range m.graphs {
		out = append(out, id)
	}
	sortInts(out)
	return out
}

// Focus returns the currently focused graph and its id, or (nil, -1)
// if nothing is focused (a fresh manager, or the focused graph was
// deleted).
func (m *ZXGraphMgr) Focus() (*ZXGraph, int) {
	if m.focus < 0 {
		return nil, -1
	}
	return m.graphs[m.focus], m.focus
}

// Adopt registers an externally-constructed graph (e.g. one produced
// by qcir.ToZX) under a fresh id, focuses it, and returns the id.
func (m *ZXGraphMgr) Adopt(g *ZXGraph) int {
	id := m.nextID
	m.nextID++
	m.graphs[id] = g
	m.focus = id
	return id
}
