package rules_test

import (
	"testing"

	"github.com/katalvlaran/zxgo/phase"
	"github.com/katalvlaran/zxgo/rules"
	"github.com/katalvlaran/zxgo/zxgraph"
)

func mustPhase(t *testing.T, num, den int64) phase.Phase {
	t.Helper()
	p, err := phase.New(num, den)
	if err != nil {
		t.Fatalf("phase.New(%d,%d): %v", num, den, err)
	}
	return p
}

func TestSpiderFusion_AddsPhasesAndUnionsNeighbors(t *testing.T) {
	g := zxgraph.NewGraph()
	a := g.AddVertex(0, zxgraph.ZSpider, mustPhase(t, 1, 4))
	b := g.AddVertex(1, zxgraph.ZSpider, mustPhase(t, 1, 2))
	c := g.AddVertex(2, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(a, b, zxgraph.Simple)
	_ = g.AddEdge(b, c, zxgraph.Hadamard)

	r := rules.SpiderFusionRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(b) {
		t.Fatal("expected b to be fused away")
	}
	if !g.Vertex(a).Phase.Equal(mustPhase(t, 3, 4)) {
		t.Fatalf("expected fused phase 3/4, got %v", g.Vertex(a).Phase)
	}
	if g.Vertex(a).EdgeCount(c, zxgraph.Hadamard) != 1 {
		t.Fatal("expected a to inherit b's Hadamard edge to c")
	}
}

func TestIdentityRemoval_ComposesEdgeTypes(t *testing.T) {
	g := zxgraph.NewGraph()
	a := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	mid := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	b := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(a, mid, zxgraph.Simple)
	_ = g.AddEdge(mid, b, zxgraph.Hadamard)

	r := rules.IdentityRemovalRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(mid) {
		t.Fatal("expected identity spider removed")
	}
	if g.Vertex(a).EdgeCount(b, zxgraph.Hadamard) != 1 {
		t.Fatal("expected a-b joined by a single composed Hadamard edge")
	}
}

func TestHRule_DissolvesBinaryHBoxIntoHadamardEdge(t *testing.T) {
	g := zxgraph.NewGraph()
	a := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	h := g.AddVertex(0, zxgraph.HBox, phase.Zero)
	b := g.AddVertex(0, zxgraph.XSpider, phase.Zero)
	_ = g.AddEdge(a, h, zxgraph.Simple)
	_ = g.AddEdge(h, b, zxgraph.Simple)

	r := rules.HRuleRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(h) {
		t.Fatal("expected HBox dissolved")
	}
	if g.Vertex(a).EdgeCount(b, zxgraph.Hadamard) != 1 {
		t.Fatal("expected a-b joined directly by a Hadamard edge")
	}
}

func TestStateCopy_FansLeafOutToEachNeighbor(t *testing.T) {
	g := zxgraph.NewGraph()
	leaf := g.AddVertex(0, zxgraph.ZSpider, phase.Pi)
	hub := g.AddVertex(0, zxgraph.XSpider, phase.Zero)
	w1 := g.AddVertex(1, zxgraph.ZSpider, mustPhase(t, 1, 4))
	w2 := g.AddVertex(2, zxgraph.ZSpider, mustPhase(t, 1, 4))
	_ = g.AddEdge(leaf, hub, zxgraph.Simple)
	_ = g.AddEdge(hub, w1, zxgraph.Hadamard)
	_ = g.AddEdge(hub, w2, zxgraph.Simple)

	r := rules.StateCopyRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(leaf) || g.HasVertex(hub) {
		t.Fatal("expected both leaf and hub removed")
	}
	foundW1, foundW2 := false, false
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type != zxgraph.ZSpider || !v.Phase.IsPi() {
			continue
		}
		if v.HasNeighbor(w1) {
			foundW1 = true
		}
		if v.HasNeighbor(w2) {
			foundW2 = true
		}
	}
	if !foundW1 || !foundW2 {
		t.Fatal("expected a copy of the pi leaf attached to each former hub neighbor")
	}
}

func TestPivot_RedistributesPhasesAndComplementsEdges(t *testing.T) {
	g := zxgraph.NewGraph()
	u := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	v := g.AddVertex(1, zxgraph.ZSpider, phase.Pi)
	a := g.AddVertex(2, zxgraph.ZSpider, phase.Zero)
	b := g.AddVertex(3, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(u, v, zxgraph.Hadamard)
	_ = g.AddEdge(u, a, zxgraph.Hadamard)
	_ = g.AddEdge(v, b, zxgraph.Hadamard)

	r := rules.PivotRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(u) || g.HasVertex(v) {
		t.Fatal("expected both pivoted vertices removed")
	}
	if !g.Vertex(a).Phase.IsPi() {
		t.Fatalf("expected a to receive v's pi phase, got %v", g.Vertex(a).Phase)
	}
	if g.Vertex(b).Phase.IsPi() {
		t.Fatal("expected b to receive u's zero phase (no change)")
	}
	if g.Vertex(a).EdgeCount(b, zxgraph.Hadamard) != 1 {
		t.Fatal("expected a-b complemented into a new Hadamard edge")
	}
}

func TestHadamardFusion_CancelsTwoSeriesHBoxes(t *testing.T) {
	g := zxgraph.NewGraph()
	a := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	h1 := g.AddVertex(0, zxgraph.HBox, phase.Zero)
	h2 := g.AddVertex(0, zxgraph.HBox, phase.Zero)
	b := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(a, h1, zxgraph.Simple)
	_ = g.AddEdge(h1, h2, zxgraph.Simple)
	_ = g.AddEdge(h2, b, zxgraph.Simple)

	r := rules.HadamardFusionRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(h1) || g.HasVertex(h2) {
		t.Fatal("expected both HBoxes cancelled")
	}
	if g.Vertex(a).EdgeCount(b, zxgraph.Simple) != 1 {
		t.Fatal("expected a-b joined directly by a Simple edge")
	}
}

func TestBialgebra_CollapsesCompleteBipartiteBlock(t *testing.T) {
	g := zxgraph.NewGraph()
	z1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	z2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	x1 := g.AddVertex(0, zxgraph.XSpider, phase.Zero)
	x2 := g.AddVertex(1, zxgraph.XSpider, phase.Zero)
	extZ1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	extZ2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	extX1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	extX2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(z1, x1, zxgraph.Simple)
	_ = g.AddEdge(z1, x2, zxgraph.Simple)
	_ = g.AddEdge(z2, x1, zxgraph.Simple)
	_ = g.AddEdge(z2, x2, zxgraph.Simple)
	_ = g.AddEdge(z1, extZ1, zxgraph.Simple)
	_ = g.AddEdge(z2, extZ2, zxgraph.Simple)
	_ = g.AddEdge(x1, extX1, zxgraph.Simple)
	_ = g.AddEdge(x2, extX2, zxgraph.Simple)

	r := rules.BialgebraRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(z1) || g.HasVertex(z2) || g.HasVertex(x1) || g.HasVertex(x2) {
		t.Fatal("expected the whole K2,2 block removed")
	}
	var newX, newZ int = -1, -1
	for _, id := range g.Interior() {
		v := g.Vertex(id)
		if v.Type == zxgraph.XSpider && v.HasNeighbor(extZ1) && v.HasNeighbor(extZ2) {
			newX = id
		}
		if v.Type == zxgraph.ZSpider && v.HasNeighbor(extX1) && v.HasNeighbor(extX2) {
			newZ = id
		}
	}
	if newX < 0 {
		t.Fatal("expected a new X-spider wired to both former Z-spiders' outside legs")
	}
	if newZ < 0 {
		t.Fatal("expected a new Z-spider wired to both former X-spiders' outside legs")
	}
	if g.Vertex(newX).EdgeCount(newZ, zxgraph.Simple) != 1 {
		t.Fatal("expected the new X/Z spiders joined by a single Simple edge")
	}
}

func TestLocalComplementation_TogglesHadamardsAmongNeighborsAndCorrectsPhase(t *testing.T) {
	g := zxgraph.NewGraph()
	hub := g.AddVertex(0, zxgraph.ZSpider, mustPhase(t, 1, 2))
	n1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	n2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	n3 := g.AddVertex(2, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(hub, n1, zxgraph.Hadamard)
	_ = g.AddEdge(hub, n2, zxgraph.Hadamard)
	_ = g.AddEdge(hub, n3, zxgraph.Hadamard)

	r := rules.LocalComplementationRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(hub) {
		t.Fatal("expected the hub removed")
	}
	for _, pair := range [][2]int{{n1, n2}, {n1, n3}, {n2, n3}} {
		if g.Vertex(pair[0]).EdgeCount(pair[1], zxgraph.Hadamard) != 1 {
			t.Fatalf("expected a new Hadamard edge between %d and %d", pair[0], pair[1])
		}
	}
	want := mustPhase(t, 1, 2).Neg()
	for _, n := range []int{n1, n2, n3} {
		if !g.Vertex(n).Phase.Equal(want) {
			t.Fatalf("expected neighbor %d corrected to -pi/2, got %v", n, g.Vertex(n).Phase)
		}
	}
}

func TestPivotGadget_GadgetizesNonCliffordNeighborThenPivots(t *testing.T) {
	g := zxgraph.NewGraph()
	u := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	p := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	v := g.AddVertex(2, zxgraph.ZSpider, mustPhase(t, 1, 4))
	w := g.AddVertex(3, zxgraph.ZSpider, phase.Zero)
	_ = g.AddEdge(u, p, zxgraph.Hadamard)
	_ = g.AddEdge(u, v, zxgraph.Hadamard)
	_ = g.AddEdge(v, w, zxgraph.Hadamard)

	r := rules.PivotGadgetRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	before := len(g.Interior())
	r.Apply(g, matches)

	if g.HasVertex(u) {
		t.Fatal("expected u removed by the pivot")
	}
	if !g.HasVertex(v) {
		t.Fatal("expected v to survive as the gadget's phase leaf")
	}
	if !g.Vertex(v).Phase.Equal(mustPhase(t, 1, 4)) {
		t.Fatalf("expected v to keep its original T phase, got %v", g.Vertex(v).Phase)
	}
	if g.Vertex(p).EdgeCount(w, zxgraph.Hadamard) != 1 {
		t.Fatal("expected p and w newly connected through the pivoted gadget hub")
	}
	if g.Vertex(p).EdgeCount(v, zxgraph.Hadamard) != 1 {
		t.Fatal("expected p and v newly connected through the pivoted gadget hub")
	}
	// u is removed and the transient gadget hub is created then removed
	// by the same Apply call, so net interior count drops by exactly one.
	if after := len(g.Interior()); after != before-1 {
		t.Fatalf("expected interior count to drop by 1, was %d now %d", before, after)
	}
}

func TestPivotBoundary_ShieldsBoundaryThenPivots(t *testing.T) {
	g := zxgraph.NewGraph()
	in0, err := g.AddInput(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	v := g.AddVertex(1, zxgraph.ZSpider, phase.Pi)
	_ = g.AddEdge(in0, u, zxgraph.Simple)
	_ = g.AddEdge(u, v, zxgraph.Hadamard)

	r := rules.PivotBoundaryRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(u) || g.HasVertex(v) {
		t.Fatal("expected both u and v removed by the pivot")
	}
	nbs := g.Vertex(in0).Neighbors()
	if len(nbs) != 1 {
		t.Fatalf("expected the boundary to keep exactly one neighbor, got %d", len(nbs))
	}
	shield := nbs[0]
	if g.Vertex(in0).EdgeCount(shield, zxgraph.Simple) != 1 {
		t.Fatal("expected the shield joined to the boundary by the original Simple edge")
	}
	if !g.Vertex(shield).Phase.IsPi() {
		t.Fatalf("expected the shield to carry v's pi phase, got %v", g.Vertex(shield).Phase)
	}
}

func TestPhaseGadgetFusion_MergesGadgetsSharingSupport(t *testing.T) {
	g := zxgraph.NewGraph()
	s1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	s2 := g.AddVertex(1, zxgraph.ZSpider, phase.Zero)
	hub1 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	leaf1 := g.AddVertex(0, zxgraph.ZSpider, mustPhase(t, 1, 4))
	hub2 := g.AddVertex(0, zxgraph.ZSpider, phase.Zero)
	leaf2 := g.AddVertex(0, zxgraph.ZSpider, mustPhase(t, 1, 8))
	_ = g.AddEdge(hub1, s1, zxgraph.Hadamard)
	_ = g.AddEdge(hub1, s2, zxgraph.Hadamard)
	_ = g.AddEdge(hub1, leaf1, zxgraph.Hadamard)
	_ = g.AddEdge(hub2, s1, zxgraph.Hadamard)
	_ = g.AddEdge(hub2, s2, zxgraph.Hadamard)
	_ = g.AddEdge(hub2, leaf2, zxgraph.Hadamard)

	r := rules.PhaseGadgetFusionRule{}
	matches := r.FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	r.Apply(g, matches)

	if g.HasVertex(hub2) || g.HasVertex(leaf2) {
		t.Fatal("expected the losing gadget's hub and leaf removed")
	}
	if !g.HasVertex(hub1) || !g.HasVertex(leaf1) {
		t.Fatal("expected the surviving gadget's hub and leaf kept")
	}
	if !g.Vertex(leaf1).Phase.Equal(mustPhase(t, 3, 8)) {
		t.Fatalf("expected the surviving leaf's phase to be 1/4+1/8=3/8, got %v", g.Vertex(leaf1).Phase)
	}
}
