package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/digraph/core"
)

// buildWeightedTriangle returns 0->1 (4), 1->2 (1), 0->2 (10).
func buildWeightedTriangle(t *testing.T) *core.WeightedDigraph {
	t.Helper()
	g := core.NewWeightedDigraph()
	for v := core.Vertex(0); v < 3; v++ {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%d): %v", v, err)
		}
	}
	for _, e := range []core.Edge{
		{From: 0, To: 1, Cost: 4},
		{From: 1, To: 2, Cost: 1},
		{From: 0, To: 2, Cost: 10},
	} {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			t.Fatalf("AddEdge(%d,%d,%d): %v", e.From, e.To, e.Cost, err)
		}
	}
	return g
}

// costAgreement checks the three cost representations against each other
// through the public surface: Edges (successor rows), InboundEdges
// (predecessor rows), and EdgeCost (weights map).
func costAgreement(t *testing.T, g *core.WeightedDigraph) {
	t.Helper()
	for _, e := range g.Edges() {
		cost, err := g.EdgeCost(e.From, e.To)
		if err != nil {
			t.Fatalf("EdgeCost(%d,%d): %v", e.From, e.To, err)
		}
		if cost != e.Cost {
			t.Errorf("edge (%d,%d): weights=%d successor-row=%d", e.From, e.To, cost, e.Cost)
		}
		inbound, err := g.InboundEdges(e.To)
		if err != nil {
			t.Fatalf("InboundEdges(%d): %v", e.To, err)
		}
		found := false
		for _, in := range inbound {
			if in.From == e.From {
				found = true
				if in.Cost != e.Cost {
					t.Errorf("edge (%d,%d): predecessor-row=%d successor-row=%d",
						e.From, e.To, in.Cost, e.Cost)
				}
			}
		}
		if !found {
			t.Errorf("edge (%d,%d) absent from InboundEdges(%d)", e.From, e.To, e.To)
		}
	}
}

// TestWeighted_CostAgreement verifies the three-representation invariant
// after adds, overwrites, and removals.
func TestWeighted_CostAgreement(t *testing.T) {
	g := buildWeightedTriangle(t)
	costAgreement(t, g)

	if err := g.SetEdgeCost(0, 2, -3); err != nil {
		t.Fatalf("SetEdgeCost(0,2,-3): %v", err)
	}
	costAgreement(t, g)

	if cost, _ := g.EdgeCost(0, 2); cost != -3 {
		t.Errorf("EdgeCost(0,2) = %d after overwrite; want -3", cost)
	}

	g.RemoveEdge(1, 2)
	costAgreement(t, g)
}

// TestWeighted_EdgeCostErrors verifies the precondition order of the cost
// accessors: unknown vertex first, then unknown edge.
func TestWeighted_EdgeCostErrors(t *testing.T) {
	g := buildWeightedTriangle(t)

	if _, err := g.EdgeCost(0, 42); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("EdgeCost unknown vertex: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.EdgeCost(2, 0); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("EdgeCost missing edge: want ErrEdgeNotFound, got %v", err)
	}
	if err := g.SetEdgeCost(2, 0, 1); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("SetEdgeCost missing edge: want ErrEdgeNotFound, got %v", err)
	}
	if err := g.SetEdgeCost(42, 0, 1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("SetEdgeCost unknown vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestWeighted_NoPartialState asserts that a failed AddEdge leaves no trace
// in any representation.
func TestWeighted_NoPartialState(t *testing.T) {
	g := buildWeightedTriangle(t)

	if err := g.AddEdge(0, 1, 99); !errors.Is(err, core.ErrEdgeExists) {
		t.Fatalf("duplicate AddEdge: want ErrEdgeExists, got %v", err)
	}
	if cost, _ := g.EdgeCost(0, 1); cost != 4 {
		t.Errorf("EdgeCost(0,1) = %d after failed add; want original 4", cost)
	}
	if err := g.AddEdge(1, 42, 7); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("AddEdge missing endpoint: want ErrVertexNotFound, got %v", err)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d after failed adds; want 3", g.EdgeCount())
	}
}

// TestWeighted_RemoveVertexPurgesWeights verifies the cascade also drops
// weights entries, so re-adding the same edge starts from a clean slate.
func TestWeighted_RemoveVertexPurgesWeights(t *testing.T) {
	g := buildWeightedTriangle(t)

	if err := g.RemoveVertex(1); err != nil {
		t.Fatalf("RemoveVertex(1): %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d after cascade; want 1 (only 0->2)", g.EdgeCount())
	}
	if err := g.AddVertex(1); err != nil {
		t.Fatalf("re-AddVertex(1): %v", err)
	}
	// must be ErrEdgeNotFound, not a stale cached cost
	if _, err := g.EdgeCost(0, 1); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("EdgeCost(0,1) after purge: want ErrEdgeNotFound, got %v", err)
	}
	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatalf("re-AddEdge(0,1): %v", err)
	}
	if cost, _ := g.EdgeCost(0, 1); cost != 7 {
		t.Errorf("EdgeCost(0,1) = %d; want fresh 7", cost)
	}
	costAgreement(t, g)
}

// TestWeighted_EdgesSortedWithCosts verifies ordering plus cost reporting.
func TestWeighted_EdgesSortedWithCosts(t *testing.T) {
	g := buildWeightedTriangle(t)
	want := []core.Edge{
		{From: 0, To: 1, Cost: 4},
		{From: 0, To: 2, Cost: 10},
		{From: 1, To: 2, Cost: 1},
	}
	if !reflect.DeepEqual(g.Edges(), want) {
		t.Errorf("Edges = %v; want %v", g.Edges(), want)
	}
}

// TestWeighted_StringAndLabel covers the weighted text form.
func TestWeighted_StringAndLabel(t *testing.T) {
	g := core.NewWeightedDigraph()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddVertex(5)
	g.AddEdge(0, 1, -2)

	if want := "0 1 -2\n5 -1"; g.String() != want {
		t.Errorf("String = %q; want %q", g.String(), want)
	}
	if want := "WeightedDigraph(3, 1)"; g.Label() != want {
		t.Errorf("Label = %q; want %q", g.Label(), want)
	}
}

// TestWeighted_CloneAndSubgraph verifies deep copies carry costs and stay
// independent.
func TestWeighted_CloneAndSubgraph(t *testing.T) {
	g := buildWeightedTriangle(t)

	clone := g.Clone()
	clone.SetEdgeCost(0, 1, 100)
	if cost, _ := g.EdgeCost(0, 1); cost != 4 {
		t.Errorf("clone SetEdgeCost leaked: original cost = %d; want 4", cost)
	}
	costAgreement(t, clone)

	sub := g.InducedSubgraph(0, 2)
	wantEdges := []core.Edge{{From: 0, To: 2, Cost: 10}}
	if !reflect.DeepEqual(sub.Edges(), wantEdges) {
		t.Errorf("subgraph Edges = %v; want %v", sub.Edges(), wantEdges)
	}
	costAgreement(t, sub)
}

// TestWeighted_SelfLoopCost verifies loops carry costs like any other edge.
func TestWeighted_SelfLoopCost(t *testing.T) {
	g := core.NewWeightedDigraph()
	g.AddVertex(3)
	if err := g.AddEdge(3, 3, -5); err != nil {
		t.Fatalf("AddEdge(3,3,-5): %v", err)
	}
	if cost, err := g.EdgeCost(3, 3); err != nil || cost != -5 {
		t.Errorf("EdgeCost(3,3) = (%d, %v); want (-5, nil)", cost, err)
	}
	if err := g.RemoveVertex(3); err != nil {
		t.Fatalf("RemoveVertex(3): %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d; want 0", g.EdgeCount())
	}
}

// TestVertex_OrderContract pins the Compare/String contract.
func TestVertex_OrderContract(t *testing.T) {
	if core.Vertex(1).Compare(2) != -1 || core.Vertex(2).Compare(2) != 0 || core.Vertex(3).Compare(2) != 1 {
		t.Error("Compare violates the total-order contract")
	}
	if s := core.Vertex(-7).String(); s != "-7" {
		t.Errorf("String = %q; want \"-7\"", s)
	}
}
