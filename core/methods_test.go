// File: core/methods_test.go
package core

import (
	"errors"
	"reflect"
	"testing"
)

// TestAddVertex_WeightGate verifies that vertex weights are rejected on
// unweighted graphs and accepted (with stable indices) on weighted ones.
func TestAddVertex_WeightGate(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddVertex(3); !errors.Is(err, ErrBadWeight) {
		t.Fatalf("unweighted AddVertex(3): got %v; want ErrBadWeight", err)
	}
	if idx, err := g.AddVertex(0); err != nil || idx != 0 {
		t.Fatalf("AddVertex(0) = (%d, %v); want (0, nil)", idx, err)
	}

	wg := NewGraph(WithWeighted())
	for i, w := range []int64{5, -1, 0} {
		idx, err := wg.AddVertex(w)
		if err != nil || idx != i {
			t.Fatalf("weighted AddVertex(%d) = (%d, %v); want (%d, nil)", w, idx, err, i)
		}
	}
	if got := wg.VertexWeights(); !reflect.DeepEqual(got, []int64{5, -1, 0}) {
		t.Errorf("VertexWeights() = %v; want [5 -1 0]", got)
	}
}

// TestAddEdge_Validation walks every sentinel the edge path can return.
func TestAddEdge_Validation(t *testing.T) {
	g := NewGraph()
	g.AddVertices(2)

	if err := g.AddEdge(0, 2, 0); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("out-of-range endpoint: got %v; want ErrVertexNotFound", err)
	}
	if err := g.AddEdge(0, 1, 7); !errors.Is(err, ErrBadWeight) {
		t.Errorf("weight on unweighted graph: got %v; want ErrBadWeight", err)
	}
	if err := g.AddEdge(1, 1, 0); !errors.Is(err, ErrLoopNotAllowed) {
		t.Errorf("loop without WithLoops: got %v; want ErrLoopNotAllowed", err)
	}
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Fatalf("AddEdge(0,1): %v", err)
	}
	// Undirected: the mirror orientation addresses the same edge.
	if err := g.AddEdge(1, 0, 0); !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("mirror duplicate: got %v; want ErrDuplicateEdge", err)
	}
}

// TestDirected_MirrorIsDistinct verifies that directed graphs keep the two
// orientations of an arc independent.
func TestDirected_MirrorIsDistinct(t *testing.T) {
	g := NewGraph(WithDirected(true))
	g.AddVertices(2)
	if err := g.AddEdge(0, 1, 0); err != nil {
		t.Fatalf("AddEdge(0,1): %v", err)
	}
	if g.HasEdge(1, 0) {
		t.Error("HasEdge(1,0) = true before mirror arc was added")
	}
	if err := g.AddEdge(1, 0, 0); err != nil {
		t.Errorf("mirror arc in directed graph: %v", err)
	}
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges() = %d; want 2", g.NumEdges())
	}
}

// TestEdgeWeight_Lookup covers weighted lookups in both orientations.
func TestEdgeWeight_Lookup(t *testing.T) {
	g := NewGraph(WithWeighted())
	g.AddVertices(3)
	if err := g.AddEdge(0, 1, 42); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if w, ok := g.EdgeWeight(1, 0); !ok || w != 42 {
		t.Errorf("EdgeWeight(1,0) = (%d, %v); want (42, true)", w, ok)
	}
	if _, ok := g.EdgeWeight(0, 2); ok {
		t.Error("EdgeWeight(0,2) reported a missing edge as present")
	}
}

// TestClone_Isolation verifies Clone copies flags, weights and edges and
// that mutating the clone leaves the source untouched.
func TestClone_Isolation(t *testing.T) {
	g := NewGraph(WithDirected(true), WithWeighted(), WithLoops())
	g.AddVertices(3)
	g.SetVertexWeight(1, 9)
	if err := g.AddEdge(0, 1, 2); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := g.AddEdge(2, 2, 1); err != nil {
		t.Fatalf("loop AddEdge: %v", err)
	}

	c := g.Clone()
	if !c.Directed() || !c.Weighted() || !c.Loops() {
		t.Error("clone dropped configuration flags")
	}
	if !reflect.DeepEqual(c.Edges(), g.Edges()) {
		t.Errorf("clone edges = %v; want %v", c.Edges(), g.Edges())
	}

	c.AddVertex(4)
	c.AddEdge(0, 2, 5)
	if g.NumVertices() != 3 || g.NumEdges() != 2 {
		t.Errorf("mutating clone changed source: V=%d E=%d", g.NumVertices(), g.NumEdges())
	}
}
