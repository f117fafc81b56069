// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (loops, multi-edges, strict endpoints).
//   - Provide contract anchors for ordering guarantees (insertion order everywhere).

package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/mstbench/core"
)

// TestGraph_AddVertex verifies empty-ID rejection, idempotence and insertion order.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	MustErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID, "AddVertex(empty)")

	MustErrorNil(t, g.AddVertex(VertexC), "AddVertex(C)")
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
	MustErrorNil(t, g.AddVertex(VertexC), "AddVertex(C) duplicate")
	MustErrorNil(t, g.AddVertex(VertexB), "AddVertex(B)")

	MustEqualStrings(t, g.Vertices(), []string{VertexC, VertexA, VertexB}, "Vertices order")
	MustEqualInt(t, g.VertexCount(), 3, "VertexCount")
	MustEqualBool(t, g.HasVertex(VertexA), true, "HasVertex(A)")
	MustEqualBool(t, g.HasVertex(VertexX), false, "HasVertex(X)")
	MustEqualBool(t, g.HasVertex(VertexEmpty), false, "HasVertex(empty)")
}

// TestGraph_VerticesIsCopy ensures callers cannot mutate the internal order.
func TestGraph_VerticesIsCopy(t *testing.T) {
	g := core.NewGraph()
	MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")

	vs := g.Vertices()
	vs[0] = VertexX

	MustEqualStrings(t, g.Vertices(), []string{VertexA}, "Vertices after caller mutation")
}

// TestGraph_AddEdge covers ID generation, auto-created endpoints and ordering.
func TestGraph_AddEdge(t *testing.T) {
	g := buildSquare(t)

	MustEqualStrings(t, g.Vertices(), []string{VertexA, VertexB, VertexC, VertexD}, "auto-created vertices")
	MustEqualStrings(t, edgeIDs(g.Edges()), []string{"e1", "e2", "e3", "e4"}, "edge IDs")
	MustEqualInt(t, g.EdgeCount(), 4, "EdgeCount")

	MustEqualBool(t, g.HasEdge(VertexA, VertexB), true, "HasEdge(A,B)")
	MustEqualBool(t, g.HasEdge(VertexB, VertexA), true, "HasEdge(B,A) undirected")
	MustEqualBool(t, g.HasEdge(VertexA, VertexC), false, "HasEdge(A,C)")
	MustEqualBool(t, g.HasEdge(VertexEmpty, VertexA), false, "HasEdge(empty,A)")

	last := g.Edges()[3]
	if last.From != VertexD || last.To != VertexA || last.Weight != Weight5 {
		t.Fatalf("edge e4 = %+v, want D-A(%v)", *last, Weight5)
	}
}

// TestGraph_AddEdge_Constraints exercises the sentinel errors of AddEdge.
func TestGraph_AddEdge_Constraints(t *testing.T) {
	t.Run("empty endpoint", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge(VertexEmpty, VertexA, Weight1)
		MustErrorIs(t, err, core.ErrEmptyVertexID, "AddEdge(empty,A)")
	})

	t.Run("loop rejected by default", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge(VertexA, VertexA, Weight1)
		MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(A,A)")
		MustEqualInt(t, g.VertexCount(), 0, "no vertex created on rejected loop")
	})

	t.Run("loop allowed", func(t *testing.T) {
		g := core.NewGraph(core.WithLoops())
		_, err := g.AddEdge(VertexA, VertexA, Weight1)
		MustErrorNil(t, err, "AddEdge(A,A)")
		nb, err := g.Neighbors(VertexA)
		MustErrorNil(t, err, "Neighbors(A)")
		MustEqualInt(t, len(nb), 1, "loop listed once")
		MustEqualBool(t, nb[0].IsLoop(), true, "IsLoop")
	})

	t.Run("parallel rejected in both orientations", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge(VertexA, VertexB, Weight1)
		MustErrorNil(t, err, "AddEdge(A,B)")
		_, err = g.AddEdge(VertexB, VertexA, Weight2)
		MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "AddEdge(B,A)")
	})

	t.Run("parallel allowed", func(t *testing.T) {
		g := core.NewGraph(core.WithMultiEdges())
		_, err := g.AddEdge(VertexA, VertexB, Weight1)
		MustErrorNil(t, err, "AddEdge(A,B)")
		_, err = g.AddEdge(VertexB, VertexA, Weight2)
		MustErrorNil(t, err, "AddEdge(B,A)")
		MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount")
	})

	t.Run("strict endpoints", func(t *testing.T) {
		g := core.NewGraph(core.WithStrictVertices())
		MustErrorNil(t, g.AddVertex(VertexA), "AddVertex(A)")
		_, err := g.AddEdge(VertexA, VertexB, Weight1)
		MustErrorIs(t, err, core.ErrVertexNotFound, "AddEdge(A,B) strict")
		MustEqualBool(t, g.HasVertex(VertexB), false, "strict graph must not create B")
	})
}

// TestGraph_Neighbors verifies incident-edge listing and the derived neighbor IDs.
func TestGraph_Neighbors(t *testing.T) {
	g := buildSquare(t)

	nb, err := g.Neighbors(VertexA)
	MustErrorNil(t, err, "Neighbors(A)")
	MustEqualStrings(t, edgeIDs(nb), []string{"e1", "e4"}, "Neighbors(A) IDs")

	ids, err := g.NeighborIDs(VertexA)
	MustErrorNil(t, err, "NeighborIDs(A)")
	MustEqualStrings(t, ids, []string{VertexB, VertexD}, "NeighborIDs(A)")

	_, err = g.Neighbors(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Neighbors(X)")
	_, err = g.Neighbors(VertexEmpty)
	MustErrorIs(t, err, core.ErrEmptyVertexID, "Neighbors(empty)")
	_, err = g.NeighborIDs(VertexX)
	MustErrorIs(t, err, core.ErrVertexNotFound, "NeighborIDs(X)")
}

// TestGraph_NeighborIDs_Dedup ensures parallel edges collapse to a single neighbor.
func TestGraph_NeighborIDs_Dedup(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge(VertexA, VertexB, Weight1)
	_, _ = g.AddEdge(VertexA, VertexB, Weight2)
	_, _ = g.AddEdge(VertexC, VertexA, Weight3)

	ids, err := g.NeighborIDs(VertexA)
	MustErrorNil(t, err, "NeighborIDs(A)")
	MustEqualStrings(t, ids, []string{VertexB, VertexC}, "NeighborIDs(A) dedup")
}

// TestEdge_Other checks walking across an edge from either side.
func TestEdge_Other(t *testing.T) {
	e := &core.Edge{ID: "e1", From: VertexA, To: VertexB, Weight: Weight1}
	if got := e.Other(VertexA); got != VertexB {
		t.Fatalf("Other(A) = %q, want B", got)
	}
	if got := e.Other(VertexB); got != VertexA {
		t.Fatalf("Other(B) = %q, want A", got)
	}
	MustEqualBool(t, e.IsLoop(), false, "IsLoop")
}

// TestGraph_ConcurrentAddEdge checks that parallel writers never lose edges or IDs.
// Goroutines report through a channel; *testing.T is used only on the test goroutine.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	errs := make(chan error, NConcurrentAdds)

	var wg sync.WaitGroup
	for i := 0; i < NConcurrentAdds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := g.AddEdge(VertexA, VertexB, Weight1)
			errs <- err
		}()
	}
	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.Edges()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		MustErrorNil(t, err, "concurrent AddEdge")
	}
	MustEqualInt(t, g.EdgeCount(), NConcurrentAdds, "EdgeCount after concurrent adds")

	seen := make(map[string]bool, NConcurrentAdds)
	for _, e := range g.Edges() {
		if seen[e.ID] {
			t.Fatalf("duplicate edge ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}
