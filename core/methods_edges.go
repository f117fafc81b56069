// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (equivalently, by numeric Edge.ID).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Ensure endpoints: AddVertex for lenient graphs, HasVertex for strict graphs.
//  3. Lock muEdgeAdj, check the multi-edge constraint on the unordered pair.
//  4. Generate eid atomically, store the edge, link both adjacency buckets
//     (self-loops are linked once).
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound (strict only), ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if g.strict {
		if !g.HasVertex(from) || !g.HasVertex(to) {
			return "", ErrVertexNotFound
		}
	} else {
		if err := g.AddVertex(from); err != nil {
			return "", err
		}
		if err := g.AddVertex(to); err != nil {
			return "", err
		}
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := newPairKey(from, to)
	if !g.allowMulti && g.pairs[key] > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}

	g.edges = append(g.edges, e)
	g.pairs[key]++
	g.adjacency[from] = append(g.adjacency[from], e)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return eid, nil
}

// HasEdge reports whether at least one edge joins u and v (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.pairs[newPairKey(u, v)] > 0
}

// Edges returns all edges in insertion order.
// The returned slice is fresh; the *Edge values are shared and read-only by convention.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E| (self-loops and parallel edges included).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next edge identifier "e<N>".
// Caller must hold muEdgeAdj; the counter itself is atomic.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
