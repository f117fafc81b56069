// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() returns incident edges in insertion order.
//   - NeighborIDs() returns unique IDs in first-seen order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

// Neighbors returns all edges incident to the vertex id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj read locks (in that order) for a consistent snapshot.
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the adjacency bucket.
//
// Behavior highlights:
//   - Self-loops appear once, parallel edges appear once each.
//   - Returns pointers to live catalog edges (read-only by convention).
//
// Complexity:
//   - Time O(d), Space O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	out := make([]*Edge, len(bucket))
	copy(out, bucket)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, in the order they
// were first connected. A self-loop lists id itself.
//
// Errors: same as Neighbors.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var other string
	for _, e := range edges {
		other = e.Other(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}

	return out, nil
}
