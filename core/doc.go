// Package core provides the in-memory, undirected, weighted Graph that every
// mstbench algorithm runs on.
//
// The Graph G = (V,E) keeps a deliberately small surface:
//
//   - Undirected edges with float64 weights (MST inputs are never directed)
//   - Insertion-ordered vertices: Vertices()[0] is the first vertex supplied,
//     which Prim uses as its default start vertex
//   - Insertion-ordered edges with monotonic IDs ("e1", "e2", …): Kruskal's
//     stable sort relies on this to break weight ties by input order
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops) are opt-in
//   - Strict endpoints (WithStrictVertices): AddEdge refuses unknown vertices
//     instead of creating them, which is how batch inputs are validated
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(u,v) or AddEdge(v,u) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithStrictVertices()
//	    AddEdge with an endpoint that was never added → ErrVertexNotFound.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1), idempotent
//	HasVertex(id string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)†
//	HasEdge(u, v string) bool               // O(1)
//
//	// Query
//	Vertices() []string                     // O(V), insertion order
//	Edges() []*Edge                         // O(E), insertion order
//	Neighbors(id string) ([]*Edge, error)   // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)// O(d), unique, first-seen order
//	VertexCount() int, EdgeCount() int      // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized: atomic ID generation + map and slice appends.
package core
