// Package core defines the central Graph and Edge types, and provides
// thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be shared between
// goroutines once built.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// From and To carry the orientation the edge was supplied with; algorithms
// treat them as an unordered pair and use Other to walk across the edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as supplied.
	From string

	// To is the second endpoint as supplied.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to v.
// For a self-loop both endpoints are v. If v is not an endpoint, From is returned.
func (e *Edge) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// IsLoop reports whether both endpoints of e are the same vertex.
func (e *Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithStrictVertices makes AddEdge reject endpoints that were not added
// with AddVertex beforehand (ErrVertexNotFound).
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects order and index; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards order, index
	muEdgeAdj sync.RWMutex // guards edges, adjacency

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	strict     bool // AddEdge never creates vertices

	// Storage
	nextEdgeID uint64         // atomic edge ID generator
	order      []string       // vertex IDs in insertion order
	index      map[string]int // vertex ID → position in order
	edges      []*Edge        // edges in insertion order

	// adjacency[v] holds every edge incident to v in insertion order.
	// Self-loops are stored once.
	adjacency map[string][]*Edge

	// pairs counts edges per unordered endpoint pair for the multi-edge check.
	pairs map[pairKey]int
}

// pairKey is an unordered endpoint pair with a <= b.
type pairKey struct{ a, b string }

// newPairKey normalizes (u,v) so that both orientations map to one key.
func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{a: u, b: v}
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph has no loops, no multi-edges and auto-creates
// edge endpoints.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:     make(map[string]int),
		adjacency: make(map[string][]*Edge),
		pairs:     make(map[pairKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
