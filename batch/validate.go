package batch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstbench/core"
)

// Validate checks a GraphInput before any algorithm runs: node IDs must be
// non-empty and unique, every edge endpoint must be a listed node, and every
// weight must be finite. The first problem found is returned.
func Validate(in GraphInput) error {
	nodes := make(map[string]struct{}, len(in.Nodes))
	for i, id := range in.Nodes {
		if id == "" {
			return fmt.Errorf("%w: nodes[%d]", ErrEmptyVertexID, i)
		}
		if _, dup := nodes[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
		}
		nodes[id] = struct{}{}
	}
	for i, e := range in.Edges {
		if _, ok := nodes[e.From]; !ok {
			return fmt.Errorf("%w: edges[%d].from %q", ErrUnknownVertex, i, e.From)
		}
		if _, ok := nodes[e.To]; !ok {
			return fmt.Errorf("%w: edges[%d].to %q", ErrUnknownVertex, i, e.To)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edges[%d]", ErrInvalidWeight, i)
		}
	}

	return nil
}

// Graph validates in and builds the corresponding core.Graph. Vertices and
// edges keep input order. Self-loops and parallel edges are accepted; the MST
// builders ignore loops and pick the lightest parallel edge.
func (in GraphInput) Graph() (*core.Graph, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}
	g := core.NewGraph(core.WithStrictVertices(), core.WithLoops(), core.WithMultiEdges())
	for _, id := range in.Nodes {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("batch: add vertex %q: %w", id, err)
		}
	}
	for i, e := range in.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("batch: add edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph converts g into a GraphInput with the given ID, keeping vertex
// and edge order.
func FromGraph(id GraphID, g *core.Graph) GraphInput {
	in := GraphInput{ID: id, Nodes: g.Vertices()}
	edges := g.Edges()
	in.Edges = make([]EdgeInput, len(edges))
	for i, e := range edges {
		in.Edges[i] = EdgeInput{From: e.From, To: e.To, Weight: e.Weight}
	}

	return in
}
