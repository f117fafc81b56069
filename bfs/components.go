package bfs

import "github.com/katalvlaran/mstbench/core"

// Components partitions g's vertices into connected components.
// Components are ordered by their first vertex in insertion order; members
// appear in breadth-first visit order from that vertex. A nil or empty graph
// yields nil.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, nil
	}
	o := resolve(opts)
	vertices := g.Vertices()
	visited := make(map[string]bool, len(vertices))

	var out [][]string
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		w := newWalker(g, o, visited)
		if err := w.run(v); err != nil {
			return nil, err
		}
		out = append(out, w.order)
	}

	return out, nil
}

// CountComponents returns len(Components(g, opts...)).
func CountComponents(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)

	return len(comps), err
}
