package bfs

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// walker holds the queue of one breadth-first sweep. visited is shared
// between the sweeps of a Components call.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []string
	visited map[string]bool
	order   []string
}

func newWalker(g *core.Graph, o Options, visited map[string]bool) *walker {
	return &walker{graph: g, opts: o, visited: visited}
}

// run visits every vertex reachable from start, in non-decreasing hop order.
func (w *walker) run(start string) error {
	w.visit(start)
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)

		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.visit(nbr)
			}
		}
	}

	return nil
}

func (w *walker) visit(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}
