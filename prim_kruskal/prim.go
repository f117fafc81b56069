package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/opcount"
)

// Prim computes the minimum spanning forest of an undirected, weighted graph
// by growing a tree outwards from a start vertex using a min-heap of candidate edges.
//
// The start vertex is WithRoot(id) or, by default, the first vertex in
// insertion order. When the start vertex's component is exhausted, Prim
// restarts from the next unvisited vertex in insertion order until every
// vertex is covered, yielding the same forest cost as Kruskal. WithSingleTree
// disables the restart.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil.
//   - core.ErrVertexNotFound : WithRoot names a vertex not in the graph.
//   - ErrDisconnected        : WithRequireConnected was given and the graph has more than one component.
//
// Steps:
//  1. Validate graph and root; empty graph → empty Result.
//  2. Visit root: mark it, push every edge to an unvisited neighbour.
//  3. While the heap is non-empty and vertices remain:
//     a. Pop the lightest candidate (FIFO among equal weights).
//     b. If its far endpoint is visited, drop it (lazy deletion).
//     c. Otherwise accept it, oriented tree side → new vertex, and visit the new vertex.
//  4. Unless SingleTree, repeat 2-3 from the next unvisited vertex.
//
// Counters: OpVisit per vertex marked, OpPush/OpPop per heap operation,
// OpCompare per neighbour examined and per popped candidate, OpSelect per accepted edge.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	// 1. Validate.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	n := len(vertices)
	if o.Root != "" && !graph.HasVertex(o.Root) {
		return Result{}, fmt.Errorf("prim_kruskal: root %q: %w", o.Root, core.ErrVertexNotFound)
	}
	if n == 0 {
		return finish(Result{Edges: []core.Edge{}}, 0, o)
	}
	root := o.Root
	if root == "" {
		root = vertices[0]
	}

	w := &primWalker{
		graph:   graph,
		counter: o.Counter,
		visited: make(map[string]bool, n),
		res:     Result{Edges: make([]core.Edge, 0, n-1)},
	}

	// 2-3. First tree from root.
	if err := w.grow(root, n); err != nil {
		return Result{}, err
	}

	// 4. Remaining components, in insertion order.
	if !o.SingleTree {
		for _, v := range vertices {
			if len(w.visited) == n {
				break
			}
			if w.visited[v] {
				continue
			}
			if err := w.grow(v, n); err != nil {
				return Result{}, err
			}
		}
	}

	return finish(w.res, n, o)
}

// primWalker holds the state shared by every tree Prim grows.
type primWalker struct {
	graph   *core.Graph
	counter opcount.Counter
	visited map[string]bool
	pq      frontier
	seq     uint64
	res     Result
}

// grow spans the component containing root.
func (w *primWalker) grow(root string, n int) error {
	w.pq = w.pq[:0]
	if err := w.visit(root); err != nil {
		return err
	}
	for w.pq.Len() > 0 && len(w.visited) < n {
		c := heap.Pop(&w.pq).(candidate)
		w.counter.Add(opcount.OpPop, 1)
		w.counter.Add(opcount.OpCompare, 1)
		if w.visited[c.to] {
			continue
		}
		w.res.Edges = append(w.res.Edges, core.Edge{ID: c.edge.ID, From: c.from, To: c.to, Weight: c.edge.Weight})
		w.res.TotalWeight += c.edge.Weight
		w.counter.Add(opcount.OpSelect, 1)
		if err := w.visit(c.to); err != nil {
			return err
		}
	}

	return nil
}

// visit marks v and pushes its edges towards unvisited vertices.
func (w *primWalker) visit(v string) error {
	w.visited[v] = true
	w.counter.Add(opcount.OpVisit, 1)

	incident, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %q: %w", v, err)
	}
	for _, e := range incident {
		to := e.Other(v)
		w.counter.Add(opcount.OpCompare, 1)
		if w.visited[to] {
			continue
		}
		w.seq++
		heap.Push(&w.pq, candidate{edge: e, from: v, to: to, seq: w.seq})
		w.counter.Add(opcount.OpPush, 1)
	}

	return nil
}

// candidate is a frontier entry: edge reaching to from the tree vertex from.
type candidate struct {
	edge     *core.Edge
	from, to string
	seq      uint64
}

// frontier implements heap.Interface as a min-heap ordered by weight, then by
// push sequence so equal weights pop in FIFO order.
type frontier []candidate

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
