package prim_kruskal

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/opcount"
	"github.com/katalvlaran/mstbench/unionfind"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
// It scans edges in ascending weight and keeps each edge whose endpoints are not
// yet connected, as decided by a unionfind.DisjointSet.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : WithRequireConnected was given and the graph has more than one component.
//
// Steps:
//  1. Validate graph != nil; take Vertices() in insertion order.
//  2. Collect Edges() (insertion order, i.e. edge ID order).
//  3. Stable sort by ascending weight, so equal weights keep edge ID order.
//  4. Build a disjoint set over all vertices.
//  5. For each edge: skip self-loops; if Union(u,v) merged two sets, accept it.
//  6. Stop early once |V|-1 edges are accepted.
//
// Counters: OpSort += E·⌈log2 E⌉ once, OpCompare per edge examined,
// OpFind/OpUnion from the disjoint set, OpSelect per accepted edge.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(graph *core.Graph, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	// 1. Validate.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	n := len(vertices)

	// 2-3. Sorted working copy of the edge list.
	edges := graph.Edges()
	o.Counter.Add(opcount.OpSort, sortCost(len(edges)))
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint set shares the caller's counter.
	ds := unionfind.New(vertices, unionfind.WithCounter(o.Counter))

	// 5-6. Greedy scan.
	res := Result{Edges: make([]core.Edge, 0, max(n-1, 0))}
	for _, e := range edges {
		if n > 0 && len(res.Edges) == n-1 {
			break
		}
		o.Counter.Add(opcount.OpCompare, 1)
		if e.IsLoop() {
			continue
		}
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			// Edge endpoints are always graph vertices; this is a broken graph.
			return Result{}, fmt.Errorf("prim_kruskal: kruskal edge %s: %w", e.ID, err)
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, *e)
		res.TotalWeight += e.Weight
		o.Counter.Add(opcount.OpSelect, 1)
	}

	return finish(res, n, o)
}

// sortCost estimates comparisons for sorting n items: n·⌈log2 n⌉.
func sortCost(n int) int64 {
	if n < 2 {
		return 0
	}

	return int64(n) * int64(bits.Len(uint(n-1)))
}
