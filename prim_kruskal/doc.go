// Package prim_kruskal provides two algorithms for computing the minimum
// spanning tree (MST), or forest, of an undirected, weighted *core.Graph:
// Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices in V and whose total weight is minimal.
//     On a disconnected graph the same greedy rules yield a minimum spanning
//     forest: one MST per component, |V| − k edges for k components.
//
//   - Why two algorithms?
//     They reach the same total weight by different routes, which makes them a
//     natural pair for comparing operation counts and running time on one input.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: stable sort all edges by weight, then scan from lightest to heaviest,
//     keeping an edge iff a unionfind.DisjointSet reports that it joins two sets.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, opts ...Option) (Result, error)
//
//   - Strategy: grow a tree from a start vertex, repeatedly taking the lightest
//     frontier edge from a binary min-heap (lazy deletion of stale entries).
//     When the heap drains before all vertices are reached, Prim restarts from
//     the next unvisited vertex, unless WithSingleTree is given.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Determinism
//
//   - Vertices and edges are enumerated in insertion order.
//   - Kruskal sorts stably, so equal weights keep edge ID order.
//   - Prim breaks weight ties by push order (FIFO).
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil.
//   - core.ErrVertexNotFound (Prim only): WithRoot names an unknown vertex.
//   - ErrDisconnected: only under WithRequireConnected.
//   - ErrUnknownMethod (Compute only).
//
// An empty graph and a single vertex are not errors: both give an empty Result.
//
// Instrumentation
//
// WithCounter accepts any opcount.Counter. The counts describe where each
// algorithm spends its steps (sort, find, union, push, pop, visit, compare,
// select); their exact values are not part of the contract.
package prim_kruskal
