// Package bfs partitions a core.Graph into connected components with a
// breadth-first sweep. The batch processor uses it for the Components input
// statistic.
//
// Determinism
//
//	core.Graph enumerates vertices and neighbours in insertion order, so the
//	visit sequence and the component order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//	ErrNeighbors, or the context error when WithContext is cancelled.
package bfs
