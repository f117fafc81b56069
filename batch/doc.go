// Package batch compares Prim and Kruskal over a batch of input graphs.
//
// For each GraphInput the Processor validates the node and edge lists,
// builds a core.Graph, counts its connected components, then runs Prim and
// Kruskal one after the other. Each algorithm gets its own opcount.Tally and
// is timed with stopwatch.Measure. The Result records the MST edges, total
// cost, operation counts and elapsed milliseconds of both, plus whether the
// two costs agree.
//
// Invalid graphs do not stop the batch: their Result carries an Error message
// and Process returns an error joining one ErrGraphFailed per bad graph.
//
// Graphs may be processed concurrently with WithWorkers; results always come
// back in input order.
package batch
