// Package mstbench compares Prim's and Kruskal's minimum spanning tree
// algorithms over batches of weighted undirected graphs.
//
// What is inside?
//
//	core/          : thread-safe undirected weighted Graph with ordered vertices & edge IDs
//	unionfind/     : disjoint-set forest (union by rank, path compression)
//	prim_kruskal/  : Kruskal (sorted edges + union-find) and Prim (binary heap, forest restart)
//	bfs/           : breadth-first connected-component sweep
//	opcount/       : operation counters plugged into the algorithms
//	stopwatch/     : scoped timing that survives panics
//	builder/       : seeded synthetic graphs (path, cycle, star, wheel, complete, grid, random)
//	batch/         : validation, per-graph comparison, worker pool
//	graphio/       : JSON/YAML batch documents & JSON result documents
//	report/        : console comparison report, summary & recommendations
//	cmd/mstbench/  : the CLI (run, generate, report, version)
//
// Every graph of a batch is validated, turned into a core.Graph and handed
// to both algorithms one after the other. Each run gets its own operation
// tally and stopwatch, so the result records cost, counted operations and
// elapsed time side by side:
//
//	    A──1──B
//	    │ ╲   │
//	    4  3  2
//	    │   ╲ │
//	    D──5──C
//
//	Kruskal: A-B(1) B-C(2) A-D(4)   total 7
//	Prim:    A-B(1) B-C(2) A-D(4)   total 7
//
// Both algorithms always agree on the total weight. On a disconnected graph
// they return a minimum spanning forest; Prim restarts in every component
// unless asked to stop after the first tree.
//
// Quick start:
//
//	go install github.com/katalvlaran/mstbench/cmd/mstbench@latest
//	mstbench generate -o input.json
//	mstbench run -i input.json -o output.json
package mstbench
