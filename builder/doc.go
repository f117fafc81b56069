// SPDX-License-Identifier: MIT

// Package builder generates deterministic weighted graphs for benchmarking
// and testing the MST builders.
//
// A Constructor is a closure that mutates a *core.Graph under a resolved
// configuration. BuildGraph creates the graph, resolves BuilderOptions and
// runs constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(1, 20)},
//	    builder.RandomConnected(50, 100),
//	)
//
// Topologies:
//
//	Path(n), Cycle(n), Star(n), Wheel(n), Complete(n), Grid(rows, cols)
//	RandomSparse(n, p)        G(n,p); may be disconnected
//	RandomConnected(n, extra)  random tree plus extra edges; always connected
//
// Shape maps a topology name and size parameters to a Constructor for
// configuration-driven callers.
//
// Options:
//
//	WithSeed / WithRand            RNG for stochastic constructors and weights
//	WithWeightFn and With*Weight   edge weight distribution (default constant 1)
//	WithIDScheme, WithSymbNumb,
//	WithExcelColumnIDs             vertex naming (default "0","1",...)
//
// Determinism: the same options, seed and constructor order always yield the
// same vertices, edges, edge order and weights.
package builder
