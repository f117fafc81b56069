package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/opcount"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a 4-vertex "letter envelope" graph.
// Edges: A-B (4), A-C (1), C-B (2), B-D (3), C-D (5), D-A (4).
// The MST has 3 edges: {A–C, C–B, B–D} with total weight = 6.
func ExampleKruskal() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "B", 2)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 5)
	g.AddEdge("D", "A", 4)

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", res.TotalWeight)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 6, Edges: A-C C-B B-D
}

// ExamplePrim demonstrates Prim's algorithm on a 5-vertex pentagon graph.
// Edges: A–B (1), A–E (12), B–C (2), C–D (3), D–E (5).
// The MST is {A–B, B–C, C–D, D–E} with total weight = 11.
func ExamplePrim() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "E", 12)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("D", "E", 5)

	res, err := prim_kruskal.Prim(g, prim_kruskal.WithRoot("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: ", res.TotalWeight)
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s-%s", e.From, e.To)
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExamplePrim_forest shows the spanning forest of a disconnected graph.
func ExamplePrim_forest() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("C", "D", 3)

	res, _ := prim_kruskal.Prim(g)
	fmt.Println(len(res.Edges), res.TotalWeight, res.Components)

	_, err := prim_kruskal.Prim(g, prim_kruskal.WithRequireConnected())
	fmt.Println(err)
	// Output:
	// 2 5 2
	// prim_kruskal: graph is disconnected: 2 components
}

// ExampleWithCounter counts Kruskal's union-find work on a triangle.
func ExampleWithCounter() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)

	tally := opcount.NewTally()
	_, _ = prim_kruskal.Kruskal(g, prim_kruskal.WithCounter(tally))
	fmt.Println(tally.Count(opcount.OpUnion), tally.Count(opcount.OpSelect))
	// Output: 2 2
}
