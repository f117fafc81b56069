package core_test

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ExampleGraph_Vertices shows that vertices keep the order they were supplied in,
// which is what makes Vertices()[0] a stable default start vertex.
func ExampleGraph_Vertices() {
	g := core.NewGraph(core.WithStrictVertices())
	for _, id := range []string{"Depot", "North", "South"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("Depot", "South", 4)
	_, _ = g.AddEdge("North", "Depot", 2.5)

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s %s-%s %.1f\n", e.ID, e.From, e.To, e.Weight)
	}
	// Output:
	// [Depot North South]
	// e1 Depot-South 4.0
	// e2 North-Depot 2.5
}
