package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/katalvlaran/mstbench/bfs"
	"github.com/katalvlaran/mstbench/core"
)

// TestComponents_BreadthFirstOrder checks members are listed by hop distance.
func TestComponents_BreadthFirstOrder(t *testing.T) {
	// A–B–C–D–A, weights are ignored
	g := core.NewGraph()
	g.AddEdge("A", "B", 9)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 4)
	g.AddEdge("D", "A", 2)

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]string{{"A", "B", "D", "C"}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}
}

// TestComponents_Cancelled stops the sweep once the context is done.
func TestComponents_Cancelled(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Components(g, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
	if _, err := bfs.CountComponents(g, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled count: want context.Canceled, got %v", err)
	}

	n, err := bfs.CountComponents(g, bfs.WithContext(context.Background()))
	if err != nil || n != 1 {
		t.Errorf("live context: got %d, %v; want 1, nil", n, err)
	}
}

// TestComponents covers isolated vertices, loops and ordering.
func TestComponents(t *testing.T) {
	cases := []struct {
		name  string
		build func() *core.Graph
		want  [][]string
	}{
		{"Nil", func() *core.Graph { return nil }, nil},
		{"Empty", func() *core.Graph { return core.NewGraph() }, nil},
		{
			"Connected",
			func() *core.Graph {
				g := core.NewGraph()
				g.AddEdge("A", "B", 1)
				g.AddEdge("B", "C", 1)
				return g
			},
			[][]string{{"A", "B", "C"}},
		},
		{
			"IslandsAndLoop",
			func() *core.Graph {
				g := core.NewGraph(core.WithLoops())
				g.AddVertex("X")
				g.AddEdge("A", "B", 1)
				g.AddEdge("C", "C", 1)
				g.AddEdge("D", "A", 1)
				return g
			},
			[][]string{{"X"}, {"A", "B", "D"}, {"C"}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Components(tc.build())
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Components = %v; want %v", got, tc.want)
			}
			n, _ := bfs.CountComponents(tc.build())
			if n != len(tc.want) {
				t.Errorf("CountComponents = %d; want %d", n, len(tc.want))
			}
		})
	}
}
