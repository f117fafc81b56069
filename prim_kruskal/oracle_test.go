package prim_kruskal_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	algo "github.com/twmb/algoimpl/go/graph"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// oracleWeight computes the MST weight of a connected integer-weighted g with
// an independent implementation.
func oracleWeight(t *testing.T, g *core.Graph) int {
	t.Helper()

	og := algo.New(algo.Undirected)
	nodes := make(map[string]algo.Node, g.VertexCount())
	for _, id := range g.Vertices() {
		nodes[id] = og.MakeNode()
	}
	for _, e := range g.Edges() {
		require.NoError(t, og.MakeEdgeWeight(nodes[e.From], nodes[e.To], int(e.Weight)))
	}

	sum := 0
	for _, e := range og.MinimumSpanningTree() {
		sum += e.Weight
	}

	return sum
}

// sortedWeights returns the MST edge weights in ascending order. Every MST of
// a graph has the same weight multiset.
func sortedWeights(edges []core.Edge) []float64 {
	ws := make([]float64, len(edges))
	for i, e := range edges {
		ws[i] = e.Weight
	}
	sort.Float64s(ws)

	return ws
}

// TestAgainstOracle_TextbookGraph uses the nine-vertex graph from CLRS
// (MST weight 37).
func TestAgainstOracle_TextbookGraph(t *testing.T) {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 4}, {"a", "h", 8}, {"b", "c", 8}, {"b", "h", 11},
		{"c", "d", 7}, {"c", "f", 4}, {"c", "i", 2}, {"d", "e", 9},
		{"d", "f", 14}, {"e", "f", 10}, {"f", "g", 2}, {"g", "h", 1},
		{"g", "i", 6}, {"h", "i", 7},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	require.Equal(t, 37, oracleWeight(t, g))
	for _, alg := range algorithms {
		res, err := alg.run(g)
		require.NoError(t, err, alg.name)
		require.Equal(t, 37.0, res.TotalWeight, alg.name)
		require.Len(t, res.Edges, 8, alg.name)
	}
}

func TestAgainstOracle_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 9)},
			builder.RandomConnected(40, 80))
		require.NoError(t, err)

		want := float64(oracleWeight(t, g))
		kr, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		pr, err := prim_kruskal.Prim(g)
		require.NoError(t, err)

		require.Equal(t, want, kr.TotalWeight, "seed %d", seed)
		require.Equal(t, want, pr.TotalWeight, "seed %d", seed)
		if diff := cmp.Diff(sortedWeights(kr.Edges), sortedWeights(pr.Edges)); diff != "" {
			t.Fatalf("seed %d: weight multisets differ (-kruskal +prim):\n%s", seed, diff)
		}
	}
}
