package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/batch"
	"github.com/katalvlaran/mstbench/report"
)

func result(id int, primOps, kruskalOps int64, primMs, kruskalMs float64) batch.Result {
	edges := []batch.EdgeRecord{{From: "A", To: "B", Weight: 1}, {From: "B", To: "C", Weight: 2.5}}
	return batch.Result{
		GraphID:    batch.IntID(id),
		InputStats: batch.InputStats{Vertices: 3, Edges: 3, Components: 1, Density: 100},
		Prim: &batch.AlgorithmResult{
			MSTEdges: edges, TotalCost: 3.5, OperationsCount: primOps, ExecutionTimeMs: primMs,
		},
		Kruskal: &batch.AlgorithmResult{
			MSTEdges: edges, TotalCost: 3.5, OperationsCount: kruskalOps, ExecutionTimeMs: kruskalMs,
		},
		CostsMatch: true,
	}
}

func TestSummarize(t *testing.T) {
	results := []batch.Result{
		result(1, 10, 20, 1.0, 0.5),
		result(2, 30, 15, 0.2, 0.2),
		result(3, 7, 7, 0.1, 0.3),
		{GraphID: batch.IntID(4), Error: "batch: duplicate vertex"},
	}

	got := report.Summarize(results)
	assert.Equal(t, report.Summary{
		Graphs:          4,
		Failed:          1,
		PrimOpsWins:     1,
		KruskalOpsWins:  1,
		PrimTimeWins:    1,
		KruskalTimeWins: 1,
	}, got)
}

func TestImprovement(t *testing.T) {
	assert.InDelta(t, 50.0, report.Improvement(10, 20), 1e-12)
	assert.InDelta(t, 25.0, report.Improvement(0.75, 1), 1e-12)
	assert.Zero(t, report.Improvement(1, 0))
}

func TestPrinter_Graph(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	p.Graph(result(7, 10, 40, 0.5, 1.0))
	require.NoError(t, p.Err())

	out := buf.String()
	for _, want := range []string{
		"GRAPH 7 ANALYSIS",
		"Vertices:   3",
		"Density:    100.0%",
		"PRIM'S ALGORITHM",
		"KRUSKAL'S ALGORITHM",
		"Total Cost: 3.5",
		"A -[1]- B",
		"B -[2.5]- C",
		"Both algorithms found the same MST cost.",
		"Prim is 75.0% more efficient (operations)",
		"Prim is 50.0% faster",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrinter_GraphTieAndFailure(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	p.Graph(result(1, 5, 5, 0.3, 0.3))
	assert.NotContains(t, buf.String(), "more efficient")
	assert.NotContains(t, buf.String(), "faster")

	buf.Reset()
	p.Graph(batch.Result{GraphID: batch.StringID("bad"), Error: "batch: edge references unknown vertex"})
	assert.Contains(t, buf.String(), "GRAPH bad ANALYSIS")
	assert.Contains(t, buf.String(), "FAILED: batch: edge references unknown vertex")
	assert.NotContains(t, buf.String(), "PRIM'S ALGORITHM")
}

func TestPrinter_All(t *testing.T) {
	var buf bytes.Buffer
	err := report.New(&buf).All([]batch.Result{result(1, 10, 20, 1.0, 0.5)})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "OVERALL PERFORMANCE SUMMARY")
	assert.Contains(t, out, "Total graphs tested: 1")
	assert.Contains(t, out, "RECOMMENDATIONS")
	assert.Contains(t, out, "density > 50%")
	assert.Less(t, strings.Index(out, "GRAPH 1"), strings.Index(out, "OVERALL"))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestPrinter_StickyError(t *testing.T) {
	w := &failingWriter{}
	err := report.New(w).All([]batch.Result{result(1, 1, 2, 1, 2)})
	require.EqualError(t, err, "disk full")
	assert.Equal(t, 1, w.n)
}
