package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/batch"
	"github.com/katalvlaran/mstbench/graphio"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(context.Background(), args, &out)

	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "mstbench", root.Use)

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"run", "generate", "report", "version"})
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mstbench "+Version+"\n", out)
}

func TestGenerateRunReport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	res := filepath.Join(dir, "out", "results.json")

	_, err := runCLI(t, "generate", "-o", in, "--seed", "3")
	require.NoError(t, err)
	graphs, err := graphio.ReadBatch(in)
	require.NoError(t, err)
	require.Len(t, graphs, 5)
	assert.Equal(t, "1", graphs[0].ID.String())

	out, err := runCLI(t, "run", "-i", in, "-o", res, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "GRAPH 5 ANALYSIS")
	assert.Contains(t, out, "Total graphs tested: 5")

	doc, err := graphio.ReadResults(res)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.RunID)
	require.Len(t, doc.Results, 5)
	for _, r := range doc.Results {
		assert.True(t, r.OK(), r.GraphID.String())
		assert.True(t, r.CostsMatch, r.GraphID.String())
	}

	again, err := runCLI(t, "report", res)
	require.NoError(t, err)
	assert.Contains(t, again, "OVERALL PERFORMANCE SUMMARY")
	assert.Contains(t, again, "RECOMMENDATIONS")
}

func TestRunReportsInvalidGraphs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	res := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"graphs":[
		{"id":1,"nodes":["A","B","C"],"edges":[
			{"from":"A","to":"B","weight":1},{"from":"B","to":"C","weight":2},{"from":"A","to":"C","weight":3}]},
		{"id":2,"nodes":["A"],"edges":[{"from":"A","to":"Z","weight":1}]}
	]}`), 0o644))

	out, err := runCLI(t, "run", "-i", in, "-o", res, "--report=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, batch.ErrGraphFailed)
	assert.Empty(t, out)

	doc, err := graphio.ReadResults(res)
	require.NoError(t, err)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, 3.0, doc.Results[0].Kruskal.TotalCost)
	assert.Contains(t, doc.Results[1].Error, "unknown vertex")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "mstbench.yaml")
	out := filepath.Join(dir, "gen.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
generate:
  output: `+out+`
  id_scheme: numeric
  weights: {distribution: constant, value: 2}
  shapes:
    - {topology: star, vertices: 4}
`), 0o644))

	_, err := runCLI(t, "--config", cfgPath, "generate")
	require.NoError(t, err)

	graphs, err := graphio.ReadBatch(out)
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, []string{"0", "1", "2", "3"}, graphs[0].Nodes)
	require.Len(t, graphs[0].Edges, 3)
	assert.Equal(t, 2.0, graphs[0].Edges[0].Weight)
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := runCLI(t, "run", "--workers", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processor.workers")

	_, err = runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.Error(t, err)
}
