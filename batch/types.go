package batch

import (
	"errors"
	"math"

	"github.com/katalvlaran/mstbench/core"
)

// Sentinel errors for batch validation and processing.
var (
	// ErrEmptyVertexID indicates a node list entry that is the empty string.
	ErrEmptyVertexID = errors.New("batch: empty vertex id")

	// ErrDuplicateVertex indicates a node listed twice.
	ErrDuplicateVertex = errors.New("batch: duplicate vertex")

	// ErrUnknownVertex indicates an edge endpoint missing from the node list.
	ErrUnknownVertex = errors.New("batch: edge references unknown vertex")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("batch: edge weight is not finite")

	// ErrGraphFailed wraps every per-graph failure in the error returned by Process.
	ErrGraphFailed = errors.New("batch: graph failed")
)

// GraphInput is one graph of an input batch.
type GraphInput struct {
	ID    GraphID     `json:"id" yaml:"id"`
	Nodes []string    `json:"nodes" yaml:"nodes"`
	Edges []EdgeInput `json:"edges" yaml:"edges"`
}

// EdgeInput is one undirected weighted edge of a GraphInput.
type EdgeInput struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// EdgeRecord is one MST edge in a Result.
type EdgeRecord struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// InputStats describes a graph before any MST is computed.
type InputStats struct {
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	Components int     `json:"components"`
	Density    float64 `json:"density"`
}

// AlgorithmResult is the outcome of one MST algorithm on one graph.
type AlgorithmResult struct {
	MSTEdges        []EdgeRecord     `json:"mst_edges"`
	TotalCost       float64          `json:"total_cost"`
	OperationsCount int64            `json:"operations_count"`
	ExecutionTimeMs float64          `json:"execution_time_ms"`
	Operations      map[string]int64 `json:"operations,omitempty"`
}

// Result is the comparison record for one graph. On failure Error is set and
// the algorithm sections are nil.
type Result struct {
	GraphID    GraphID          `json:"graph_id"`
	InputStats InputStats       `json:"input_stats"`
	Prim       *AlgorithmResult `json:"prim,omitempty"`
	Kruskal    *AlgorithmResult `json:"kruskal,omitempty"`
	CostsMatch bool             `json:"costs_match"`
	Error      string           `json:"error,omitempty"`
}

// OK reports whether both algorithms ran.
func (r Result) OK() bool { return r.Error == "" && r.Prim != nil && r.Kruskal != nil }

// Density returns edges as a percentage of the simple-graph maximum
// v(v-1)/2, rounded to one decimal. Graphs with fewer than two vertices have
// density 0.
func Density(vertices, edges int) float64 {
	if vertices < 2 {
		return 0
	}
	maxEdges := float64(vertices) * float64(vertices-1) / 2

	return math.Round(float64(edges)*100/maxEdges*10) / 10
}

// costTolerance is the relative tolerance under which two float sums of the
// same edge weights in different orders are considered equal.
const costTolerance = 1e-9

// CostsEqual reports whether two MST totals agree within floating-point tolerance.
func CostsEqual(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= costTolerance*scale
}

func edgeRecords(edges []core.Edge) []EdgeRecord {
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}
