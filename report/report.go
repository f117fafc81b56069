// Package report prints a human-readable comparison of batch results.
//
// A report has three parts: one section per graph (input statistics, both
// MSTs, cost/operations/time comparison), an overall summary counting how
// often each algorithm won, and a fixed set of recommendations.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/mstbench/batch"
)

const (
	rule      = "==========================================================="
	thinRule  = "-----------------------------------------------------------"
	namePrim  = "Prim"
	nameKrusk = "Kruskal"
)

// Printer writes report sections to an io.Writer. The first write error is
// kept and returned by Err; later writes become no-ops.
type Printer struct {
	w   io.Writer
	err error
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// Write implements io.Writer so the Printer can sit under a tabwriter.
func (p *Printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err

	return n, err
}

func (p *Printer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p, format, args...)
}

func (p *Printer) banner(title string) {
	p.printf("%s\n%s\n%s\n", rule, center(title, len(rule)), rule)
}

func (p *Printer) heading(title string) {
	p.printf("%s\n %s\n%s\n", thinRule, title, thinRule)
}

// All prints every graph section, the summary and the recommendations.
func (p *Printer) All(results []batch.Result) error {
	for _, r := range results {
		p.Graph(r)
	}
	p.Summary(results)
	p.Recommendations()

	return p.err
}

// Graph prints the analysis of one graph.
func (p *Printer) Graph(r batch.Result) {
	p.banner(fmt.Sprintf("GRAPH %s ANALYSIS", r.GraphID))
	p.printf("Input Statistics:\n")
	p.printf("   Vertices:   %d\n", r.InputStats.Vertices)
	p.printf("   Edges:      %d\n", r.InputStats.Edges)
	p.printf("   Components: %d\n", r.InputStats.Components)
	p.printf("   Density:    %s%%\n\n", strconv.FormatFloat(r.InputStats.Density, 'f', 1, 64))

	if !r.OK() {
		p.printf("FAILED: %s\n\n", r.Error)
		return
	}

	p.heading("PRIM'S ALGORITHM")
	p.algorithm(r.Prim)
	p.heading("KRUSKAL'S ALGORITHM")
	p.algorithm(r.Kruskal)

	p.heading("PERFORMANCE COMPARISON")
	p.comparison(r)
	p.printf("\n")
}

func (p *Printer) algorithm(a *batch.AlgorithmResult) {
	p.printf("   Total Cost: %s\n", formatCost(a.TotalCost))
	p.printf("   Operations: %d\n", a.OperationsCount)
	p.printf("   Time:       %.2f ms\n", a.ExecutionTimeMs)
	p.printf("   MST Edges:\n")
	for _, e := range a.MSTEdges {
		p.printf("      %s -[%s]- %s\n", e.From, formatCost(e.Weight), e.To)
	}
	p.printf("\n")
}

func (p *Printer) comparison(r batch.Result) {
	tw := tabwriter.NewWriter(p, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "   \t%s\t%s\n", namePrim, nameKrusk)
	fmt.Fprintf(tw, "   Total cost\t%s\t%s\n", formatCost(r.Prim.TotalCost), formatCost(r.Kruskal.TotalCost))
	fmt.Fprintf(tw, "   Operations\t%d\t%d\n", r.Prim.OperationsCount, r.Kruskal.OperationsCount)
	fmt.Fprintf(tw, "   Time (ms)\t%.2f\t%.2f\n", r.Prim.ExecutionTimeMs, r.Kruskal.ExecutionTimeMs)
	_ = tw.Flush()
	p.printf("\n")

	if r.CostsMatch {
		p.printf("   Both algorithms found the same MST cost.\n")
	} else {
		p.printf("   MST costs differ.\n")
	}
	if name, pct, ok := winner(float64(r.Prim.OperationsCount), float64(r.Kruskal.OperationsCount)); ok {
		p.printf("   %s is %.1f%% more efficient (operations)\n", name, pct)
	}
	if name, pct, ok := winner(r.Prim.ExecutionTimeMs, r.Kruskal.ExecutionTimeMs); ok {
		p.printf("   %s is %.1f%% faster\n", name, pct)
	}
}

// Summary prints the overall win counts and returns them.
func (p *Printer) Summary(results []batch.Result) Summary {
	s := Summarize(results)

	p.banner("OVERALL PERFORMANCE SUMMARY")
	p.printf("Total graphs tested: %d\n", s.Graphs)
	if s.Failed > 0 {
		p.printf("Failed graphs:       %d\n", s.Failed)
	}
	p.printf("\n")

	tw := tabwriter.NewWriter(p, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "   Wins\t%s\t%s\n", namePrim, nameKrusk)
	fmt.Fprintf(tw, "   Operations\t%d\t%d\n", s.PrimOpsWins, s.KruskalOpsWins)
	fmt.Fprintf(tw, "   Execution time\t%d\t%d\n", s.PrimTimeWins, s.KruskalTimeWins)
	_ = tw.Flush()
	p.printf("\n")

	return s
}

// Recommendations prints guidance on choosing between the two algorithms.
func (p *Printer) Recommendations() {
	p.banner("RECOMMENDATIONS")
	p.printf("When to use Prim:\n")
	p.printf("   - dense graphs (density > %d%%)\n", DenseThreshold)
	p.printf("   - adjacency-list or matrix representations\n")
	p.printf("   - an MST grown from a specific start vertex\n\n")
	p.printf("When to use Kruskal:\n")
	p.printf("   - sparse graphs (density < %d%%)\n", DenseThreshold)
	p.printf("   - edge-list representations\n")
	p.printf("   - disconnected graphs (yields a spanning forest)\n\n")
	p.printf("General observations:\n")
	p.printf("   - both algorithms return a minimum spanning tree of equal cost\n")
	p.printf("   - differences are small on small graphs\n")
	p.printf("   - graph structure and size should drive the choice\n\n")
}

// DenseThreshold is the density percentage above which Prim is recommended.
const DenseThreshold = 50

// Summary counts per-algorithm wins over a batch. A tie counts for neither.
type Summary struct {
	Graphs          int
	Failed          int
	PrimOpsWins     int
	KruskalOpsWins  int
	PrimTimeWins    int
	KruskalTimeWins int
}

// Summarize tallies wins over the successful results.
func Summarize(results []batch.Result) Summary {
	s := Summary{Graphs: len(results)}
	for _, r := range results {
		if !r.OK() {
			s.Failed++
			continue
		}
		switch {
		case r.Prim.OperationsCount < r.Kruskal.OperationsCount:
			s.PrimOpsWins++
		case r.Kruskal.OperationsCount < r.Prim.OperationsCount:
			s.KruskalOpsWins++
		}
		switch {
		case r.Prim.ExecutionTimeMs < r.Kruskal.ExecutionTimeMs:
			s.PrimTimeWins++
		case r.Kruskal.ExecutionTimeMs < r.Prim.ExecutionTimeMs:
			s.KruskalTimeWins++
		}
	}

	return s
}

// Improvement returns how much smaller better is than worse, as a percentage
// of worse. It is 0 when worse is not positive.
func Improvement(better, worse float64) float64 {
	if worse <= 0 {
		return 0
	}

	return (worse - better) * 100 / worse
}

// winner names the algorithm with the lower value and its improvement.
func winner(prim, kruskal float64) (string, float64, bool) {
	switch {
	case prim < kruskal:
		return namePrim, Improvement(prim, kruskal), true
	case kruskal < prim:
		return nameKrusk, Improvement(kruskal, prim), true
	default:
		return "", 0, false
	}
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", (width-len(s))/2) + s
}
