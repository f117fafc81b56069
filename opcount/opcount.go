// Package opcount provides the pluggable operation-counting hook used by the
// MST builders and the union-find forest.
//
// Counting is instrumentation, not an algorithmic invariant: the exact value
// of a tally depends on where the algorithms call Add and is free to change.
// What is stable is the shape: more vertices and edges never produce fewer
// operations for the same algorithm.
//
// Usage:
//
//	tally := opcount.NewTally()
//	res, err := prim_kruskal.Kruskal(g, prim_kruskal.WithCounter(tally))
//	fmt.Println(tally.Total(), tally.Count(opcount.OpFind))
//
// Components that accept a Counter treat nil as Discard.
package opcount

import (
	"sort"
	"sync/atomic"
)

// Op names a class of elementary algorithmic step.
type Op uint8

// Operation classes. The zero value is OpCompare.
const (
	// OpCompare is one comparison or membership check (visited test, weight compare, cycle test).
	OpCompare Op = iota
	// OpSort is the estimated cost of sorting, charged once per sort.
	OpSort
	// OpFind is one union-find Find call.
	OpFind
	// OpUnion is one successful union-find merge.
	OpUnion
	// OpPush is one insertion into a priority queue.
	OpPush
	// OpPop is one extraction from a priority queue.
	OpPop
	// OpVisit is one vertex marked as part of the tree.
	OpVisit
	// OpSelect is one edge accepted into the spanning forest.
	OpSelect

	numOps
)

var opNames = [numOps]string{
	OpCompare: "compare",
	OpSort:    "sort",
	OpFind:    "find",
	OpUnion:   "union",
	OpPush:    "push",
	OpPop:     "pop",
	OpVisit:   "visit",
	OpSelect:  "select",
}

// String returns the lower-case name of op, or "unknown".
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}

	return "unknown"
}

// Ops returns every defined operation class in declaration order.
func Ops() []Op {
	out := make([]Op, numOps)
	for i := range out {
		out[i] = Op(i)
	}

	return out
}

// Counter receives operation counts. Implementations must be safe to call
// from the goroutine running the algorithm; Tally is additionally safe for
// concurrent use.
type Counter interface {
	Add(op Op, n int64)
}

// Discard is a Counter that drops everything.
var Discard Counter = discard{}

type discard struct{}

func (discard) Add(Op, int64) {}

// OrDiscard returns c, or Discard when c is nil.
func OrDiscard(c Counter) Counter {
	if c == nil {
		return Discard
	}

	return c
}

// Tally is a Counter that keeps one atomic total per Op.
// The zero value is ready to use.
type Tally struct {
	counts [numOps]atomic.Int64
}

// NewTally returns an empty Tally.
func NewTally() *Tally { return &Tally{} }

// Add records n operations of class op. Unknown classes are ignored.
func (t *Tally) Add(op Op, n int64) {
	if op >= numOps {
		return
	}
	t.counts[op].Add(n)
}

// Count returns the total recorded for op.
func (t *Tally) Count(op Op) int64 {
	if op >= numOps {
		return 0
	}

	return t.counts[op].Load()
}

// Total returns the sum over all classes.
func (t *Tally) Total() int64 {
	var sum int64
	for i := range t.counts {
		sum += t.counts[i].Load()
	}

	return sum
}

// Snapshot returns the non-zero counts keyed by Op name.
func (t *Tally) Snapshot() map[string]int64 {
	out := make(map[string]int64, numOps)
	for i := range t.counts {
		if v := t.counts[i].Load(); v != 0 {
			out[Op(i).String()] = v
		}
	}

	return out
}

// Names returns the keys of a Snapshot sorted alphabetically.
func Names(snapshot map[string]int64) []string {
	names := make([]string, 0, len(snapshot))
	for k := range snapshot {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Reset zeroes every class.
func (t *Tally) Reset() {
	for i := range t.counts {
		t.counts[i].Store(0)
	}
}
