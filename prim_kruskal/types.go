// Package prim_kruskal defines configuration options, the shared Result type
// and sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/opcount"
)

// ErrInvalidGraph indicates that the graph handed to an MST builder is nil.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only returned under WithRequireConnected.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates Compute was asked for a method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the spanning forest produced by Kruskal or Prim.
type Result struct {
	// Edges in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64

	// Components is the number of trees in the forest formed by Edges over all
	// vertices, i.e. |V| - len(Edges). One for a connected graph, zero when empty.
	Components int
}

// Spanning reports whether the result is a single tree over every vertex.
func (r Result) Spanning() bool { return r.Components <= 1 }

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method           string           one of MethodPrim or MethodKruskal (Compute only).
//	Root             string           start vertex ID for Prim; "" means Vertices()[0].
//	SingleTree       bool             Prim stops after the root's component.
//	RequireConnected bool             return ErrDisconnected instead of a forest.
//	Counter          opcount.Counter  operation hook; nil means opcount.Discard.
//
// Complexity: O(E log E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	Method           string
	Root             string
	SingleTree       bool
	RequireConnected bool
	Counter          opcount.Counter
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm used by Compute.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// WithSingleTree makes Prim stop once the start vertex's component is spanned,
// leaving other components uncovered. Ignored by Kruskal.
func WithSingleTree() Option {
	return func(opts *MSTOptions) { opts.SingleTree = true }
}

// WithRequireConnected turns a disconnected input into ErrDisconnected.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) { opts.RequireConnected = true }
}

// WithCounter routes operation counts to c.
func WithCounter(c opcount.Counter) Option {
	return func(opts *MSTOptions) { opts.Counter = c }
}

// DefaultOptions returns MSTOptions initialized for Kruskal, forest mode, no counting.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:  MethodKruskal,
		Counter: opcount.Discard,
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Counter = opcount.OrDiscard(o.Counter)

	return o
}

// Compute selects and runs the MST algorithm named by WithMethod (Kruskal by default).
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	switch o := buildOptions(opts); o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, opts...)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// finish fills the derived fields of r and applies the RequireConnected policy.
func finish(r Result, vertices int, o MSTOptions) (Result, error) {
	r.Components = vertices - len(r.Edges)
	if o.RequireConnected && r.Components > 1 {
		return Result{}, fmt.Errorf("%w: %d components", ErrDisconnected, r.Components)
	}

	return r, nil
}
