// Package core_test contains test helpers for mstbench/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mstbench/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.5
)

// Concurrency sizes for the parallel-writer tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: got err=%v, want errors.Is(…, %v)", ctx, err, target)
	}
}

// MustErrorNil fails the test if err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", ctx, got, want)
	}
}

// MustEqualBool fails the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v, want %v", ctx, got, want)
	}
}

// MustEqualStrings fails the test unless got and want hold the same elements in the same order.
func MustEqualStrings(t *testing.T, got, want []string, ctx string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len=%d (%v), want len=%d (%v)", ctx, len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: [%d]=%q, want %q (got=%v want=%v)", ctx, i, got[i], want[i], got, want)
		}
	}
}

// edgeIDs projects a slice of edges onto their IDs.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// buildSquare returns a lenient graph A-B(1), B-C(2), C-D(3), D-A(5.5) built through AddEdge only.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{VertexA, VertexB, Weight1},
		{VertexB, VertexC, Weight2},
		{VertexC, VertexD, Weight3},
		{VertexD, VertexA, Weight5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		MustErrorNil(t, err, "AddEdge("+e.u+","+e.v+")")
	}

	return g
}
