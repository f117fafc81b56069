// Package unionfind implements a disjoint-set forest over a fixed set of
// string elements, with union by rank and path-compressing Find.
//
// The element set is fixed at construction. Referencing an element that was
// not supplied to New is a programming error reported as ErrUnknownElement;
// the forest never grows on its own.
//
// Complexity: New is O(n); Find and Union are O(α(n)) amortized, where α is
// the inverse Ackermann function.
package unionfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/opcount"
)

// ErrUnknownElement indicates Find/Union referenced an element outside the forest.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// DisjointSet is a disjoint-set forest. Not safe for concurrent use.
type DisjointSet struct {
	elems   []string       // index → element, in construction order
	index   map[string]int // element → index
	parent  []int          // parent[i] == i for roots
	rank    []int          // upper bound on subtree height, roots only
	sets    int            // number of disjoint sets
	counter opcount.Counter
}

// Option configures a DisjointSet.
type Option func(*DisjointSet)

// WithCounter reports OpFind for every Find and OpUnion for every successful merge.
func WithCounter(c opcount.Counter) Option {
	return func(ds *DisjointSet) { ds.counter = opcount.OrDiscard(c) }
}

// New builds a forest in which every element of elems is its own singleton set
// (parent = self, rank = 0). Duplicate elements are collapsed.
func New(elems []string, opts ...Option) *DisjointSet {
	ds := &DisjointSet{
		elems:   make([]string, 0, len(elems)),
		index:   make(map[string]int, len(elems)),
		parent:  make([]int, 0, len(elems)),
		rank:    make([]int, 0, len(elems)),
		counter: opcount.Discard,
	}
	for _, opt := range opts {
		opt(ds)
	}
	for _, e := range elems {
		if _, dup := ds.index[e]; dup {
			continue
		}
		i := len(ds.elems)
		ds.index[e] = i
		ds.elems = append(ds.elems, e)
		ds.parent = append(ds.parent, i)
		ds.rank = append(ds.rank, 0)
	}
	ds.sets = len(ds.elems)

	return ds
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int { return len(ds.elems) }

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.sets }

// Find returns the representative of v's set.
// Every node on the path from v to the root is repointed directly at the root.
func (ds *DisjointSet) Find(v string) (string, error) {
	i, err := ds.lookup(v)
	if err != nil {
		return "", err
	}

	return ds.elems[ds.find(i)], nil
}

// Union merges the sets containing a and b and reports whether a merge happened.
// It returns false when a and b already share a set (the edge a-b would close a cycle).
//
// The root of lower rank is attached under the root of higher rank. On equal
// rank, b's root goes under a's root and a's root's rank is incremented.
func (ds *DisjointSet) Union(a, b string) (bool, error) {
	ia, err := ds.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := ds.lookup(b)
	if err != nil {
		return false, err
	}

	ra, rb := ds.find(ia), ds.find(ib)
	if ra == rb {
		return false, nil
	}

	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--
	ds.counter.Add(opcount.OpUnion, 1)

	return true, nil
}

// Connected reports whether a and b belong to the same set.
func (ds *DisjointSet) Connected(a, b string) (bool, error) {
	ia, err := ds.lookup(a)
	if err != nil {
		return false, err
	}
	ib, err := ds.lookup(b)
	if err != nil {
		return false, err
	}

	return ds.find(ia) == ds.find(ib), nil
}

// Components returns the sets. Sets are ordered by their earliest element and
// members keep construction order, so the output is deterministic.
func (ds *DisjointSet) Components() [][]string {
	slot := make(map[int]int, ds.sets) // root → position in out
	out := make([][]string, 0, ds.sets)
	for i, e := range ds.elems {
		r := ds.find(i)
		pos, ok := slot[r]
		if !ok {
			pos = len(out)
			slot[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], e)
	}

	return out
}

// lookup maps an element to its index.
func (ds *DisjointSet) lookup(v string) (int, error) {
	i, ok := ds.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, v)
	}

	return i, nil
}

// find is the iterative two-pass Find: locate the root, then compress.
func (ds *DisjointSet) find(i int) int {
	ds.counter.Add(opcount.OpFind, 1)

	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[i] != root {
		next := ds.parent[i]
		ds.parent[i] = root
		i = next
	}

	return root
}
