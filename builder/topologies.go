// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// topologies.go - deterministic fixed-shape constructors.
//
// Every constructor adds its vertices first (index order through cfg.idFn)
// and then emits edges in a documented stable order, drawing one weight per
// edge from cfg.weightFn.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mstbench/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
)

// Path builds P_n: 0-1-…-(n-1). n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a Path closed by (n-1)-0. n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star: vertex 0 is the hub, 1..n-1 are leaves. n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodStar, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodStar, ids[0], ids[i], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: hub 0 with spokes to a rim cycle over 1..n-1. n ≥ 4.
// Spokes are emitted first, then rim edges.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodWheel, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodWheel, ids[0], ids[i], cfg); err != nil {
				return err
			}
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err = addEdge(g, methodWheel, ids[1+i], ids[1+(i+1)%rim], cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n, emitting pairs (i,j) with i<j in lexicographic order. n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, ids[i], ids[j], cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice with fixed IDs "r,c"
// (cfg.idFn is not used). Per cell, row-major: right edge, then down edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(gridVertexID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, gridVertexID(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, gridVertexID(r, c+1), cfg); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, gridVertexID(r+1, c), cfg); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// addVertices adds idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws a weight and adds u-v.
func addEdge(g *core.Graph, method, u, v string, cfg builderConfig) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
