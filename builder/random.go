// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// random.go - stochastic constructors. Both require cfg.rng (WithSeed or
// WithRand) except in the degenerate cases noted below, and are fully
// deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"

	minRandomSparseVertices    = 1
	minRandomConnectedVertices = 1

	probMin = 0.0
	probMax = 1.0

	// maxPairAttemptsFactor bounds rejection sampling in RandomConnected.
	maxPairAttemptsFactor = 32
)

// RandomSparse builds a G(n,p) graph: each unordered pair {i,j}, i<j, scanned
// in lexicographic order, is joined with probability p. The result may be
// disconnected, which makes it the natural source of spanning-forest inputs.
//
// rng may be nil only for p == 0 or p == 1.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !coin(cfg, p) {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j], cfg); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected builds a connected graph with n vertices and n-1+extra
// edges: first a random recursive tree (vertex i attaches to a uniform
// earlier vertex), then extra distinct non-adjacent pairs. extra is capped at
// the number of free pairs.
//
// Complexity: O(n + extra) expected.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > 2 {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		ids, err := addVertices(g, methodRandomConnected, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			j := 0
			if cfg.rng != nil {
				j = cfg.rng.Intn(i)
			}
			if err = addEdge(g, methodRandomConnected, ids[j], ids[i], cfg); err != nil {
				return err
			}
		}

		free := n*(n-1)/2 - (n - 1)
		if extra > free {
			extra = free
		}
		for added, attempts := 0, 0; added < extra && attempts < maxPairAttemptsFactor*(extra+1); attempts++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v || g.HasEdge(ids[u], ids[v]) {
				continue
			}
			if err = addEdge(g, methodRandomConnected, ids[u], ids[v], cfg); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// coin reports a Bernoulli(p) draw; p of 0 or 1 needs no RNG.
func coin(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
