// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Errors: wraps constructor errors; callers branch with errors.Is against
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build resolves opts and applies a single constructor to an existing graph.
func Build(g *core.Graph, con Constructor, opts ...BuilderOption) error {
	if g == nil || con == nil {
		return fmt.Errorf("Build: nil graph or constructor: %w", ErrConstructFailed)
	}

	return con(g, newBuilderConfig(opts...))
}
