// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// config.go - resolved builder configuration and functional options.

package builder

import (
	"math/rand"
)

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn

	// rng drives stochastic constructors and weight functions; nil means none.
	rng *rand.Rand

	// weightFn draws one edge weight.
	weightFn WeightFn
}

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG,
// constant DefaultEdgeWeight.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// WithIDScheme sets the vertex ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
