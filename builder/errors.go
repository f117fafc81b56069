// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// ("Cycle: n=2 < min=3: %w") so callers can branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates Named was given a name it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
