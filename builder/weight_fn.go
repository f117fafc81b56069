// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// weight_fn.go - edge weight generators.
//
// Stochastic generators return DefaultEdgeWeight when rng is nil so that a
// builder without a seed still yields a valid, deterministic graph.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight from rng.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn returns value for every edge. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws uniformly from [min, max). Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn draws integers uniformly from [min, max]. Panics unless 0 ≤ min ≤ max.
// Integer weights produce ties, which exercise the tie-breaking rules.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn draws from N(mean, stddev²), rounded and clamped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn draws from Exp(rate), rounded. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight is WithWeightFn(IntegerWeightFn(min, max)).
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}

// WithNormalWeight is WithWeightFn(NormalWeightFn(mean, stddev)).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight is WithWeightFn(ExponentialWeightFn(rate)).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
