// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; constructors
// themselves return errors.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives the
// (possibly nil) RNG and must return a weight ≥ 1. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight assigns the same weight to every edge. Panics if w < 1.
func WithConstantWeight(w int64) BuilderOption {
	if w < 1 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%d): weight must be ≥ 1", w))
	}
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// WithWeightRange draws weights uniformly from [min, max]. Without an RNG every
// edge gets min. Panics unless 1 ≤ min ≤ max.
func WithWeightRange(min, max int64) BuilderOption {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: WithWeightRange(%d, %d): require 1 ≤ min ≤ max", min, max))
	}
	return WithWeightFn(func(rng *rand.Rand) int64 {
		if rng == nil || min == max {
			return min
		}
		return min + rng.Int63n(max-min+1)
	})
}
