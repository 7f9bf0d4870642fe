// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig. Option constructors panic on
// nil or out-of-domain arguments since those are programming errors.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeight gives every emitted edge the constant weight w.
func WithWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithWeightFn sets the edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithRand sets the RNG used by stochastic constructors and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes.
// Empty strings fall back to "L" and "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithHubID names the center vertex of Star and Wheel.
func WithHubID(id string) BuilderOption {
	return func(c *builderConfig) {
		c.hubID = id
	}
}
