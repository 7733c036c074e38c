// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator call by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit, caller-owned RNG. Successive calls sharing
// the same *rand.Rand continue its stream. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand with the given seed for this call.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
