// SPDX-License-Identifier: MIT
// Package: pargraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for generator knobs.
//   • Defaults are deterministic; there is no package-level RNG and no
//     time-based seeding anywhere.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import "math/rand"

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// rng is caller-owned; math/rand.Rand is not goroutine-safe, so one
	// generator call must not share it with another running concurrently.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
