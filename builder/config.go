// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • offset = 0    (labels start at 0)
//   • rng    = nil  (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors.
// It is passed by VALUE, so Shifted can adjust a copy.
type builderConfig struct {
	// offset is added to every vertex label a constructor emits.
	offset int
	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// label maps a constructor-local vertex index to its final label.
func (c builderConfig) label(i int) int { return c.offset + i }
