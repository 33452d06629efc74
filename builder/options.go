// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors validate and PANIC on nil inputs; constructors
//     themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.
//   • Defaults: names = PrefixedName(DefaultPrefix), rng = nil.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	nameFn NameFn
	// nil means "no randomness"
	rng *rand.Rand
}

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults, later options winning.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{nameFn: PrefixedName(DefaultPrefix)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithNameScheme sets the username generator. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
