// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the valve naming function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
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

// WithFlowFn overrides the per-valve flow-rate generator. Panics on nil.
func WithFlowFn(fn FlowFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFlowFn(nil)")
	}
	return func(c *builderConfig) {
		c.flowFn = fn
	}
}

// WithZeroStart controls whether valve 0 is forced to zero flow (default true).
func WithZeroStart(enabled bool) BuilderOption {
	return func(c *builderConfig) {
		c.zeroStart = enabled
	}
}
