// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn      = ValveIDFn           ("AA","AB",...)
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • flowFn    = DefaultFlowFn       (constant DefaultFlow)
//   • zeroStart = true                (valve 0 is a dry start valve)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Valve naming strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Flow-rate generator for newly added valves.
	flowFn FlowFn
	// Force the flow of valve 0 to zero after construction.
	zeroStart bool
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      ValveIDFn,
		rng:       nil,
		flowFn:    DefaultFlowFn,
		zeroStart: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
