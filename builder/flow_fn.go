// Package builder provides internal helper functions and types
// for configuring flow-rate distributions in network constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultFlow is the flow rate assigned to each valve when no custom FlowFn
// is provided.
const DefaultFlow = 1

// FlowFn produces a valve flow rate given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and never return a
// negative value.
type FlowFn func(rng *rand.Rand) int

// DefaultFlowFn always returns DefaultFlow.
func DefaultFlowFn(_ *rand.Rand) int {
	return DefaultFlow
}

// ConstantFlowFn returns a FlowFn that always yields value.
// Panics if value < 0.
func ConstantFlowFn(value int) FlowFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantFlowFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformFlowFn returns a FlowFn sampling uniformly in [min, max] inclusive.
// With a nil rng it yields min, keeping unseeded builds deterministic.
// Panics if min < 0 or max < min.
func UniformFlowFn(min, max int) FlowFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformFlowFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}

// SparseFlowFn returns a FlowFn that yields 0 with probability pZero and
// otherwise samples uniformly in [min, max]. With a nil rng it yields min.
// Panics if pZero ∉ [0,1], min < 0 or max < min.
func SparseFlowFn(pZero float64, min, max int) FlowFn {
	if pZero < 0 || pZero > 1 {
		panic(fmt.Sprintf("SparseFlowFn: pZero must be in [0,1], got %g", pZero))
	}
	uniform := UniformFlowFn(min, max)

	return func(rng *rand.Rand) int {
		if rng == nil {
			return min
		}
		if rng.Float64() < pZero {
			return 0
		}

		return uniform(rng)
	}
}
