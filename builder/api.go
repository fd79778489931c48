// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRecords(bopts, cons...). Resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options/seed and constructor order ⇒ identical records.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// Constructor applies a deterministic mutation to a Network using the
// resolved builderConfig. Constructors validate parameters early, return
// sentinel errors and never panic.
type Constructor func(net *Network, cfg builderConfig) error

// BuildRecords resolves bopts, applies every constructor in order to a fresh
// Network and returns its records.
//
// Errors:
//   - Wraps constructor errors via %w; match with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildRecords(bopts []BuilderOption, cons ...Constructor) ([]core.Record, error) {
	cfg := newBuilderConfig(bopts...)
	net := NewNetwork()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildRecords: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("BuildRecords: %w", err)
		}
	}
	if cfg.zeroStart {
		net.setFlow(0, 0)
	}

	return net.Records(), nil
}

// BuildGraph is BuildRecords followed by core.NewGraph(records, gopts...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	recs, err := BuildRecords(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(recs, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
