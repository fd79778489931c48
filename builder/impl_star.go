// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Valve 0 is the hub; valves 1..n-1 are leaves linked only to the hub.
//   • Every leaf is two minutes from every other leaf.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		names := addValves(net, cfg, n)
		for i := 1; i < n; i++ {
			if err := net.AddTunnel(names[0], names[i]); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}
