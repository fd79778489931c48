// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds valves via cfg.idFn in ascending index order (0..n-1).
//   • Emits tunnels in stable order i <-> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) valves + O(n) tunnels.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-valve ring.
func Cycle(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		names := addValves(net, cfg, n)

		// For i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := net.AddTunnel(names[i], names[(i+1)%n]); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}
