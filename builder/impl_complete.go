// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Tunnels between every unordered pair {i,j}, i<j, emitted i asc then j asc.
//
// Complexity:
//   • Time: O(n) valves + O(n²) tunnels.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every pair of n valves.
func Complete(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		names := addValves(net, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := net.AddTunnel(names[i], names[j]); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
