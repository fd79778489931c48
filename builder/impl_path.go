// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Tunnels i <-> i+1 for i=0..n-2; valve 0 is one end of the corridor.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds an n-valve corridor.
func Path(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		names := addValves(net, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := net.AddTunnel(names[i], names[i+1]); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}
