// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Valve (r,c) is cfg.idFn(r*cols+c), added in row-major order.
//   • Each cell links to its right and bottom neighbours where they exist.
//
// Complexity:
//   • Time: O(rows*cols) valves and tunnels.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		names := addValves(net, cfg, rows*cols)

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := names[r*cols+c]
				if c+1 < cols {
					if err := net.AddTunnel(u, names[r*cols+c+1]); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if err := net.AddTunnel(u, names[(r+1)*cols+c]); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
