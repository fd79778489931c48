// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go — structural checks on a finished Distances table.
// Deterministic, side-effect free; only sentinel errors from errors.go.

package matrix

import "fmt"

// CheckSource fails with ErrIsolatedVertex when v reaches no other vertex.
// A single-vertex table is never isolated: there is nothing to reach.
// Complexity: O(n).
func (d *Distances) CheckSource(v int) error {
	if _, err := d.indexOf("CheckSource", v, v); err != nil {
		return err
	}
	if d.n == 1 {
		return nil
	}
	base := v * d.n
	for j := 0; j < d.n; j++ {
		if j != v && d.data[base+j] != Unreachable {
			return nil
		}
	}

	return fmt.Errorf("CheckSource(%d): %w", v, ErrIsolatedVertex)
}

// ValidateTriangle verifies d(i,j) ≤ d(i,k) + d(k,j) for every triple whose
// legs are reachable. A closed Floyd–Warshall table always passes.
// Complexity: O(n³).
func (d *Distances) ValidateTriangle() error {
	if d == nil {
		return matrixErrorf("ValidateTriangle", ErrNilMatrix)
	}
	n := d.n
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := d.data[i*n+k]
			if ik == Unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				kj := d.data[k*n+j]
				if kj == Unreachable {
					continue
				}
				if d.data[i*n+j] > ik+kj {
					return fmt.Errorf("ValidateTriangle: d(%d,%d)=%d > d(%d,%d)+d(%d,%d)=%d: %w",
						i, j, d.data[i*n+j], i, k, k, j, ik+kj, ErrTriangleViolation)
				}
			}
		}
	}

	return nil
}
