// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Unreachable means "no path"; the diagonal must be 0 before calling.

package matrix

const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace relaxes every pair through every intermediate vertex.
// One k-pass per vertex is enough: after pass k, d(i,j) is the shortest path
// whose interior vertices are all < k+1.
func floydWarshallInPlace(d *Distances) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall closes d in place into an all-pairs shortest-path table.
//
// Determinism:
//   - Loop order is fixed (k → i → j).
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Distances) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	floydWarshallInPlace(d)

	return nil
}
