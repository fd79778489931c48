// SPDX-License-Identifier: MIT
// Package: matrix
//
// Distances is a square, row-major table of int hop counts stored in a flat
// slice for cache friendliness. Off-diagonal pairs without a path hold
// Unreachable; the diagonal is 0.

package matrix

import (
	"fmt"
	"math"
)

// Unreachable marks a pair with no path. It is large enough that no real
// distance reaches it and small enough that adding two of them cannot
// overflow an int.
const Unreachable = math.MaxInt32

// Distances is an n×n shortest-path table.
type Distances struct {
	n    int
	data []int
}

// NewDistances allocates an n×n table with a zero diagonal and every other
// cell Unreachable.
// Complexity: O(n²) time and memory.
func NewDistances(n int) (*Distances, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDistances(%d): %w", n, ErrBadShape)
	}
	d := &Distances{n: n, data: make([]int, n*n)}
	for i := range d.data {
		d.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	return d, nil
}

// Order returns n.
func (d *Distances) Order() int {
	if d == nil {
		return 0
	}

	return d.n
}

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
func (d *Distances) indexOf(method string, i, j int) (int, error) {
	if d == nil {
		return 0, fmt.Errorf("Distances.%s: %w", method, ErrNilMatrix)
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Distances.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return i*d.n + j, nil
}

// At returns d(i,j) with bounds checking.
// Complexity: O(1).
func (d *Distances) At(i, j int) (int, error) {
	k, err := d.indexOf("At", i, j)
	if err != nil {
		return 0, err
	}

	return d.data[k], nil
}

// Set overwrites d(i,j). Negative values are rejected as out of range.
// Complexity: O(1).
func (d *Distances) Set(i, j, v int) error {
	k, err := d.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("Distances.Set(%d,%d,%d): %w", i, j, v, ErrOutOfRange)
	}
	d.data[k] = v

	return nil
}

// Dist returns d(i,j) without bounds checking. It is meant for hot loops
// whose indices are already known to be valid.
func (d *Distances) Dist(i, j int) int {
	return d.data[i*d.n+j]
}

// Reachable reports whether j can be reached from i.
func (d *Distances) Reachable(i, j int) bool {
	v, err := d.At(i, j)

	return err == nil && v != Unreachable
}

// Row returns a copy of row i.
func (d *Distances) Row(i int) ([]int, error) {
	if _, err := d.indexOf("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]int, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// Restrict copies the sub-table over ids: the result's (a,b) cell is
// d(ids[a], ids[b]). An empty ids yields a nil table and no error.
// Complexity: O(k²) for k = len(ids).
func (d *Distances) Restrict(ids []int) (*Distances, error) {
	if d == nil {
		return nil, matrixErrorf("Restrict", ErrNilMatrix)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	for _, id := range ids {
		if id < 0 || id >= d.n {
			return nil, fmt.Errorf("Restrict: id %d: %w", id, ErrOutOfRange)
		}
	}
	k := len(ids)
	sub := &Distances{n: k, data: make([]int, k*k)}
	for a, from := range ids {
		base := from * d.n
		for b, to := range ids {
			sub.data[a*k+b] = d.data[base+to]
		}
	}

	return sub, nil
}
