// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels, optionally wrapped with "%w" context;
// tests and callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested order is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Distances was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil *core.Graph was passed to FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrIsolatedVertex indicates that no other vertex is reachable from a
	// vertex the caller needs to start from.
	ErrIsolatedVertex = errors.New("matrix: vertex reaches no other vertex")

	// ErrTriangleViolation indicates d(i,j) > d(i,k) + d(k,j) for some triple.
	ErrTriangleViolation = errors.New("matrix: triangle inequality violated")
)

// matrixErrorf prefixes err with an operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
