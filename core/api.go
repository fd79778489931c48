// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph constructor and read-only getters.
// Policy:
//   - NewGraph validates every record before the graph becomes visible.
//   - Getters never expose internal slices; callers receive copies.

package core

import (
	"fmt"

	"github.com/yourbasic/bit"
)

// NewGraph builds a valve network from parsed records.
//
// Implementation:
//   - Stage 1: Intern every record name in input order (IDs follow record order).
//   - Stage 2: Resolve tunnel names to IDs; unknown names fail with ErrUnknownVertex.
//   - Stage 3: Apply the symmetry policy (Directed / Strict / Mirror).
//   - Stage 4: Mark every vertex active; pruning happens later via Prune.
//
// Behavior highlights:
//   - Record order does not affect any answer, only the numbering of IDs.
//   - Self-tunnels and repeated tunnels are dropped; they never shorten a path.
//
// Errors:
//   - ErrEmptyVertexID, ErrDuplicateVertex, ErrNegativeValue, ErrUnknownVertex,
//     ErrAsymmetricTunnel (Strict only). All are wrapped with the record name.
//
// Complexity:
//   - Time O(V + E log E) for sorting adjacency rows, Space O(V + E).
func NewGraph(records []Record, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		registry: NewRegistry(),
		active:   new(bit.Set),
	}
	for _, opt := range opts {
		opt(g)
	}

	// Stage 1: vertices.
	g.vertices = make([]Vertex, 0, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("NewGraph: %w", ErrEmptyVertexID)
		}
		if _, seen := g.registry.Lookup(rec.Name); seen {
			return nil, fmt.Errorf("NewGraph: valve %q: %w", rec.Name, ErrDuplicateVertex)
		}
		if rec.Flow < 0 {
			return nil, fmt.Errorf("NewGraph: valve %q flow %d: %w", rec.Name, rec.Flow, ErrNegativeValue)
		}
		id := g.registry.Intern(rec.Name)
		g.vertices = append(g.vertices, Vertex{ID: id, Name: rec.Name, Value: rec.Flow, Active: true})
	}

	// Stage 2: tunnels.
	g.adjacency = make([][]int, len(g.vertices))
	for _, rec := range records {
		from, _ := g.registry.Lookup(rec.Name)
		for _, name := range rec.Tunnels {
			to, ok := g.registry.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("NewGraph: tunnel %s→%s: %w", rec.Name, name, ErrUnknownVertex)
			}
			g.addTunnel(from, to)
		}
	}

	// Stage 3: symmetry policy.
	if err := g.applySymmetry(); err != nil {
		return nil, err
	}
	g.sortAdjacency()

	// Stage 4: everything starts in the search space.
	if len(g.vertices) > 0 {
		g.active.AddRange(0, len(g.vertices))
	}

	return g, nil
}

// Registry exposes the name↔ID registry owned by g.
func (g *Graph) Registry() *Registry { return g.registry }

// Symmetry reports the tunnel policy g was built with.
func (g *Graph) Symmetry() Symmetry { return g.symmetry }

// Order returns the number of vertices, active or not.
func (g *Graph) Order() int { return len(g.vertices) }

// TunnelCount returns the number of directed tunnel entries after the
// symmetry policy has been applied.
func (g *Graph) TunnelCount() int { return g.tunnels }
