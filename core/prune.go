// File: prune.go
// Role: Pruning Stage and the dense active-vertex index.
//
// Pruning only flips flags. The distance matrix is built before pruning from
// the full vertex set, so pruned valves keep serving as waypoints.
package core

import "github.com/yourbasic/bit"

// Prune marks every zero-value vertex inactive and returns the number of
// vertices left active. Calling Prune again changes nothing.
// Complexity: O(V).
func (g *Graph) Prune() int {
	for i := range g.vertices {
		if g.vertices[i].Value == 0 {
			g.vertices[i].Active = false
			g.active.Delete(i)
		}
	}
	g.pruned = true

	return g.active.Size()
}

// Pruned reports whether Prune has run.
func (g *Graph) Pruned() bool { return g.pruned }

// IsActive reports whether id is still in the search space.
func (g *Graph) IsActive(id int) bool {
	return g.HasVertex(id) && g.active.Contains(id)
}

// ActiveCount returns the number of active vertices.
func (g *Graph) ActiveCount() int { return g.active.Size() }

// ActiveSet returns a copy of the active vertex-ID set.
func (g *Graph) ActiveSet() *bit.Set {
	return new(bit.Set).Set(g.active)
}

// ActiveIndex is a bijection between active vertex IDs and dense positions
// 0..n-1. Positions follow ascending vertex ID, so the same graph always
// yields the same bit layout.
type ActiveIndex struct {
	ids      []int // position -> vertex ID
	position []int // vertex ID -> position, -1 when inactive
}

// ActiveIndex snapshots the current active set.
// Complexity: O(V).
func (g *Graph) ActiveIndex() *ActiveIndex {
	idx := &ActiveIndex{
		ids:      make([]int, 0, g.active.Size()),
		position: make([]int, len(g.vertices)),
	}
	for i := range idx.position {
		idx.position[i] = -1
	}
	g.active.Visit(func(id int) (skip bool) {
		idx.position[id] = len(idx.ids)
		idx.ids = append(idx.ids, id)

		return false
	})

	return idx
}

// Len returns n, the number of active vertices.
func (a *ActiveIndex) Len() int { return len(a.ids) }

// VertexID maps a dense position back to the vertex ID.
func (a *ActiveIndex) VertexID(pos int) int { return a.ids[pos] }

// Position maps a vertex ID to its dense position.
func (a *ActiveIndex) Position(id int) (int, bool) {
	if id < 0 || id >= len(a.position) || a.position[id] < 0 {
		return 0, false
	}

	return a.position[id], true
}

// IDs returns the vertex IDs in position order.
func (a *ActiveIndex) IDs() []int {
	out := make([]int, len(a.ids))
	copy(out, a.ids)

	return out
}
