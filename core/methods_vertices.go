// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() returns vertices in ascending ID order.
package core

import "fmt"

// ID resolves a valve name to its vertex ID.
// Returns ErrVertexNotFound for names that have no record.
func (g *Graph) ID(name string) (int, error) {
	id, ok := g.registry.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("ID(%q): %w", name, ErrVertexNotFound)
	}

	return id, nil
}

// HasVertex reports whether id is a valid vertex ID of g.
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id int) (Vertex, error) {
	if !g.HasVertex(id) {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[id], nil
}

// Value returns the flow rate of id, or 0 for unknown IDs.
func (g *Graph) Value(id int) int {
	if !g.HasVertex(id) {
		return 0
	}

	return g.vertices[id].Value
}

// Vertices returns a snapshot of all vertices in ascending ID order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}
