// File: methods_edges.go
// Role: Tunnel bookkeeping and the symmetry policy.
//
// Determinism:
//   - Adjacency rows are sorted ascending after construction.
package core

import (
	"fmt"
	"sort"
)

// addTunnel records from→to unless it is a self-tunnel or already present.
func (g *Graph) addTunnel(from, to int) {
	if from == to {
		return
	}
	for _, existing := range g.adjacency[from] {
		if existing == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.tunnels++
}

// hasTunnel reports whether from→to is present.
func (g *Graph) hasTunnel(from, to int) bool {
	for _, v := range g.adjacency[from] {
		if v == to {
			return true
		}
	}

	return false
}

// applySymmetry enforces or completes tunnel symmetry per g.symmetry.
func (g *Graph) applySymmetry() error {
	switch g.symmetry {
	case Strict:
		for from := range g.adjacency {
			for _, to := range g.adjacency[from] {
				if !g.hasTunnel(to, from) {
					return fmt.Errorf("NewGraph: tunnel %s→%s has no reverse: %w",
						g.vertices[from].Name, g.vertices[to].Name, ErrAsymmetricTunnel)
				}
			}
		}
	case Mirror:
		// Snapshot row lengths so mirrored entries are not re-mirrored.
		lengths := make([]int, len(g.adjacency))
		for from := range g.adjacency {
			lengths[from] = len(g.adjacency[from])
		}
		for from := range g.adjacency {
			for _, to := range g.adjacency[from][:lengths[from]] {
				g.addTunnel(to, from)
			}
		}
	}

	return nil
}

func (g *Graph) sortAdjacency() {
	for _, row := range g.adjacency {
		sort.Ints(row)
	}
}

// Neighbors returns the IDs reachable from id through a single tunnel,
// ascending. Pruned vertices are included: pruning never removes tunnels.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// IsSymmetric reports whether every tunnel has its reverse in g.
// Complexity: O(E·deg).
func (g *Graph) IsSymmetric() bool {
	for from := range g.adjacency {
		for _, to := range g.adjacency[from] {
			if !g.hasTunnel(to, from) {
				return false
			}
		}
	}

	return true
}
