// SPDX-License-Identifier: MIT
// Package: matrix
//
// builder.go — seeds a Distances table from a core.Graph.

package matrix

import "github.com/katalvlaran/valveflow/core"

const opFromGraph = "FromGraph"

// FromGraph builds the shortest-path table over every vertex of g, active or
// not. Each tunnel u→v seeds d(u,v) = 1; FloydWarshall then closes the table.
//
// Call it before g.Prune so the caller's intent is obvious, although pruning
// never removes tunnels and the result would be the same.
//
// Complexity: O(V³) time, O(V²) memory.
func FromGraph(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGraph, ErrGraphNil)
	}
	d, err := NewDistances(g.Order())
	if err != nil {
		return nil, matrixErrorf(opFromGraph, err)
	}

	for from := 0; from < g.Order(); from++ {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return nil, matrixErrorf(opFromGraph, err)
		}
		for _, to := range nbrs {
			d.data[from*d.n+to] = 1
		}
	}
	floydWarshallInPlace(d)

	return d, nil
}
