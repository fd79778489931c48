// Package core defines the valve network that every other valveflow package
// works on: the Vertex Registry, the Graph of valves and tunnels, and the
// Pruning Stage that narrows the search universe to valves worth opening.
//
// The Graph G = (V,E) is deliberately small and static:
//
//   - Vertices are valves with a dense integer ID (0..V-1), a Name and a
//     non-negative Value (flow rate per minute once opened).
//   - Edges are unit-length tunnels. Every tunnel costs exactly one minute.
//   - Names are interned by a Registry owned by the graph. There is no
//     process-wide lookup table; two graphs never share identities.
//   - After NewGraph returns, the only mutation is Prune, which flips the
//     Active flag of zero-value valves. Nothing is ever physically deleted,
//     so shortest paths may still route through pruned valves.
//
// Configuration Options (GraphOption):
//
//	– WithSymmetry(policy)
//	    Directed (default): tunnels are honored exactly as listed.
//	    Strict:   a tunnel A→B without B→A fails with ErrAsymmetricTunnel.
//	    Mirror:   the reverse of every listed tunnel is added.
//
// Core Methods:
//
//	// Construction
//	NewGraph(records []Record, opts ...GraphOption) (*Graph, error)  // O(V+E)
//
//	// Identity
//	ID(name string) (int, error)        // O(1)
//	Vertex(id int) (Vertex, error)      // O(1)
//	Registry().NameOf(id int)           // O(1)
//
//	// Topology
//	Neighbors(id int) ([]int, error)    // O(deg)
//	Order() int / TunnelCount() int     // O(1)
//
//	// Pruning
//	Prune() int                         // O(V), idempotent
//	ActiveIndex() *ActiveIndex          // O(V), dense 0..n-1 over active valves
//
// Errors:
//
//	ErrEmptyVertexID     - record name is empty.
//	ErrDuplicateVertex   - two records share a name.
//	ErrNegativeValue     - record flow rate is negative.
//	ErrUnknownVertex     - a tunnel names a valve that has no record.
//	ErrAsymmetricTunnel  - Strict symmetry policy found a one-way tunnel.
//	ErrVertexNotFound    - lookup by name or ID failed.
//	ErrUnknownID         - Registry.NameOf with an unregistered ID.
//
// Concurrency:
//
//	Construction and pruning are single-threaded. Once pruned, a Graph is
//	read-only and may be shared across goroutines without locking.
package core
