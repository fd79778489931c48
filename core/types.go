package core

import (
	"errors"
	"fmt"

	"github.com/yourbasic/bit"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a record carried an empty valve name.
	ErrEmptyVertexID = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that two records declared the same valve.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrNegativeValue indicates a negative flow rate.
	ErrNegativeValue = errors.New("core: negative vertex value")

	// ErrUnknownVertex indicates a tunnel referencing a valve without a record.
	ErrUnknownVertex = errors.New("core: tunnel references unknown vertex")

	// ErrAsymmetricTunnel indicates a one-way tunnel under the Strict policy.
	ErrAsymmetricTunnel = errors.New("core: asymmetric tunnel")

	// ErrVertexNotFound indicates a lookup of a vertex that does not exist.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrUnknownID indicates Registry.NameOf was called with an unregistered ID.
	ErrUnknownID = errors.New("core: unregistered id")

	// ErrUnknownSymmetry indicates an unrecognized symmetry policy name.
	ErrUnknownSymmetry = errors.New("core: unknown symmetry policy")
)

// Record is one parsed valve description: its name, flow rate and the names
// of the valves its tunnels lead to.
type Record struct {
	Name    string   `yaml:"name"`
	Flow    int      `yaml:"flow"`
	Tunnels []string `yaml:"tunnels"`
}

// Vertex represents a valve in the graph.
type Vertex struct {
	// ID is the dense identity assigned by the graph's Registry.
	ID int

	// Name is the valve label as it appeared in the input.
	Name string

	// Value is the per-minute flow released once the valve is open.
	Value int

	// Active is false once Prune has removed the valve from the search space.
	Active bool
}

// Symmetry selects how one-way tunnels are treated by NewGraph.
type Symmetry int

const (
	// Directed keeps tunnels exactly as listed; distances become directional.
	Directed Symmetry = iota
	// Strict rejects any tunnel whose reverse is not listed.
	Strict
	// Mirror adds the reverse of every listed tunnel.
	Mirror
)

// String returns the policy name used by configuration files and flags.
func (s Symmetry) String() string {
	switch s {
	case Directed:
		return "directed"
	case Strict:
		return "strict"
	case Mirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// ParseSymmetry maps a policy name back to its Symmetry value.
func ParseSymmetry(name string) (Symmetry, error) {
	switch name {
	case "", "directed":
		return Directed, nil
	case "strict":
		return Strict, nil
	case "mirror":
		return Mirror, nil
	default:
		return Directed, fmt.Errorf("ParseSymmetry(%q): %w", name, ErrUnknownSymmetry)
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSymmetry sets the tunnel symmetry policy (default Directed).
func WithSymmetry(policy Symmetry) GraphOption {
	return func(g *Graph) { g.symmetry = policy }
}

// Graph is the static valve network.
//
// vertices and adjacency are indexed by vertex ID. adjacency[id] holds the
// ascending, de-duplicated successor IDs of id. active holds the IDs of the
// vertices still in the search space.
type Graph struct {
	registry *Registry

	symmetry Symmetry
	pruned   bool

	vertices  []Vertex
	adjacency [][]int
	tunnels   int

	active *bit.Set
}
