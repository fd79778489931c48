// SPDX-License-Identifier: MIT
// Package: valveflow/builder
//
// network.go — the mutable accumulator constructors write into.
//
// Determinism:
//   • Valves keep insertion order; index 0 is the start valve.
//   • Tunnels keep insertion order per valve.

package builder

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// Network collects valves and undirected tunnels before they become records.
type Network struct {
	names   []string
	flows   []int
	index   map[string]int
	tunnels [][]int
	linked  map[[2]int]struct{}
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{
		index:  make(map[string]int),
		linked: make(map[[2]int]struct{}),
	}
}

// AddValve inserts a valve if missing and returns its position. Re-adding an
// existing name keeps the original flow.
func (n *Network) AddValve(name string, flow int) int {
	if pos, ok := n.index[name]; ok {
		return pos
	}
	pos := len(n.names)
	n.index[name] = pos
	n.names = append(n.names, name)
	n.flows = append(n.flows, flow)
	n.tunnels = append(n.tunnels, nil)

	return pos
}

// HasValve reports whether name was added.
func (n *Network) HasValve(name string) bool {
	_, ok := n.index[name]

	return ok
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.names) }

// AddTunnel links a and b in both directions. Repeated links are no-ops;
// self-tunnels and unknown endpoints fail with ErrConstructFailed.
func (n *Network) AddTunnel(a, b string) error {
	u, okA := n.index[a]
	v, okB := n.index[b]
	if !okA || !okB {
		return fmt.Errorf("AddTunnel(%s,%s): unknown valve: %w", a, b, ErrConstructFailed)
	}
	if u == v {
		return fmt.Errorf("AddTunnel(%s,%s): self-tunnel: %w", a, b, ErrConstructFailed)
	}
	key := [2]int{min(u, v), max(u, v)}
	if _, ok := n.linked[key]; ok {
		return nil
	}
	n.linked[key] = struct{}{}
	n.tunnels[u] = append(n.tunnels[u], v)
	n.tunnels[v] = append(n.tunnels[v], u)

	return nil
}

func (n *Network) setFlow(pos, flow int) {
	if pos >= 0 && pos < len(n.flows) {
		n.flows[pos] = flow
	}
}

// Records renders the network as core records in valve insertion order.
func (n *Network) Records() []core.Record {
	out := make([]core.Record, len(n.names))
	for i, name := range n.names {
		tunnels := make([]string, len(n.tunnels[i]))
		for j, to := range n.tunnels[i] {
			tunnels[j] = n.names[to]
		}
		out[i] = core.Record{Name: name, Flow: n.flows[i], Tunnels: tunnels}
	}

	return out
}

// addValves adds cfg.idFn(0..count-1) with flows drawn from cfg.flowFn.
func addValves(net *Network, cfg builderConfig, count int) []string {
	names := make([]string, count)
	for i := 0; i < count; i++ {
		names[i] = cfg.idFn(i)
		if !net.HasValve(names[i]) {
			net.AddValve(names[i], cfg.flowFn(cfg.rng))
		}
	}

	return names
}
