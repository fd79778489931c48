package planner

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/katalvlaran/valveflow/subsetdp"
)

// Problem is a network ready for solving. It is read-only and may be solved
// concurrently for different budgets.
type Problem struct {
	start     string
	compact   *matrix.Distances
	names     []string // by active position
	values    []int    // by active position
	fromStart []int    // d(start, position)
}

// Prepare computes shortest paths over all of g, checks the start valve,
// prunes g (in place) and builds the compact active-only view.
//
// Errors:
//   - ErrNilGraph, ErrUnknownStart.
//   - matrix.ErrIsolatedVertex when the start reaches no other valve.
//   - subsetdp.ErrCapacityExceeded when more than subsetdp.MaskBits valves
//     remain after pruning; nothing table-sized has been allocated yet.
func Prepare(g *core.Graph, start string) (*Problem, error) {
	if g == nil {
		return nil, fmt.Errorf("Prepare: %w", ErrNilGraph)
	}
	startID, err := g.ID(start)
	if err != nil {
		return nil, fmt.Errorf("Prepare: start %q: %w", start, ErrUnknownStart)
	}

	full, err := matrix.FromGraph(g)
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}
	if err = full.CheckSource(startID); err != nil {
		return nil, fmt.Errorf("Prepare: start %q: %w", start, err)
	}

	g.Prune()
	idx := g.ActiveIndex()
	n := idx.Len()
	if n > subsetdp.MaskBits {
		return nil, fmt.Errorf("Prepare: %d active valves > %d: %w", n, subsetdp.MaskBits, subsetdp.ErrCapacityExceeded)
	}

	ids := idx.IDs()
	compact, err := full.Restrict(ids)
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}

	p := &Problem{
		start:     start,
		compact:   compact,
		names:     make([]string, n),
		values:    make([]int, n),
		fromStart: make([]int, n),
	}
	for pos, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("Prepare: %w", err)
		}
		p.names[pos] = v.Name
		p.values[pos] = v.Value
		p.fromStart[pos] = full.Dist(startID, id)
	}

	return p, nil
}

// Len returns the number of active valves.
func (p *Problem) Len() int { return len(p.values) }

// Start returns the start valve name.
func (p *Problem) Start() string { return p.start }

// Names returns the active valve names in bit order.
func (p *Problem) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

func (p *Problem) input() subsetdp.Input {
	return subsetdp.Input{Values: p.values, Dist: p.compact}
}

func (p *Problem) table(ctx context.Context, budget int, s settings) (*subsetdp.Table, error) {
	opts := []subsetdp.Option{subsetdp.WithWorkers(s.workers)}
	if s.layerHook != nil {
		opts = append(opts, subsetdp.WithLayerHook(s.layerHook))
	}

	return subsetdp.Build(ctx, p.input(), budget, opts...)
}

// bestEntry picks the best first valve among candidates for an actor
// leaving the start with budget minutes while opened is already taken.
// It returns (0, -1) when no candidate is worth visiting.
func (p *Problem) bestEntry(tb *subsetdp.Table, budget int, opened, candidates subsetdp.Mask) (int, int) {
	best, arg := 0, -1
	for v := range p.values {
		if !candidates.Has(v) {
			continue
		}
		d := p.fromStart[v]
		if d == matrix.Unreachable || d >= budget {
			continue
		}
		if val := tb.Value(budget-d, opened, v); val > best {
			best, arg = val, v
		}
	}

	return best, arg
}
