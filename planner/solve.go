package planner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/subsetdp"
)

// SingleActor returns the most pressure one actor leaving the start can
// release within budget minutes.
// Complexity: one table build, then O(n).
func (p *Problem) SingleActor(ctx context.Context, budget int, opts ...Option) (Result, error) {
	s := newSettings(opts...)
	tb, err := p.table(ctx, budget, s)
	if err != nil {
		return Result{}, fmt.Errorf("SingleActor: %w", err)
	}

	value, v := p.bestEntry(tb, budget, 0, subsetdp.Full(tb.Len()))
	res := Result{Value: value}
	if v >= 0 {
		res.Routes = []Route{p.route(tb, budget-p.fromStart[v], 0, v)}
	}

	return res, nil
}

// split is the best division of the valves found over a range of masks.
type split struct {
	value  int
	mask   subsetdp.Mask // valves reserved for the second actor
	v1, v2 int           // first valves, -1 when an actor stays idle
}

// TwoActor returns the most pressure two actors leaving the start together
// can release within budget minutes, never opening the same valve twice.
//
// Masks are split into contiguous ranges reduced on an errgroup pool; every
// worker keeps its own best and the bests are merged after Wait, earliest
// mask first on ties.
//
// Complexity: one table build, then O(2ⁿ · n).
func (p *Problem) TwoActor(ctx context.Context, budget int, opts ...Option) (Result, error) {
	s := newSettings(opts...)
	tb, err := p.table(ctx, budget, s)
	if err != nil {
		return Result{}, fmt.Errorf("TwoActor: %w", err)
	}

	masks := tb.Masks()
	chunk := (masks + s.workers - 1) / s.workers
	partial := make([]split, (masks+chunk-1)/chunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for w := range partial {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, masks)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[w] = p.bestSplit(tb, budget, lo, hi)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, fmt.Errorf("TwoActor: %w", err)
	}

	best := split{v1: -1, v2: -1}
	for _, part := range partial {
		if part.value > best.value {
			best = part
		}
	}

	res := Result{Value: best.value}
	if best.v1 >= 0 {
		res.Routes = append(res.Routes, p.route(tb, budget-p.fromStart[best.v1], best.mask, best.v1))
	}
	if best.v2 >= 0 {
		other := best.mask.Complement(tb.Len())
		res.Routes = append(res.Routes, p.route(tb, budget-p.fromStart[best.v2], other, best.v2))
	}

	return res, nil
}

// bestSplit scans masks in [lo, hi). For mask m the first actor may open
// only valves outside m and the second only valves inside m, so their
// bests are independent and the pair value is their sum.
func (p *Problem) bestSplit(tb *subsetdp.Table, budget, lo, hi int) split {
	n := tb.Len()
	best := split{v1: -1, v2: -1}
	for m := lo; m < hi; m++ {
		mask := subsetdp.Mask(m)
		other := mask.Complement(n)
		a, v1 := p.bestEntry(tb, budget, mask, other)
		b, v2 := p.bestEntry(tb, budget, other, mask)
		if a+b > best.value {
			best = split{value: a + b, mask: mask, v1: v1, v2: v2}
		}
	}

	return best
}

// Solve prepares g and answers both questions of req.
func Solve(ctx context.Context, g *core.Graph, req Request, opts ...Option) (Answer, error) {
	p, err := Prepare(g, req.Start)
	if err != nil {
		return Answer{}, err
	}
	single, err := p.SingleActor(ctx, req.SingleBudget, opts...)
	if err != nil {
		return Answer{}, err
	}
	pair, err := p.TwoActor(ctx, req.PairBudget, opts...)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Active: p.Len(), Single: single, Pair: pair}, nil
}
