package subsetdp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valveflow/matrix"
)

// Build validates in and fills the table for budget T.
//
// Preconditions are checked before any allocation:
// n ≤ MaskBits, budget ≥ 0, values ≥ 0, len(Values) == Dist.Order(),
// and max(value)·budget·n fits int32.
//
// ctx is consulted between layers; a cancelled context aborts with ctx.Err().
func Build(ctx context.Context, in Input, budget int, opts ...Option) (*Table, error) {
	n := len(in.Values)
	// --- 1. Validate input ---
	if n > MaskBits {
		return nil, fmt.Errorf("Build: %d active valves > %d: %w", n, MaskBits, ErrCapacityExceeded)
	}
	if budget < 0 {
		return nil, fmt.Errorf("Build: budget %d: %w", budget, ErrNegativeBudget)
	}
	if in.Dist.Order() != n {
		return nil, fmt.Errorf("Build: %d values, %d×%d distances: %w",
			n, in.Dist.Order(), in.Dist.Order(), ErrDimensionMismatch)
	}
	maxValue := 0
	for i, v := range in.Values {
		if v < 0 {
			return nil, fmt.Errorf("Build: value[%d]=%d: %w", i, v, ErrNegativeValue)
		}
		maxValue = max(maxValue, v)
	}
	if int64(maxValue)*int64(budget)*int64(n) > math.MaxInt32 {
		return nil, fmt.Errorf("Build: value %d × budget %d × %d valves: %w",
			maxValue, budget, n, ErrValueOverflow)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// --- 2. Allocate; layer 0 stays zero ---
	masks := 1 << n
	tb := &Table{
		budget: budget,
		n:      n,
		masks:  masks,
		cells:  make([]int32, (budget+1)*masks*n),
	}
	if n == 0 {
		return tb, nil
	}
	s := &sweep{tb: tb, values: in.Values, dist: in.Dist}

	chunk := (masks + o.workers - 1) / o.workers

	// --- 3. Fill layers in increasing t ---
	for t := 1; t <= budget; t++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var g errgroup.Group
		g.SetLimit(o.workers)
		for lo := 0; lo < masks; lo += chunk {
			lo := lo
			hi := min(lo+chunk, masks)
			g.Go(func() error {
				s.fill(t, lo, hi)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if o.layerHook != nil {
			o.layerHook(t)
		}
	}

	return tb, nil
}

// sweep holds what every worker reads while filling one layer.
type sweep struct {
	tb     *Table
	values []int
	dist   *matrix.Distances
}

// fill computes layer t for masks in [lo, hi). Cells with v ∈ mask are never
// read by the solvers and stay 0.
func (s *sweep) fill(t, lo, hi int) {
	tb, n := s.tb, s.tb.n
	for m := lo; m < hi; m++ {
		mask := Mask(m)
		for v := 0; v < n; v++ {
			if mask.Has(v) {
				continue
			}
			next := mask | Bit(v)
			best := int32(0)
			for u := 0; u < n; u++ {
				if next.Has(u) {
					continue
				}
				d := s.dist.Dist(v, u)
				if d == matrix.Unreachable {
					continue
				}
				rem := t - d - 1
				if rem < 1 {
					continue // u cannot be opened in time
				}
				if c := tb.cells[tb.offset(rem, next, u)]; c > best {
					best = c
				}
			}
			tb.cells[tb.offset(t, mask, v)] = int32((t-1)*s.values[v]) + best
		}
	}
}
