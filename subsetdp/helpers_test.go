package subsetdp_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/katalvlaran/valveflow/subsetdp"
	"github.com/stretchr/testify/require"
)

// randomInput builds a seeded connected network of n valves and returns its
// compact active-only input.
func randomInput(tb testing.TB, seed int64, n int, p float64) subsetdp.Input {
	tb.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithFlowFn(builder.SparseFlowFn(0.3, 1, 25))},
		builder.RandomSparse(n, p),
	)
	require.NoError(tb, err)
	d, err := matrix.FromGraph(g)
	require.NoError(tb, err)
	g.Prune()

	ids := g.ActiveIndex().IDs()
	sub, err := d.Restrict(ids)
	require.NoError(tb, err)
	values := make([]int, len(ids))
	for i, id := range ids {
		values[i] = g.Value(id)
	}

	return subsetdp.Input{Values: values, Dist: sub}
}

// uniformInput returns n valves of the given value, pairwise one step apart.
func uniformInput(tb testing.TB, n, value int) subsetdp.Input {
	tb.Helper()
	d, err := matrix.NewDistances(n)
	require.NoError(tb, err)
	values := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = value
		for j := 0; j < n; j++ {
			if i != j {
				require.NoError(tb, d.Set(i, j, 1))
			}
		}
	}

	return subsetdp.Input{Values: values, Dist: d}
}

// bruteForce evaluates the recurrence by plain recursion.
func bruteForce(in subsetdp.Input, t int, opened subsetdp.Mask, v int) int {
	if t < 1 {
		return 0
	}
	next := opened | subsetdp.Bit(v)
	best := 0
	for u := range in.Values {
		if next.Has(u) || !in.Dist.Reachable(v, u) {
			continue
		}
		if rem := t - in.Dist.Dist(v, u) - 1; rem >= 1 {
			best = max(best, bruteForce(in, rem, next, u))
		}
	}

	return (t-1)*in.Values[v] + best
}
