package matrix_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/builder"
	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Record{
		{Name: "AA", Flow: 0, Tunnels: []string{"DD", "II", "BB"}},
		{Name: "BB", Flow: 13, Tunnels: []string{"CC", "AA"}},
		{Name: "CC", Flow: 2, Tunnels: []string{"DD", "BB"}},
		{Name: "DD", Flow: 20, Tunnels: []string{"CC", "AA", "EE"}},
		{Name: "EE", Flow: 3, Tunnels: []string{"FF", "DD"}},
		{Name: "FF", Flow: 0, Tunnels: []string{"EE", "GG"}},
		{Name: "GG", Flow: 0, Tunnels: []string{"FF", "HH"}},
		{Name: "HH", Flow: 22, Tunnels: []string{"GG"}},
		{Name: "II", Flow: 0, Tunnels: []string{"AA", "JJ"}},
		{Name: "JJ", Flow: 21, Tunnels: []string{"II"}},
	}, opts...)
	require.NoError(t, err)

	return g
}

func dist(t *testing.T, g *core.Graph, d *matrix.Distances, from, to string) int {
	t.Helper()
	i, err := g.ID(from)
	require.NoError(t, err)
	j, err := g.ID(to)
	require.NoError(t, err)
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

func TestFromGraph_Sample(t *testing.T) {
	g := sampleGraph(t)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)
	require.Equal(t, 10, d.Order())

	cases := []struct {
		from, to string
		want     int
	}{
		{"AA", "AA", 0},
		{"AA", "BB", 1},
		{"AA", "CC", 2},
		{"AA", "JJ", 2},
		{"AA", "HH", 5},
		{"JJ", "HH", 7},
		{"HH", "JJ", 7},
		{"BB", "EE", 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, dist(t, g, d, tc.from, tc.to), "%s→%s", tc.from, tc.to)
	}
}

func TestFromGraph_RoutesThroughPrunedWaypoints(t *testing.T) {
	g := sampleGraph(t)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)
	g.Prune()

	// HH is only reachable through FF and GG, both zero-flow.
	require.Equal(t, 5, dist(t, g, d, "AA", "HH"))
}

func TestFromGraph_Directed(t *testing.T) {
	g, err := core.NewGraph([]core.Record{
		{Name: "AA", Tunnels: []string{"BB"}},
		{Name: "BB", Flow: 5, Tunnels: []string{"CC"}},
		{Name: "CC", Flow: 7},
	})
	require.NoError(t, err)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)

	require.Equal(t, 2, dist(t, g, d, "AA", "CC"))
	require.Equal(t, matrix.Unreachable, dist(t, g, d, "CC", "AA"))
	require.True(t, d.Reachable(0, 2))
	require.False(t, d.Reachable(2, 0))
	require.NoError(t, d.ValidateTriangle())
}

func TestFromGraph_Errors(t *testing.T) {
	_, err := matrix.FromGraph(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	empty, err := core.NewGraph(nil)
	require.NoError(t, err)
	_, err = matrix.FromGraph(empty)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}

func TestFloydWarshall_ManualTable(t *testing.T) {
	d, err := matrix.NewDistances(4)
	require.NoError(t, err)
	// 0→1→2→3 chain plus a long shortcut 0→3.
	require.NoError(t, d.Set(0, 1, 1))
	require.NoError(t, d.Set(1, 2, 1))
	require.NoError(t, d.Set(2, 3, 1))
	require.NoError(t, d.Set(0, 3, 9))
	require.NoError(t, matrix.FloydWarshall(d))

	got, err := d.At(0, 3)
	require.NoError(t, err)
	require.Equal(t, 3, got)
	got, err = d.At(3, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Unreachable, got)
}

func TestFromGraph_TriangleInequalityOnRandomNetworks(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		recs, err := builder.BuildRecords(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(24, 0.1),
		)
		require.NoError(t, err)
		g, err := core.NewGraph(recs)
		require.NoError(t, err)
		d, err := matrix.FromGraph(g)
		require.NoError(t, err)

		require.NoError(t, d.ValidateTriangle(), "seed=%d", seed)
		n := d.Order()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				for k := 0; k < n; k++ {
					require.LessOrEqual(t, d.Dist(i, j), d.Dist(i, k)+d.Dist(k, j))
				}
			}
		}
	}
}
