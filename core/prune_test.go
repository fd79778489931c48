package core_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/stretchr/testify/require"
)

func TestPrune_MarksZeroValueInactive(t *testing.T) {
	g, err := core.NewGraph(sampleRecords())
	require.NoError(t, err)
	require.Equal(t, 10, g.ActiveCount())
	require.False(t, g.Pruned())

	n := g.Prune()
	require.Equal(t, 6, n)
	require.True(t, g.Pruned())

	for _, v := range g.Vertices() {
		require.Equal(t, v.Value > 0, v.Active, "valve %s", v.Name)
		require.Equal(t, v.Active, g.IsActive(v.ID))
	}

	// Pruning keeps tunnels: AA still leads to II even though II is inactive.
	aa, _ := g.ID("AA")
	ii, _ := g.ID("II")
	nbrs, err := g.Neighbors(aa)
	require.NoError(t, err)
	require.Contains(t, nbrs, ii)
}

func TestPrune_Idempotent(t *testing.T) {
	g, err := core.NewGraph(sampleRecords())
	require.NoError(t, err)

	first := g.Prune()
	before := g.ActiveSet()
	second := g.Prune()

	require.Equal(t, first, second)
	require.True(t, before.Equal(g.ActiveSet()))
}

func TestActiveIndex_Bijection(t *testing.T) {
	g, err := core.NewGraph(sampleRecords())
	require.NoError(t, err)
	g.Prune()

	idx := g.ActiveIndex()
	require.Equal(t, 6, idx.Len())

	names := make([]string, 0, idx.Len())
	for pos := 0; pos < idx.Len(); pos++ {
		id := idx.VertexID(pos)
		back, ok := idx.Position(id)
		require.True(t, ok)
		require.Equal(t, pos, back)

		name, err := g.Registry().NameOf(id)
		require.NoError(t, err)
		names = append(names, name)
	}
	require.Equal(t, []string{"BB", "CC", "DD", "EE", "HH", "JJ"}, names)

	aa, _ := g.ID("AA")
	_, ok := idx.Position(aa)
	require.False(t, ok, "pruned valves have no position")
	_, ok = idx.Position(99)
	require.False(t, ok)

	ids := idx.IDs()
	ids[0] = -5
	require.NotEqual(t, -5, idx.VertexID(0), "IDs must return a copy")
}

func TestActiveIndex_BeforePrune(t *testing.T) {
	g, err := core.NewGraph(sampleRecords())
	require.NoError(t, err)
	require.Equal(t, g.Order(), g.ActiveIndex().Len())
}
