package planner_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/planner"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []core.Record {
	return []core.Record{
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
	}
}

func prepare(t *testing.T, recs []core.Record, opts ...core.GraphOption) *planner.Problem {
	t.Helper()
	g, err := core.NewGraph(recs, opts...)
	require.NoError(t, err)
	p, err := planner.Prepare(g, planner.DefaultStart)
	require.NoError(t, err)

	return p
}

// requireConsistent checks that routes explain the value and never share a valve.
func requireConsistent(t *testing.T, res planner.Result) {
	t.Helper()
	sum := 0
	seen := make(map[string]bool)
	for _, r := range res.Routes {
		sum += r.Released()
		for _, s := range r.Stops {
			require.False(t, seen[s.Valve], "valve %s opened twice", s.Valve)
			seen[s.Valve] = true
			require.Positive(t, s.Remaining)
		}
	}
	require.Equal(t, res.Value, sum)
}
