package matrix_test

import (
	"testing"

	"github.com/katalvlaran/valveflow/core"
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/stretchr/testify/require"
)

func TestCheckSource(t *testing.T) {
	g, err := core.NewGraph([]core.Record{
		{Name: "AA"},
		{Name: "BB", Flow: 3, Tunnels: []string{"CC"}},
		{Name: "CC", Flow: 4, Tunnels: []string{"BB"}},
	})
	require.NoError(t, err)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)

	require.ErrorIs(t, d.CheckSource(0), matrix.ErrIsolatedVertex)
	require.NoError(t, d.CheckSource(1))
	require.ErrorIs(t, d.CheckSource(3), matrix.ErrOutOfRange)

	single, err := matrix.NewDistances(1)
	require.NoError(t, err)
	require.NoError(t, single.CheckSource(0), "a lone vertex has nothing to reach")
}

func TestValidateTriangle_DetectsOpenTable(t *testing.T) {
	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 1, 1))
	require.NoError(t, d.Set(1, 2, 1))
	require.NoError(t, d.Set(0, 2, 5))

	require.ErrorIs(t, d.ValidateTriangle(), matrix.ErrTriangleViolation)
	require.NoError(t, matrix.FloydWarshall(d))
	require.NoError(t, d.ValidateTriangle())
}

func TestDistances_Accessors(t *testing.T) {
	_, err := matrix.NewDistances(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	d, err := matrix.NewDistances(3)
	require.NoError(t, err)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 1, -1), matrix.ErrOutOfRange)

	var nilD *matrix.Distances
	_, err = nilD.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Equal(t, 0, nilD.Order())

	require.NoError(t, d.Set(0, 2, 4))
	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, matrix.Unreachable, 4}, row)
}

func TestRestrict(t *testing.T) {
	g := sampleGraph(t)
	d, err := matrix.FromGraph(g)
	require.NoError(t, err)
	g.Prune()
	ids := g.ActiveIndex().IDs()

	sub, err := d.Restrict(ids)
	require.NoError(t, err)
	require.Equal(t, len(ids), sub.Order())
	for a, from := range ids {
		for b, to := range ids {
			require.Equal(t, d.Dist(from, to), sub.Dist(a, b))
		}
	}

	empty, err := d.Restrict(nil)
	require.NoError(t, err)
	require.Nil(t, empty)

	_, err = d.Restrict([]int{0, 42})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
