package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiflow/core"
)

func TestAddEdgeAutoCreatesVertices(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("s", "t", 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.True(t, g.HasVertex("s"))
	require.True(t, g.HasVertex("t"))

	e := g.EdgeByID(id)
	require.NotNil(t, e)
	require.Equal(t, 10.0, e.Weight)
}

func TestVerticesSortedDeterministic(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("b", "a", 1, 0)
	_, _ = g.AddEdge("c", "a", 1, 0)
	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestNeighborsSortedByToThenID(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("s", "z", 1, 0)
	_, _ = g.AddEdge("s", "a", 1, 0)
	id2, _ := g.AddEdge("s", "a", 2, 0)

	nbrs := g.Neighbors("s")
	require.Len(t, nbrs, 3)
	require.Equal(t, "a", nbrs[0].To)
	require.Equal(t, "a", nbrs[1].To)
	require.Equal(t, "z", nbrs[2].To)
	require.Equal(t, id2, nbrs[1].ID)
}

func TestAddEdgeRejectsNegativeWeight(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("s", "t", -1, 0)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
}
