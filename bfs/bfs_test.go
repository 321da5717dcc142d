package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiflow/bfs"
	"github.com/katalvlaran/optiflow/core"
)

func TestReachabilityIgnoresZeroResidual(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 1, 0)
	_, _ = g.AddEdge("a", "t", 0, 0) // saturated: unreachable past a

	res, err := bfs.Reachability(g, "s", 1e-12)
	require.NoError(t, err)
	require.True(t, res.Reachable["s"])
	require.True(t, res.Reachable["a"])
	require.False(t, res.Reachable["t"])
}

func TestReachabilityPathTo(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 5, 0)
	_, _ = g.AddEdge("a", "b", 5, 0)

	res, err := bfs.Reachability(g, "s", 1e-12)
	require.NoError(t, err)
	path, ok := res.PathTo("b")
	require.True(t, ok)
	require.Equal(t, []string{"s", "a", "b"}, path)
}

func TestReachabilityUnknownStart(t *testing.T) {
	g := core.NewGraph()
	_, err := bfs.Reachability(g, "missing", 1e-12)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
