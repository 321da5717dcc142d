package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiflow/core"
	"github.com/katalvlaran/optiflow/flow"
)

func TestEdmondsKarpDiamond(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddFlowEdge("s", "a", 10)
	_, _ = g.AddFlowEdge("s", "b", 5)
	_, _ = g.AddFlowEdge("a", "t", 5)
	_, _ = g.AddFlowEdge("b", "t", 10)
	_, _ = g.AddFlowEdge("a", "b", 15)

	got, err := flow.EdmondsKarp(context.Background(), g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 15.0, got, 1e-9)
}

func TestEdmondsKarpMissingEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddFlowEdge("s", "t", 1)

	_, err := flow.EdmondsKarp(context.Background(), g, "missing", "t", flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrSourceNotFound)

	_, err = flow.EdmondsKarp(context.Background(), g, "s", "missing", flow.DefaultOptions())
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
}

func TestEdmondsKarpCancelledContext(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddFlowEdge("s", "t", 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.EdmondsKarp(ctx, g, "s", "t", flow.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
