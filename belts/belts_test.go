package belts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiflow/belts"
)

func ptr(v float64) *float64 { return &v }

func TestSolveSimpleParallel(t *testing.T) {
	s := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "s1", Capacity: ptr(900)}, {ID: "s2", Capacity: ptr(600)}},
		Sinks:   []string{"sink"},
		Nodes:   []belts.NodeSchema{{ID: "a"}, {ID: "b", Capacity: ptr(900)}, {ID: "c", Capacity: ptr(600)}},
		Edges: []belts.EdgeSchema{
			{From: "s1", To: "a", Lo: 0, Hi: 900},
			{From: "s2", To: "a", Lo: 0, Hi: 600},
			{From: "a", To: "b", Lo: 0, Hi: 900},
			{From: "a", To: "c", Lo: 0, Hi: 600},
			{From: "b", To: "sink", Lo: 0, Hi: 900},
			{From: "c", To: "sink", Lo: 0, Hi: 600},
		},
	}

	res, err := belts.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)
	require.NotNil(t, res.MaxFlowPerMin)
	require.InDelta(t, 1500, *res.MaxFlowPerMin, 1e-6)

	var total float64
	for _, f := range res.Flows {
		if f.To == "sink" {
			total += f.Flow
		}
	}
	require.InDelta(t, 1500, total, 1e-6)
}

func TestSolveLowerBoundForcesRouting(t *testing.T) {
	s := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "s"}},
		Sinks:   []string{"t"},
		Edges: []belts.EdgeSchema{
			{From: "s", To: "t", Lo: 10, Hi: 20},
			{From: "s", To: "t", Lo: 0, Hi: 5},
		},
	}

	res, err := belts.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)
	require.Len(t, res.Flows, 2)

	first, second := res.Flows[0], res.Flows[1]
	require.GreaterOrEqual(t, first.Flow, 10.0-1e-6)
	require.LessOrEqual(t, first.Flow, 20.0+1e-6)
	require.GreaterOrEqual(t, second.Flow, 0.0-1e-6)
	require.LessOrEqual(t, second.Flow, 5.0+1e-6)

	total := first.Flow + second.Flow
	require.GreaterOrEqual(t, total, 10.0-1e-6)
	require.LessOrEqual(t, total, 25.0+1e-6)
}

func TestSolveInfeasibleLowerBound(t *testing.T) {
	s := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "s", Capacity: ptr(50)}},
		Sinks:   []string{"t"},
		Edges: []belts.EdgeSchema{
			{From: "s", To: "t", Lo: 100, Hi: 200},
		},
	}

	res, err := belts.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "infeasible", res.Status)
	require.NotNil(t, res.Certificate)
	require.InDelta(t, 50.0, res.Certificate.DemandBalance, 1e-6)
	// The true bottleneck is the source's own capacity (50 < the
	// lo=100 requirement), not the lo-bound edge itself, so the sink's
	// side of that edge is the one left on the reachable side of the cut.
	require.Contains(t, res.Certificate.CutReachable, "t")
	require.NotContains(t, res.Certificate.CutReachable, "s")
}

func TestSolveRejectsUndeclaredRoleConflict(t *testing.T) {
	s := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "x"}},
		Sinks:   []string{"x"},
		Edges:   []belts.EdgeSchema{{From: "x", To: "x", Lo: 0, Hi: 1}},
	}

	_, err := belts.Solve(context.Background(), s)
	require.Error(t, err)
	var malformed *belts.MalformedProblem
	require.ErrorAs(t, err, &malformed)
}

func TestSolveReversedEdgesPreserveMaxFlow(t *testing.T) {
	forward := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "s"}},
		Sinks:   []string{"t"},
		Edges: []belts.EdgeSchema{
			{From: "s", To: "a", Lo: 0, Hi: 10},
			{From: "a", To: "t", Lo: 0, Hi: 7},
		},
	}
	reversed := belts.Schema{
		Sources: []belts.SourceSchema{{ID: "t"}},
		Sinks:   []string{"s"},
		Edges: []belts.EdgeSchema{
			{From: "a", To: "s", Lo: 0, Hi: 10},
			{From: "t", To: "a", Lo: 0, Hi: 7},
		},
	}

	fwdRes, err := belts.Solve(context.Background(), forward)
	require.NoError(t, err)
	revRes, err := belts.Solve(context.Background(), reversed)
	require.NoError(t, err)

	require.Equal(t, "ok", fwdRes.Status)
	require.Equal(t, "ok", revRes.Status)
	require.InDelta(t, *fwdRes.MaxFlowPerMin, *revRes.MaxFlowPerMin, 1e-6)
}
