package belts

import (
	"context"

	"github.com/katalvlaran/optiflow/flow"
)

// feasibilityEps is the tolerance for judging phase 1's achieved flow
// against the total lower-bound demand (spec §9: ε = 1e-9, the same
// tolerance Factory uses for conservation/tightness classification).
const feasibilityEps = 1e-9

// Solve loads s, lowers it onto an internal flow network, and runs the
// two-phase max-flow pipeline (spec 4.8): phase 1 establishes lower-bound
// feasibility via the super-source/sink pair; phase 2, only reached if
// phase 1 fully saturates, computes the real source-to-sink max flow.
func Solve(ctx context.Context, s Schema) (*Result, error) {
	problem, err := Load(s)
	if err != nil {
		return nil, err
	}

	ig, excess, err := buildInternalGraph(problem)
	if err != nil {
		return nil, err
	}
	demand, backEdgeID, sinkEdges, err := attachVirtual(ig, excess, problem)
	if err != nil {
		return nil, err
	}

	phase1Flow, err := flow.EdmondsKarp(ctx, ig.g, virtualSuperSource, virtualSuperSink, flow.DefaultOptions())
	if err != nil {
		return nil, err
	}

	if phase1Flow < demand-feasibilityEps {
		cert, err := buildCertificate(ig, problem, virtualSuperSource, demand-phase1Flow)
		if err != nil {
			return nil, err
		}
		return &Result{Status: "infeasible", Certificate: cert}, nil
	}
	if phase1Flow > demand+feasibilityEps {
		return nil, &NumericAnomaly{Reason: "phase-1 flow exceeds total lower-bound demand"}
	}

	if err := ig.g.RemoveVertex(virtualSuperSource); err != nil {
		return nil, err
	}
	if err := ig.g.RemoveVertex(virtualSuperSink); err != nil {
		return nil, err
	}
	if err := ig.g.RemoveEdge(backEdgeID); err != nil {
		return nil, err
	}

	if _, err := flow.EdmondsKarp(ctx, ig.g, virtualMainSource, virtualMainSink, flow.DefaultOptions()); err != nil {
		return nil, err
	}

	// The true total flow delivered to the sinks is read off the sink
	// admission edges' final residuals, not phase 2's own return value:
	// phase 1's feasibility circulation already consumes some of that
	// same admission budget satisfying lower-bound obligations that
	// never touch an original edge directly (see lowerbound.go).
	var maxFlow float64
	for _, se := range sinkEdges {
		maxFlow += se.capacity - se.edge.Weight
	}

	flows, err := reconstructFlows(problem, ig)
	if err != nil {
		return nil, err
	}

	result := round6(maxFlow)
	return &Result{Status: "ok", MaxFlowPerMin: &result, Flows: flows}, nil
}
