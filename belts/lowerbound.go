package belts

import (
	"sort"

	"github.com/katalvlaran/optiflow/core"
)

// Virtual node identifiers. The NUL prefix keeps them disjoint from
// every possible declared or split-internal node ID.
const (
	virtualSuperSource = "\x00S*"
	virtualSuperSink   = "\x00T*"
	virtualMainSource  = "\x00S"
	virtualMainSink    = "\x00T"
)

// sentinelCapacity stands in for "unlimited" on a source/sink admission
// edge (spec 4.6: "a large sentinel"). Problem inputs are item/min
// rates on the order of single-run production lines, so this is many
// orders of magnitude above anything that could saturate it for real.
const sentinelCapacity = 1e12

// sinkAdmission is one sink's t->T admission edge together with the
// capacity it was created with (sentinelCapacity, always, since the
// wire schema gives sinks no capacity field) — needed after phase 2 to
// read back the real total flow delivered, since phase 1's circulation
// through the T->S back-edge already consumes some of this edge's
// budget for lower-bound obligations that never touch the sink's own
// original edges.
type sinkAdmission struct {
	edge     *core.Edge
	capacity float64
}

// attachVirtual wires the super-source/sink pair used for lower-bound
// feasibility (spec 4.6) plus the main source/sink pair used for the
// actual max-flow phase, onto ig.g. Returns the total lower-bound
// demand (sum of positive excess), which phase 1's achieved flow must
// match within epsilon for the problem to be feasible; the ID of the
// T->S back-edge phase 2 must remove before it runs; and each sink's
// admission edge, for recovering the true total delivered flow after
// phase 2 (see solve.go).
func attachVirtual(ig *internalGraph, excess map[string]float64, problem *Problem) (demand float64, backEdgeID string, sinkEdges []sinkAdmission, err error) {
	nodes := make([]string, 0, len(excess))
	for n := range excess {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	// Phase 1 always runs between S* and T*, so both exist even when no
	// node carries a lower-bound excess.
	_ = ig.g.AddVertex(&core.Vertex{ID: virtualSuperSource})
	_ = ig.g.AddVertex(&core.Vertex{ID: virtualSuperSink})

	const eps = 1e-12
	for _, n := range nodes {
		e := excess[n]
		switch {
		case e > eps:
			if _, err = ig.g.AddFlowEdge(virtualSuperSource, n, e); err != nil {
				return 0, "", nil, err
			}
			demand += e
		case e < -eps:
			if _, err = ig.g.AddFlowEdge(n, virtualSuperSink, -e); err != nil {
				return 0, "", nil, err
			}
		}
	}

	for _, s := range problem.Sources {
		cap := sentinelCapacity
		if s.Capacity != nil {
			cap = *s.Capacity
		}
		if _, err = ig.g.AddFlowEdge(virtualMainSource, s.ID, cap); err != nil {
			return 0, "", nil, err
		}
	}
	sinks := append([]string(nil), problem.Sinks...)
	sort.Strings(sinks)
	sinkEdges = make([]sinkAdmission, 0, len(sinks))
	for _, id := range sinks {
		e, err := ig.g.AddFlowEdge(id, virtualMainSink, sentinelCapacity)
		if err != nil {
			return 0, "", nil, err
		}
		sinkEdges = append(sinkEdges, sinkAdmission{edge: e, capacity: sentinelCapacity})
	}

	back, err := ig.g.AddFlowEdge(virtualMainSink, virtualMainSource, sentinelCapacity)
	if err != nil {
		return 0, "", nil, err
	}

	return demand, back.ID, sinkEdges, nil
}
