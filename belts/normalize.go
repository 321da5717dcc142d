package belts

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/optiflow/core"
)

// splitInSuffix and splitOutSuffix separate a split node's two internal
// halves from its declared ID. The NUL byte can't appear in a JSON
// string produced by any reasonable input, so collisions with a real
// node ID are not a practical concern.
const (
	splitInSuffix  = "\x00in"
	splitOutSuffix = "\x00out"
)

// internalGraph is the working flow network built from a Problem:
// capacitated interior nodes split into in/out halves, every bound
// edge (original or split-capacity) present as a core.Graph flow edge.
type internalGraph struct {
	g *core.Graph

	// edgeOf[i] is the internal flow edge standing in for problem.Edges[i].
	edgeOf []*core.Edge
	// capEdgeOf[nodeID] is the v_in->v_out capacity edge for a split node.
	capEdgeOf map[string]*core.Edge
}

// sideOut returns the internal node ID that should serve as the tail
// of an edge leaving id (the split-out half if id is split).
func (ig *internalGraph) sideOut(id string) string {
	if _, split := ig.capEdgeOf[id]; split {
		return id + splitOutSuffix
	}
	return id
}

// sideIn mirrors sideOut for the head of an edge entering id.
func (ig *internalGraph) sideIn(id string) string {
	if _, split := ig.capEdgeOf[id]; split {
		return id + splitInSuffix
	}
	return id
}

// buildInternalGraph implements the graph normalizer (spec 4.5): every
// capacitated, non-source, non-sink node is split into in/out halves
// joined by a [0, C] capacity edge, and every original edge is rerouted
// through the relevant halves. It also returns each internal edge's
// excess contribution (spec 4.6's "for each internal edge, accumulate
// excess_u -= lo, excess_v += lo"), computed in the same pass since
// every edge this function creates — split-capacity edges included —
// is exactly the universe 4.6 iterates over.
func buildInternalGraph(problem *Problem) (*internalGraph, map[string]float64, error) {
	isTerminal := make(map[string]bool, len(problem.Sources)+len(problem.Sinks))
	for _, s := range problem.Sources {
		isTerminal[s.ID] = true
	}
	for _, id := range problem.Sinks {
		isTerminal[id] = true
	}

	ig := &internalGraph{
		g:         core.NewGraph(core.WithDirected(true), core.WithMultiEdges()),
		capEdgeOf: map[string]*core.Edge{},
	}
	excess := map[string]float64{}

	nodeIDs := make([]string, 0, len(problem.NodeCaps))
	for id := range problem.NodeCaps {
		nodeIDs = append(nodeIDs, id)
	}
	sort.Strings(nodeIDs)
	for _, id := range nodeIDs {
		cap := problem.NodeCaps[id]
		if cap == nil || isTerminal[id] {
			continue
		}
		e, err := ig.g.AddFlowEdge(id+splitInSuffix, id+splitOutSuffix, *cap)
		if err != nil {
			return nil, nil, err
		}
		e.OrigID = "node:" + id
		ig.capEdgeOf[id] = e
	}

	ig.edgeOf = make([]*core.Edge, len(problem.Edges))
	for i, spec := range problem.Edges {
		tail := ig.sideOut(spec.From)
		head := ig.sideIn(spec.To)
		e, err := ig.g.AddFlowEdge(tail, head, spec.Hi-spec.Lo)
		if err != nil {
			return nil, nil, fmt.Errorf("belts: internal edge %d->%d: %w", i, i, err)
		}
		e.Lo = spec.Lo
		e.OrigID = fmt.Sprintf("edge:%d", i)
		ig.edgeOf[i] = e

		excess[tail] -= spec.Lo
		excess[head] += spec.Lo
	}

	return ig, excess, nil
}
