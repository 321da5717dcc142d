package belts

import (
	"sort"
	"strings"

	"github.com/katalvlaran/optiflow/bfs"
)

// certEps is the residual-zero tolerance used engine-wide for Belts
// cut/tightness classification (spec §9: ε = 1e-12).
const certEps = 1e-12

// buildCertificate implements the certificate extractor (spec 4.9): the
// residual-reachable set from reachFrom, the original edges and nodes
// it cuts, and the caller-supplied demand balance.
func buildCertificate(ig *internalGraph, problem *Problem, reachFrom string, demandBalance float64) (*Certificate, error) {
	res, err := bfs.Reachability(ig.g, reachFrom, certEps)
	if err != nil {
		return nil, err
	}
	reachable := res.Reachable

	originals := map[string]bool{}
	for internalID := range reachable {
		if id, ok := originalNodeID(internalID); ok {
			originals[id] = true
		}
	}

	var tightEdges []TightEdge
	for i, spec := range problem.Edges {
		e := ig.edgeOf[i]
		if reachable[e.From] && !reachable[e.To] {
			tightEdges = append(tightEdges, TightEdge{From: spec.From, To: spec.To})
		}
	}
	sort.Slice(tightEdges, func(i, j int) bool {
		if tightEdges[i].From != tightEdges[j].From {
			return tightEdges[i].From < tightEdges[j].From
		}
		return tightEdges[i].To < tightEdges[j].To
	})

	var tightNodes []string
	for nodeID, capEdge := range ig.capEdgeOf {
		if reachable[capEdge.From] && !reachable[capEdge.To] {
			tightNodes = append(tightNodes, nodeID)
		}
	}
	sort.Strings(tightNodes)

	return &Certificate{
		CutReachable:  sortedKeys(originals),
		TightNodes:    tightNodes,
		TightEdges:    tightEdges,
		DemandBalance: round6(demandBalance),
	}, nil
}

// originalNodeID maps an internal node ID back to the original
// problem-level node it represents, or ok=false for a virtual node
// (S*, T*, S, T) that has no original counterpart.
func originalNodeID(internalID string) (id string, ok bool) {
	if strings.HasPrefix(internalID, "\x00") {
		return "", false
	}
	if trimmed := strings.TrimSuffix(internalID, splitInSuffix); trimmed != internalID {
		return trimmed, true
	}
	if trimmed := strings.TrimSuffix(internalID, splitOutSuffix); trimmed != internalID {
		return trimmed, true
	}
	return internalID, true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
