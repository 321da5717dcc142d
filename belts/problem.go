package belts

import "strconv"

// SourceNode is a validated declared source.
type SourceNode struct {
	ID       string
	Capacity *float64 // nil = unlimited
}

// EdgeSpec is one validated directed edge with its flow bounds.
type EdgeSpec struct {
	From, To string
	Lo, Hi   float64
}

// Problem is the validated, immutable Belts problem. Every node
// referenced anywhere — declared or merely used as an edge endpoint —
// ends up in exactly one of Sources, Sinks, or NodeCaps.
type Problem struct {
	Sources  []SourceNode
	Sinks    []string
	NodeCaps map[string]*float64 // interior node ID -> capacity (nil = unlimited)
	Edges    []EdgeSpec
}

// Load validates s and returns an immutable Problem, or a
// *MalformedProblem describing the first violation found.
//
// An edge endpoint that names neither a declared source, sink, nor
// node is implicitly treated as an interior node with unlimited
// capacity — mirroring core.Graph.AddEdge's auto-vertex convention —
// rather than forcing every pass-through node to be spelled out.
func Load(s Schema) (*Problem, error) {
	if len(s.Sources) == 0 {
		return nil, &MalformedProblem{Field: "sources", Reason: "no sources declared"}
	}
	if len(s.Sinks) == 0 {
		return nil, &MalformedProblem{Field: "sinks", Reason: "no sinks declared"}
	}

	role := make(map[string]string, len(s.Sources)+len(s.Sinks)+len(s.Nodes))
	sources := make([]SourceNode, 0, len(s.Sources))
	for _, ss := range s.Sources {
		if ss.ID == "" {
			return nil, &MalformedProblem{Field: "sources[].id", Reason: "empty node identifier"}
		}
		if r, seen := role[ss.ID]; seen {
			return nil, &MalformedProblem{Field: "sources[].id", Reason: ss.ID + " already declared as " + r}
		}
		if ss.Capacity != nil && *ss.Capacity < 0 {
			return nil, &MalformedProblem{Field: "sources[].capacity", Reason: "negative capacity for " + ss.ID}
		}
		role[ss.ID] = "source"
		sources = append(sources, SourceNode{ID: ss.ID, Capacity: ss.Capacity})
	}

	sinks := make([]string, 0, len(s.Sinks))
	for _, id := range s.Sinks {
		if id == "" {
			return nil, &MalformedProblem{Field: "sinks[]", Reason: "empty node identifier"}
		}
		if r, seen := role[id]; seen {
			return nil, &MalformedProblem{Field: "sinks[]", Reason: id + " already declared as " + r}
		}
		role[id] = "sink"
		sinks = append(sinks, id)
	}

	nodeCaps := make(map[string]*float64, len(s.Nodes))
	for _, ns := range s.Nodes {
		if ns.ID == "" {
			return nil, &MalformedProblem{Field: "nodes[].id", Reason: "empty node identifier"}
		}
		if r, seen := role[ns.ID]; seen {
			return nil, &MalformedProblem{Field: "nodes[].id", Reason: ns.ID + " already declared as " + r}
		}
		if ns.Capacity != nil && *ns.Capacity < 0 {
			return nil, &MalformedProblem{Field: "nodes[].capacity", Reason: "negative capacity for " + ns.ID}
		}
		role[ns.ID] = "node"
		nodeCaps[ns.ID] = ns.Capacity
	}

	if len(s.Edges) == 0 {
		return nil, &MalformedProblem{Field: "edges", Reason: "no edges defined"}
	}

	edges := make([]EdgeSpec, 0, len(s.Edges))
	for i, es := range s.Edges {
		if es.From == "" || es.To == "" {
			return nil, &MalformedProblem{Field: "edges[].from/to", Reason: "empty node identifier"}
		}
		if es.Lo < 0 {
			return nil, &MalformedProblem{Field: "edges[].lo", Reason: "negative lower bound on edge " + edgeLabel(i, es)}
		}
		if es.Hi < es.Lo {
			return nil, &MalformedProblem{Field: "edges[].hi", Reason: "upper bound below lower bound on edge " + edgeLabel(i, es)}
		}
		for _, id := range [2]string{es.From, es.To} {
			if _, known := role[id]; !known {
				role[id] = "node"
				nodeCaps[id] = nil
			}
		}
		edges = append(edges, EdgeSpec{From: es.From, To: es.To, Lo: es.Lo, Hi: es.Hi})
	}

	return &Problem{Sources: sources, Sinks: sinks, NodeCaps: nodeCaps, Edges: edges}, nil
}

func edgeLabel(i int, es EdgeSchema) string {
	return es.From + "->" + es.To + " (index " + strconv.Itoa(i) + ")"
}
