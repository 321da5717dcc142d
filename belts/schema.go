package belts

// Schema is the raw, wire-format Belts problem as decoded from stdin.
type Schema struct {
	Sources []SourceSchema `json:"sources"`
	Sinks   []string       `json:"sinks"`
	Nodes   []NodeSchema   `json:"nodes"`
	Edges   []EdgeSchema   `json:"edges"`
}

// SourceSchema is a declared source node. Capacity nil means unlimited.
type SourceSchema struct {
	ID       string   `json:"id"`
	Capacity *float64 `json:"capacity"`
}

// NodeSchema is a declared interior node. Capacity nil means unlimited.
type NodeSchema struct {
	ID       string   `json:"id"`
	Capacity *float64 `json:"capacity"`
}

// EdgeSchema is one directed edge with a lower and upper flow bound.
type EdgeSchema struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Lo   float64 `json:"lo"`
	Hi   float64 `json:"hi"`
}

// Result is the wire-format Belts output.
type Result struct {
	Status string `json:"status"`

	MaxFlowPerMin *float64     `json:"max_flow_per_min,omitempty"`
	Flows         []FlowSchema `json:"flows,omitempty"`

	Certificate *Certificate `json:"certificate,omitempty"`

	Reason string `json:"reason,omitempty"`
}

// FlowSchema is the achieved flow on one original edge.
type FlowSchema struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

// Certificate is the infeasibility witness (spec 4.9), emitted only
// when Result.Status is "infeasible".
type Certificate struct {
	CutReachable  []string    `json:"cut_reachable"`
	TightNodes    []string    `json:"tight_nodes"`
	TightEdges    []TightEdge `json:"tight_edges"`
	DemandBalance float64     `json:"demand_balance"`
}

// TightEdge is one original edge crossing the min-cut.
type TightEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}
