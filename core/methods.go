// File: methods.go
// Role: Vertex/edge lifecycle and deterministic queries.
//
// Grounded on lvlath's core/methods_vertices.go, core/methods_edges.go
// and core/adjacency_list.go, collapsed into one file since this
// package's surface is a small fraction of the original's.
package core

import "strconv"

// AddVertex inserts v if its ID is not already present (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
func (g *Graph) AddVertex(v *Vertex) error {
	if v == nil || v.ID == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return nil
	}
	g.vertices[v.ID] = v
	g.adjacencyList[v.ID] = make(map[string][]*Edge)
	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// Vertex returns the stored vertex, or nil if absent.
func (g *Graph) Vertex(id string) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[id]
}

// Vertices returns all vertex IDs sorted ascending, for deterministic
// iteration over the graph.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sortStrings(ids)
	return ids
}

// nextID generates a monotonic, stable edge identifier ("e1", "e2", ...).
// Caller must hold g.mu.
func (g *Graph) nextID() string {
	g.nextEdgeID++
	return "e" + strconv.FormatUint(g.nextEdgeID, 10)
}

// AddEdge inserts a directed edge from→to with the given capacity and
// lower bound, auto-creating missing endpoints. Returns the new edge's
// ID. Rejects negative weight or lower bound.
func (g *Graph) AddEdge(from, to string, weight, lo float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || lo < 0 {
		return "", ErrNegativeWeight
	}

	_ = g.AddVertex(&Vertex{ID: from})
	_ = g.AddVertex(&Vertex{ID: to})

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		if existing := g.adjacencyList[from][to]; len(existing) > 0 {
			return "", ErrEdgeNotFound
		}
	}

	eid := g.nextID()
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Lo: lo, OrigID: eid}
	g.edges[eid] = e
	g.adjacencyList[from][to] = append(g.adjacencyList[from][to], e)

	if !g.directed {
		e2 := &Edge{ID: g.nextID(), From: to, To: from, Weight: weight, Lo: lo, OrigID: eid}
		g.edges[e2.ID] = e2
		g.adjacencyList[to][from] = append(g.adjacencyList[to][from], e2)
	}

	return eid, nil
}

// AddFlowEdge inserts a forward edge from→to with the given capacity and
// a paired zero-capacity reverse edge to→from, wiring each as the
// other's Twin. This is the standard residual-graph construction for
// max-flow: augmenting a path only ever needs to adjust e.Weight and
// e.Twin.Weight, never search adjacency for the reverse edge.
func (g *Graph) AddFlowEdge(from, to string, capacity float64) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if capacity < 0 {
		return nil, ErrNegativeWeight
	}

	_ = g.AddVertex(&Vertex{ID: from})
	_ = g.AddVertex(&Vertex{ID: to})

	g.mu.Lock()
	defer g.mu.Unlock()

	fwdID := g.nextID()
	revID := g.nextID()
	fwd := &Edge{ID: fwdID, From: from, To: to, Weight: capacity, OrigID: fwdID}
	rev := &Edge{ID: revID, From: to, To: from, Weight: 0, OrigID: fwdID}
	fwd.Twin, rev.Twin = rev, fwd

	g.edges[fwdID] = fwd
	g.edges[revID] = rev
	g.adjacencyList[from][to] = append(g.adjacencyList[from][to], fwd)
	g.adjacencyList[to][from] = append(g.adjacencyList[to][from], rev)

	return fwd, nil
}

// RemoveVertex deletes id and every edge incident to it (either
// direction), auto-removing dangling adjacency entries. Used by belts
// to tear down the phase-1 virtual source/sink between max-flow phases.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			delete(g.edges, eid)
		}
	}
	for from, tos := range g.adjacencyList {
		if from == id {
			continue
		}
		for to, edges := range tos {
			if to != id {
				continue
			}
			filtered := edges[:0]
			for _, e := range edges {
				if e.From != id && e.To != id {
					filtered = append(filtered, e)
				}
			}
			g.adjacencyList[from][to] = filtered
		}
	}
	delete(g.adjacencyList, id)
	delete(g.vertices, id)
	return nil
}

// RemoveEdge deletes the edge with the given ID and, if it was built
// via AddFlowEdge, its paired Twin — the two exist only as a matched
// residual/reverse pair, so removing one without the other would leave
// a dangling reverse edge with no forward counterpart.
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.removeEdgeLocked(e)
	if e.Twin != nil {
		g.removeEdgeLocked(e.Twin)
	}
	return nil
}

// removeEdgeLocked removes e from g.edges and its adjacency bucket.
// Caller must hold g.mu.
func (g *Graph) removeEdgeLocked(e *Edge) {
	delete(g.edges, e.ID)
	bucket := g.adjacencyList[e.From][e.To]
	filtered := bucket[:0]
	for _, cand := range bucket {
		if cand.ID != e.ID {
			filtered = append(filtered, cand)
		}
	}
	g.adjacencyList[e.From][e.To] = filtered
}

// EdgeByID returns the edge with the given ID, or nil.
func (g *Graph) EdgeByID(id string) *Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[id]
}

// Edges returns all edges sorted by ID ascending.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdgesByID(out)
	return out
}

// Neighbors returns the edges leaving id, sorted by (To, ID) so that
// traversal order is reproducible regardless of map iteration order.
func (g *Graph) Neighbors(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adjacencyList[id]
	out := make([]*Edge, 0, len(nbrs))
	for _, edges := range nbrs {
		out = append(out, edges...)
	}
	sortEdgesByToThenID(out)
	return out
}

// Directed reports the graph's default edge directedness.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
