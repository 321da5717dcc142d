// Package bfs provides breadth-first reachability over a core.Graph whose
// edge weights are residual flow capacities.
//
// What
//
//   - Explore vertices reachable from a start vertex by following only
//     edges whose residual capacity exceeds a caller-supplied epsilon.
//   - Return the reachable set plus parent links, for reconstructing a
//     witness path when one is needed.
//
// Why
//
//   - The belts certificate extractor needs exactly this: "the set of
//     nodes reachable from the source side in the residual graph via
//     edges with residual > ε" (the minimum-cut side).
//
// Unlike the teacher's original bfs package, this variant is built for
// weighted residual graphs on purpose — it is the reachability half of a
// max-flow min-cut computation, not a plain unweighted shortest-path
// search, so the original's ErrWeightedGraph guard does not apply here.
//
// Determinism: core.Graph.Neighbors returns edges sorted by (To, ID), and
// this package visits them in that order, so Order is fully reproducible.
package bfs

import "github.com/katalvlaran/optiflow/core"

// ErrStartVertexNotFound is returned when the start ID is absent from g.
var ErrStartVertexNotFound = errStartVertexNotFound{}

type errStartVertexNotFound struct{}

func (errStartVertexNotFound) Error() string { return "bfs: start vertex not found" }

// Result holds the outcome of a residual-reachability traversal.
type Result struct {
	// Reachable is the visited set, including the start vertex.
	Reachable map[string]bool
	// Order is the visit sequence, for deterministic logging/debugging.
	Order []string
	// Parent maps a visited vertex to its predecessor in the BFS tree.
	Parent map[string]string
}

// Reachability runs BFS from startID over g, following only edges whose
// Weight exceeds eps. Returns ErrStartVertexNotFound if startID is absent.
func Reachability(g *core.Graph, startID string, eps float64) (*Result, error) {
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	res := &Result{
		Reachable: map[string]bool{startID: true},
		Order:     make([]string, 0),
		Parent:    make(map[string]string),
	}

	queue := []string{startID}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		for _, e := range g.Neighbors(u) {
			if e.Weight <= eps {
				continue
			}
			if res.Reachable[e.To] {
				continue
			}
			res.Reachable[e.To] = true
			res.Parent[e.To] = u
			queue = append(queue, e.To)
		}
	}

	return res, nil
}

// PathTo reconstructs the BFS-tree path from the traversal's start vertex
// to dest. Returns false if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, bool) {
	if !r.Reachable[dest] {
		return nil, false
	}
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
