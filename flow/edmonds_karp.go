package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/optiflow/core"
)

// EdmondsKarp computes the maximum flow from source to sink in g,
// mutating g's edge weights in place so that on return g *is* the
// residual graph (callers that need a cut certificate run bfs.Reachability
// directly on g afterward).
//
// g must have been built with core.Graph.AddFlowEdge so that every
// capacity edge already has a paired reverse edge (Twin); this lets each
// augmentation step update both sides in O(path length) instead of
// searching adjacency for a reverse edge, as the teacher's original
// aggregate-and-rebuild version did.
//
// Returns ErrSourceNotFound / ErrSinkNotFound if either endpoint is
// absent from g, or the ctx error if cancelled mid-solve.
//
// Complexity: O(V · E²).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts Options) (maxFlow float64, err error) {
	if opts.Epsilon <= 0 {
		opts = DefaultOptions()
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}

	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		path, bottleneck := bfsAugmentingPath(ctx, g, source, sink, opts.Epsilon)
		if path == nil || bottleneck <= opts.Epsilon {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			break
		}

		for _, e := range path {
			e.Weight -= bottleneck
			e.Twin.Weight += bottleneck
		}
		maxFlow += bottleneck
	}

	return maxFlow, nil
}

// bfsAugmentingPath finds the shortest (fewest-edge) source→sink path of
// edges with residual capacity > eps, visiting each vertex's adjacency in
// sorted order for determinism. Returns the path as a slice of traversed
// edges and its bottleneck capacity, or (nil, 0) if sink is unreachable.
func bfsAugmentingPath(ctx context.Context, g *core.Graph, source, sink string, eps float64) ([]*core.Edge, float64) {
	parentEdge := make(map[string]*core.Edge)
	visited := map[string]bool{source: true}
	bottleneck := map[string]float64{source: math.Inf(1)}

	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if ctx.Err() != nil {
			return nil, 0
		}
		for _, e := range g.Neighbors(u) {
			if e.Weight <= eps || visited[e.To] {
				continue
			}
			visited[e.To] = true
			parentEdge[e.To] = e
			bottleneck[e.To] = math.Min(bottleneck[u], e.Weight)
			if e.To == sink {
				return reconstructPath(parentEdge, source, sink), bottleneck[sink]
			}
			queue = append(queue, e.To)
		}
	}

	return nil, 0
}

func reconstructPath(parentEdge map[string]*core.Edge, source, sink string) []*core.Edge {
	var path []*core.Edge
	for cur := sink; cur != source; {
		e := parentEdge[cur]
		path = append([]*core.Edge{e}, path...)
		cur = e.From
	}
	return path
}
