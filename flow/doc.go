// Package flow implements Edmonds–Karp maximum flow on a *core.Graph.
//
// belts needs exactly one flow algorithm, and the spec pins the kernel to
// Edmonds–Karp for its polynomial worst case and, more importantly, its
// determinism: shortest-augmenting-path BFS visiting a sorted adjacency
// list gives bit-identical augmentation order for bit-identical input.
// Ford–Fulkerson (DFS paths, no polynomial bound) and Dinic (level-graph
// rebuilds, more moving parts) were both in the teacher's original flow
// package but are not carried forward here — see DESIGN.md for why
// neither earns a place in this build.
//
// Capacities are float64, not the teacher's int64, so the lower-bound
// transform in belts can express fractional items/min.
package flow

import "errors"

// ErrSourceNotFound is returned when the source vertex is missing from g.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the sink vertex is missing from g.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// Options configures EdmondsKarp.
type Options struct {
	// Epsilon: capacities/residuals at or below this are treated as zero.
	Epsilon float64
}

// DefaultOptions returns production-safe defaults (Epsilon = 1e-12, per
// spec's residual-zero tolerance).
func DefaultOptions() Options {
	return Options{Epsilon: 1e-12}
}
