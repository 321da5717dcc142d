// Package belts solves generalized maximum flow: edges with lower and
// upper bounds, per-node throughput capacities, and multiple sources
// and sinks, emitting either an optimal flow assignment or an
// infeasibility certificate.
//
// Pipeline (spec 4.5-4.10):
//
//	Load              — problem.go validates the decoded Schema (schema.go).
//	buildInternalGraph — normalize.go splits capacitated interior nodes into
//	                     in/out halves and lowers every bound edge onto a
//	                     core.Graph flow network, in the same pass computing
//	                     each node's lower-bound excess.
//	attachVirtual      — lowerbound.go wires the super-source/sink pair (phase 1
//	                     feasibility) and the main source/sink pair plus its
//	                     T->S back-edge (phase 2).
//	Solve              — solve.go runs phase 1 and phase 2 via flow.EdmondsKarp,
//	                     and on phase-1 infeasibility builds a certificate
//	                     (certificate.go) instead of reconstructing flows
//	                     (reconstruct.go).
//
// Determinism: every map derived from the input is iterated in
// sorted-ID order before it reaches the graph builder, core.Graph's
// adjacency traversal is itself sorted, and Edmonds-Karp's BFS visits
// that sorted order — so identical input bytes always produce an
// identical flow assignment or certificate.
package belts
