// Package optiflow is a pair of batch optimization CLI engines built on
// a shared core graph substrate.
//
//   - factory — solves for steady-state recipe crafting rates that hit
//     a target production rate while minimizing total machines used
//     (linear programming via a from-scratch two-phase simplex).
//   - belts — solves generalized maximum flow over a network with
//     per-edge lower/upper bounds, per-node capacities, and multiple
//     sources/sinks, emitting either a flow assignment or a minimum-cut
//     infeasibility certificate (Edmonds-Karp over core.Graph).
//
// Both engines read one JSON problem from stdin and write one JSON
// result to stdout; see cmd/factory and cmd/belts.
//
// See DESIGN.md for how each package is grounded, and SPEC_FULL.md for
// the full specification both engines implement.
package optiflow
