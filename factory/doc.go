// Package factory solves for steady-state recipe crafting rates that hit
// a target production rate while minimizing total machines used.
//
// Pipeline (mirrors the teacher's package-per-concern split, collapsed
// into one package since each stage is a handful of functions rather
// than an independently reusable library):
//
//	Load       — problem.go validates the decoded Schema (schema.go).
//	classify   — classify.go partitions items into target/intermediate/byproduct/raw.
//	rates      — rates.go computes effective crafts/min per recipe.
//	build      — lp.go constructs the LP: variables, balance/supply/capacity
//	             constraints, and the minimize-total-machines objective.
//	simplex    — simplex.go is a from-scratch, deterministic two-phase
//	             primal simplex (see DESIGN.md for why this is hand-rolled
//	             rather than a wrapped third-party solver).
//	Solve      — solve.go drives the LP, and on infeasibility binary-searches
//	             the target rate for the best feasible one, with bottleneck hints.
//
// Determinism: every map derived from the input (items, recipes, machine
// types) is iterated in sorted-ID order before it reaches the LP builder,
// and the simplex's pivoting rule is index-deterministic (Bland's rule),
// so identical input bytes always produce an identical solution vector.
package factory
