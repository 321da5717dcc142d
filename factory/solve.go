package factory

import (
	"context"
	"math"
	"sort"
)

// rateSearchIterations bounds the binary search for the best feasible
// target rate on infeasibility (spec 4.4: "~40 iterations -> ~1e-12
// relative precision").
const rateSearchIterations = 40

// bottleneckEps classifies a raw-supply or machine-capacity constraint
// as tight when its slack falls within this tolerance of zero (spec
// §9: ε = 1e-9 engine-wide for Factory classification).
const bottleneckEps = 1e-9

// Solve loads s, builds the LP at the requested target rate, and solves
// it. On infeasibility it binary-searches rate ∈ [0, target_rate] for
// the largest feasible rate and reports bottleneck hints at that point.
func Solve(ctx context.Context, s Schema) (*Result, error) {
	problem, err := Load(s)
	if err != nil {
		return nil, err
	}

	lp := Build(problem, problem.TargetRate)
	res, slacks := solve(lp)

	select {
	case <-ctx.Done():
		return nil, &NumericAnomaly{Reason: "deadline exceeded before a solution was reached"}
	default:
	}

	switch res.Status {
	case simplexUnbounded:
		return nil, &NumericAnomaly{Reason: "LP reported unbounded, which the construction should make impossible"}
	case simplexOptimal:
		return shapeOptimal(problem, lp, res, slacks), nil
	case simplexInfeasible:
		return searchMaxFeasible(ctx, problem)
	}
	return nil, &NumericAnomaly{Reason: "unreachable simplex status"}
}

// searchMaxFeasible binary-searches rate in [0, problem.TargetRate] for
// the greatest feasible rate, rebuilding and re-solving the LP at each
// midpoint (spec 4.4). problem.TargetRate itself is already known
// infeasible by the caller.
func searchMaxFeasible(ctx context.Context, problem *Problem) (*Result, error) {
	lo, hi := 0.0, problem.TargetRate
	var bestLP *LP
	var bestRes simplexResult
	var bestSlacks []float64

	// rate 0 is always feasible (every x_r = 0 satisfies every
	// constraint), so this primes best* before the loop narrows in.
	zeroLP := Build(problem, 0)
	bestRes, bestSlacks = solve(zeroLP)
	bestLP = zeroLP

	for i := 0; i < rateSearchIterations; i++ {
		select {
		case <-ctx.Done():
			return nil, &NumericAnomaly{Reason: "deadline exceeded during max-feasible-target search"}
		default:
		}

		mid := (lo + hi) / 2
		lp := Build(problem, mid)
		res, slacks := solve(lp)
		if res.Status == simplexOptimal {
			lo = mid
			bestLP, bestRes, bestSlacks = lp, res, slacks
		} else {
			hi = mid
		}
	}

	hints := bottleneckHints(bestLP, bestSlacks)
	rate := lo
	result := &Result{
		Status:                  "infeasible",
		MaxFeasibleTargetPerMin: &rate,
		BottleneckHints:         &hints,
	}
	if bestRes.Values != nil {
		shapeProduction(problem, bestLP, bestRes, result)
	}
	return result, nil
}

// shapeOptimal builds the full ok-status result from a feasible solve at
// the problem's own target rate.
func shapeOptimal(problem *Problem, lp *LP, res simplexResult, slacks []float64) *Result {
	result := &Result{Status: "ok"}
	shapeProduction(problem, lp, res, result)
	return result
}

// shapeProduction fills in the per-recipe/per-machine/raw-consumption
// fields shared by both the ok and infeasible-with-partial-solution
// paths (spec 4.5's result shaper).
func shapeProduction(problem *Problem, lp *LP, res simplexResult, result *Result) {
	perRecipe := make(map[string]float64, len(problem.Recipes))
	perMachine := map[string]float64{}
	for _, r := range problem.Recipes {
		rate := res.Values[r.Name]
		perRecipe[r.Name] = round6(rate)
		perMachine[r.Machine] += rate / r.Eff
	}
	for id, count := range perMachine {
		perMachine[id] = round6(count)
	}

	rawConsumption := map[string]float64{}
	for item := range problem.Classes.Raw {
		consumption := 0.0
		for _, r := range problem.Recipes {
			consumption += r.In[item] * res.Values[r.Name]
		}
		rawConsumption[item] = round6(consumption)
	}

	byproductSurplus := map[string]float64{}
	for item := range problem.Classes.Byproduct {
		surplus := 0.0
		for _, r := range problem.Recipes {
			surplus += r.EffOut[item]*res.Values[r.Name] - r.In[item]*res.Values[r.Name]
		}
		if surplus > 1e-9 {
			byproductSurplus[item] = round6(surplus)
		}
	}

	result.PerRecipeCraftsPerMin = perRecipe
	result.PerMachineCounts = perMachine
	result.RawConsumptionPerMin = rawConsumption
	if len(byproductSurplus) > 0 {
		result.ByproductSurplusPerMin = byproductSurplus
	}
}

// bottleneckHints reads off which raw-supply and machine-capacity rows
// are tight (slack within bottleneckEps of zero) at the given solve.
func bottleneckHints(lp *LP, slacks []float64) BottleneckHint {
	raw := map[string]bool{}
	machines := map[string]bool{}
	for i, c := range lp.Constraints {
		if math.IsNaN(slacks[i]) {
			continue
		}
		if slacks[i] > bottleneckEps {
			continue
		}
		switch c.Kind {
		case KindRawSupply:
			raw[c.Ref] = true
		case KindMachineCapacity:
			machines[c.Ref] = true
		}
	}
	return BottleneckHint{Raw: sortedKeys(raw), Machines: sortedKeys(machines)}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// round6 rounds to six decimal places, half away from zero, matching
// the determinism contract's fixed output precision (spec §5).
func round6(v float64) float64 {
	scaled := v * 1e6
	if scaled >= 0 {
		return math.Floor(scaled+0.5) / 1e6
	}
	return math.Ceil(scaled-0.5) / 1e6
}
