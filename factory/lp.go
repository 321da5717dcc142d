package factory

import "sort"

// Relation is a constraint's comparison operator against its RHS.
type Relation int

const (
	// Le is "<=".
	Le Relation = iota
	// Ge is ">=".
	Ge
	// Eq is "=".
	Eq
)

// ConstraintKind tags a constraint's provenance so the solver driver can
// turn a tight constraint back into a bottleneck hint (spec 4.4).
type ConstraintKind int

const (
	KindTarget ConstraintKind = iota
	KindIntermediate
	KindByproduct
	KindRawBound
	KindRawSupply
	KindMachineCapacity
)

// Constraint is one row of the LP: Σ Coeffs[r]·x_r Rel RHS.
type Constraint struct {
	Coeffs map[string]float64
	Rel    Relation
	RHS    float64
	Kind   ConstraintKind
	// Ref is the item or machine-type ID this constraint bounds. Only
	// raw-supply and machine-capacity rows feed a bottleneck hint.
	Ref string
}

// LP is the full linear program: one continuous x_r >= 0 per recipe,
// built deterministically in sorted recipe/item order (spec 4.3).
type LP struct {
	VarOrder    []string
	Constraints []Constraint
	// Objective is the minimize-total-machines objective: coefficient
	// 1/eff_r for every recipe (spec 4.3's "minimize Σ x_r / eff_r").
	Objective map[string]float64
}

// Build constructs the LP for problem with the target equality pinned to
// targetRate (not necessarily problem.TargetRate — the solver driver's
// binary search rebuilds this at each candidate rate).
func Build(problem *Problem, targetRate float64) *LP {
	varOrder := make([]string, len(problem.Recipes))
	for i, r := range problem.Recipes {
		varOrder[i] = r.Name
	}

	lp := &LP{VarOrder: varOrder, Objective: map[string]float64{}}
	for _, r := range problem.Recipes {
		lp.Objective[r.Name] = 1.0 / r.Eff
	}

	// net_i = Σ_r effOut_r[i]·x_r − Σ_r in_r[i]·x_r, built per item.
	items := collectItems(problem)
	for _, item := range items {
		coeffs := netCoefficients(problem, item)

		switch {
		case item == problem.Classes.Target:
			lp.Constraints = append(lp.Constraints, Constraint{Coeffs: coeffs, Rel: Eq, RHS: targetRate, Kind: KindTarget, Ref: item})
		case problem.Classes.Intermediate[item]:
			lp.Constraints = append(lp.Constraints, Constraint{Coeffs: coeffs, Rel: Eq, RHS: 0, Kind: KindIntermediate, Ref: item})
		case problem.Classes.Byproduct[item]:
			lp.Constraints = append(lp.Constraints, Constraint{Coeffs: coeffs, Rel: Ge, RHS: 0, Kind: KindByproduct, Ref: item})
		case problem.Classes.Raw[item]:
			lp.Constraints = append(lp.Constraints, Constraint{Coeffs: coeffs, Rel: Le, RHS: 0, Kind: KindRawBound, Ref: item})
			// A raw item absent from raw_supply_per_min has no stated
			// cap and is treated as unconstrained, not zero.
			if cap, ok := problem.RawSupply[item]; ok {
				negated := negate(coeffs)
				lp.Constraints = append(lp.Constraints, Constraint{Coeffs: negated, Rel: Le, RHS: cap, Kind: KindRawSupply, Ref: item})
			}
		}
	}

	// Machine capacity: Σ_{r on m} x_r/eff_r <= max_machines_m, one per
	// machine type that actually has a recipe assigned to it.
	machineIDs := make([]string, 0, len(problem.Machines))
	for id := range problem.Machines {
		machineIDs = append(machineIDs, id)
	}
	sort.Strings(machineIDs)
	for _, mid := range machineIDs {
		coeffs := map[string]float64{}
		for _, r := range problem.Recipes {
			if r.Machine == mid {
				coeffs[r.Name] = 1.0 / r.Eff
			}
		}
		if len(coeffs) == 0 {
			continue
		}
		lp.Constraints = append(lp.Constraints, Constraint{
			Coeffs: coeffs, Rel: Le, RHS: float64(problem.Machines[mid].MaxMachines),
			Kind: KindMachineCapacity, Ref: mid,
		})
	}

	return lp
}

// collectItems returns every item referenced by any recipe's inputs or
// outputs, sorted ascending (spec 4.3's "deterministic construction").
func collectItems(problem *Problem) []string {
	set := map[string]bool{}
	for _, r := range problem.Recipes {
		for item := range r.In {
			set[item] = true
		}
		for item := range r.Out {
			set[item] = true
		}
	}
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

func netCoefficients(problem *Problem, item string) map[string]float64 {
	coeffs := map[string]float64{}
	for _, r := range problem.Recipes {
		c := r.EffOut[item] - r.In[item]
		if c != 0 {
			coeffs[r.Name] = c
		}
	}
	return coeffs
}

func negate(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = -v
	}
	return out
}
