package factory

import "sort"

// Recipe is an immutable, validated craftable recipe with its derived
// rate-model fields filled in (see rates.go).
type Recipe struct {
	Name    string
	Machine string
	TimeS   float64
	In      map[string]float64
	Out     map[string]float64

	// Eff is crafts/min for one machine of this recipe's type (4.2).
	Eff float64
	// EffOut is Out scaled by the machine's productivity multiplier.
	// Inputs are never scaled (per spec 4.2).
	EffOut map[string]float64
}

// Machine is one machine type's module bonuses and count cap.
type Machine struct {
	ID          string
	BaseSpeed   float64
	SpeedMult   float64
	ProdMult    float64
	MaxMachines int
}

// Classes is the partition of every item referenced by the problem.
type Classes struct {
	Target       string
	Intermediate map[string]bool
	Byproduct    map[string]bool
	Raw          map[string]bool
}

// Problem is the validated, immutable Factory problem. Everything
// downstream (the LP builder, the solver driver) only ever reads from a
// Problem — it never mutates one.
type Problem struct {
	TargetItem string
	TargetRate float64
	Recipes    []Recipe // sorted by Name ascending
	Machines   map[string]Machine
	RawSupply  map[string]float64
	Classes    Classes
}

// Load validates s and returns an immutable Problem, or a
// *MalformedProblem describing the first violation found.
func Load(s Schema) (*Problem, error) {
	if s.Target.Item == "" {
		return nil, &MalformedProblem{Field: "target.item", Reason: "empty item identifier"}
	}
	if s.Target.RatePerMin < 0 {
		return nil, &MalformedProblem{Field: "target.rate_per_min", Reason: "negative rate"}
	}
	if len(s.Recipes) == 0 {
		return nil, &MalformedProblem{Field: "recipes", Reason: "no recipes defined"}
	}

	seenRecipe := make(map[string]bool, len(s.Recipes))
	recipes := make([]Recipe, 0, len(s.Recipes))
	for _, rs := range s.Recipes {
		if rs.Name == "" {
			return nil, &MalformedProblem{Field: "recipes[].name", Reason: "empty recipe identifier"}
		}
		if seenRecipe[rs.Name] {
			return nil, &MalformedProblem{Field: "recipes[].name", Reason: "duplicate recipe name " + rs.Name}
		}
		seenRecipe[rs.Name] = true
		if rs.Machine == "" {
			return nil, &MalformedProblem{Field: "recipes[].machine", Reason: "empty machine identifier for recipe " + rs.Name}
		}
		if rs.TimeS <= 0 {
			return nil, &MalformedProblem{Field: "recipes[].time_s", Reason: "non-positive crafting time for recipe " + rs.Name}
		}
		if _, ok := s.Machines[rs.Machine]; !ok {
			return nil, &MalformedProblem{Field: "recipes[].machine", Reason: "recipe " + rs.Name + " references unknown machine " + rs.Machine}
		}
		in := map[string]float64{}
		for item, qty := range rs.In {
			if item == "" {
				return nil, &MalformedProblem{Field: "recipes[].in", Reason: "empty item identifier in recipe " + rs.Name}
			}
			if qty < 0 {
				return nil, &MalformedProblem{Field: "recipes[].in", Reason: "negative input quantity in recipe " + rs.Name}
			}
			in[item] = qty
		}
		out := map[string]float64{}
		for item, qty := range rs.Out {
			if item == "" {
				return nil, &MalformedProblem{Field: "recipes[].out", Reason: "empty item identifier in recipe " + rs.Name}
			}
			if qty < 0 {
				return nil, &MalformedProblem{Field: "recipes[].out", Reason: "negative output quantity in recipe " + rs.Name}
			}
			out[item] = qty
		}
		recipes = append(recipes, Recipe{Name: rs.Name, Machine: rs.Machine, TimeS: rs.TimeS, In: in, Out: out})
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })

	machines := make(map[string]Machine, len(s.Machines))
	for id, ms := range s.Machines {
		if ms.BaseSpeedCraftsPerMin <= 0 {
			return nil, &MalformedProblem{Field: "machines." + id + ".base_speed_crafts_per_min", Reason: "must be positive"}
		}
		if ms.SpeedMult < -1 {
			return nil, &MalformedProblem{Field: "machines." + id + ".speed_mult", Reason: "must be >= -1"}
		}
		if ms.ProdMult < 0 {
			return nil, &MalformedProblem{Field: "machines." + id + ".prod_mult", Reason: "must be >= 0"}
		}
		if ms.MaxMachines < 0 {
			return nil, &MalformedProblem{Field: "machines." + id + ".max_machines", Reason: "must be >= 0"}
		}
		machines[id] = Machine{ID: id, BaseSpeed: ms.BaseSpeedCraftsPerMin, SpeedMult: ms.SpeedMult, ProdMult: ms.ProdMult, MaxMachines: ms.MaxMachines}
	}

	rawSupply := make(map[string]float64, len(s.RawSupply))
	for item, cap := range s.RawSupply {
		if item == "" {
			return nil, &MalformedProblem{Field: "raw_supply_per_min", Reason: "empty item identifier"}
		}
		if cap < 0 {
			return nil, &MalformedProblem{Field: "raw_supply_per_min." + item, Reason: "negative supply cap"}
		}
		rawSupply[item] = cap
	}

	if err := computeRates(recipes, machines); err != nil {
		return nil, err
	}

	classes, err := classify(recipes, s.Target.Item)
	if err != nil {
		return nil, err
	}

	return &Problem{
		TargetItem: s.Target.Item,
		TargetRate: s.Target.RatePerMin,
		Recipes:    recipes,
		Machines:   machines,
		RawSupply:  rawSupply,
		Classes:    classes,
	}, nil
}
