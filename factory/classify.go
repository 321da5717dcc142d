package factory

// classify partitions every item referenced by recipes into
// intermediate/byproduct/raw given the target item (spec 4.1):
//
//	produced     = union of output keys across all recipes
//	consumed     = union of input keys across all recipes
//	raw          = consumed \ produced            (items only consumed)
//	byproduct    = produced \ consumed \ {target}
//	intermediate = (produced ∩ consumed) \ {target}
//
// Target-membership takes precedence: the target item is always
// classified as target, never as intermediate or byproduct, and this
// function fails with *MalformedProblem if no recipe produces it.
func classify(recipes []Recipe, target string) (Classes, error) {
	produced := map[string]bool{}
	consumed := map[string]bool{}
	for _, r := range recipes {
		for item := range r.Out {
			produced[item] = true
		}
		for item := range r.In {
			consumed[item] = true
		}
	}

	if !produced[target] {
		return Classes{}, &MalformedProblem{Field: "target.item", Reason: "target item " + target + " is not produced by any recipe"}
	}

	intermediate := map[string]bool{}
	byproduct := map[string]bool{}
	raw := map[string]bool{}

	for item := range consumed {
		if !produced[item] {
			raw[item] = true
		}
	}
	for item := range produced {
		if item == target {
			continue
		}
		if consumed[item] {
			intermediate[item] = true
		} else {
			byproduct[item] = true
		}
	}

	return Classes{
		Target:       target,
		Intermediate: intermediate,
		Byproduct:    byproduct,
		Raw:          raw,
	}, nil
}
