package factory

// computeRates fills in Eff and EffOut for every recipe (spec 4.2):
//
//	eff_r = base_speed_m * (1 + speed_mult_m) * 60 / time_s_r
//	effective_output_r[i] = base_output_r[i] * (1 + prod_mult_m)
//
// Inputs are never scaled by productivity. eff_r must be strictly
// positive; Load's validation of base_speed/time_s/speed_mult already
// guarantees this algebraically, but a defensive check still guards
// against a machine with speed_mult pinned exactly at -1.
func computeRates(recipes []Recipe, machines map[string]Machine) error {
	for i := range recipes {
		r := &recipes[i]
		m := machines[r.Machine] // presence already validated by Load

		eff := m.BaseSpeed * (1 + m.SpeedMult) * 60 / r.TimeS
		if eff <= 0 {
			return &MalformedProblem{Field: "recipes[" + r.Name + "]", Reason: "non-positive effective crafts/min"}
		}
		r.Eff = eff

		effOut := make(map[string]float64, len(r.Out))
		for item, qty := range r.Out {
			effOut[item] = qty * (1 + m.ProdMult)
		}
		r.EffOut = effOut
	}
	return nil
}
