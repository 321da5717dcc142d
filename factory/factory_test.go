package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optiflow/factory"
)

func simpleChainSchema() factory.Schema {
	return factory.Schema{
		Target: factory.TargetSchema{Item: "green_circuit", RatePerMin: 1800},
		Recipes: []factory.RecipeSchema{
			{
				Name: "smelt_iron", Machine: "furnace", TimeS: 3.2,
				In:  map[string]float64{"iron_ore": 1},
				Out: map[string]float64{"iron_plate": 1},
			},
			{
				Name: "craft_circuit", Machine: "assembler", TimeS: 0.5,
				In:  map[string]float64{"iron_plate": 1},
				Out: map[string]float64{"green_circuit": 1},
			},
		},
		Machines: map[string]factory.MachineSchema{
			"furnace":   {BaseSpeedCraftsPerMin: 60, SpeedMult: 0, ProdMult: 0, MaxMachines: 100},
			"assembler": {BaseSpeedCraftsPerMin: 60, SpeedMult: 0, ProdMult: 0.1, MaxMachines: 100},
		},
		RawSupply: map[string]float64{"iron_ore": 10000},
	}
}

func TestSolveSimpleChain(t *testing.T) {
	res, err := factory.Solve(context.Background(), simpleChainSchema())
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)

	require.InDelta(t, 1636.36, res.PerRecipeCraftsPerMin["craft_circuit"], 0.01)
	require.InDelta(t, 1636.36, res.PerRecipeCraftsPerMin["smelt_iron"], 0.01)
	require.InDelta(t, 1636.36, res.RawConsumptionPerMin["iron_ore"], 0.01)
}

func TestSolveInfeasibleOnRawReportsBottleneck(t *testing.T) {
	s := simpleChainSchema()
	s.RawSupply["iron_ore"] = 800 // well under the ~1636/min the full target needs

	res, err := factory.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "infeasible", res.Status)
	require.NotNil(t, res.MaxFeasibleTargetPerMin)
	require.InDelta(t, 880, *res.MaxFeasibleTargetPerMin, 1.0)
	require.NotNil(t, res.BottleneckHints)
	require.Contains(t, res.BottleneckHints.Raw, "iron_ore")
}

func TestSolveCyclicCatalyst(t *testing.T) {
	s := factory.Schema{
		Target: factory.TargetSchema{Item: "product", RatePerMin: 100},
		Recipes: []factory.RecipeSchema{
			{
				Name: "convert_a_to_b", Machine: "reactor", TimeS: 1,
				In:  map[string]float64{"catalyst_a": 1, "petroleum": 1},
				Out: map[string]float64{"catalyst_b": 1, "product": 1},
			},
			{
				Name: "convert_b_to_a", Machine: "reactor", TimeS: 1,
				In:  map[string]float64{"catalyst_b": 1},
				Out: map[string]float64{"catalyst_a": 1},
			},
		},
		Machines: map[string]factory.MachineSchema{
			"reactor": {BaseSpeedCraftsPerMin: 120, SpeedMult: 0, ProdMult: 0, MaxMachines: 1000},
		},
		RawSupply: map[string]float64{"petroleum": 100000},
	}

	res, err := factory.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)
	require.InDelta(t, res.PerRecipeCraftsPerMin["convert_a_to_b"], res.PerRecipeCraftsPerMin["convert_b_to_a"], 1e-6)
	require.Greater(t, res.PerRecipeCraftsPerMin["convert_a_to_b"], 0.0)
}

func TestSolveRejectsUnknownTargetItem(t *testing.T) {
	s := simpleChainSchema()
	s.Target.Item = "nonexistent"

	_, err := factory.Solve(context.Background(), s)
	require.Error(t, err)
	var malformed *factory.MalformedProblem
	require.ErrorAs(t, err, &malformed)
}

func TestSolveRejectsNegativeSupplyCap(t *testing.T) {
	s := simpleChainSchema()
	s.RawSupply["iron_ore"] = -1

	_, err := factory.Solve(context.Background(), s)
	require.Error(t, err)
}

func TestSolveUnboundedRawSupplyWhenUnspecified(t *testing.T) {
	s := simpleChainSchema()
	delete(s.RawSupply, "iron_ore")

	res, err := factory.Solve(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, "ok", res.Status)
}
