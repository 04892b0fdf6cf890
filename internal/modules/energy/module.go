// Package energy models final energy demand and its market price. Demand
// follows GDP through an energy intensity that declines each year as the
// economy gets more efficient; price responds to demand pressure against a
// reference level. The price closes the loop back into economy via the
// scenario's lag channel.
package energy

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/orrery-sim/orrery/internal/model"
)

type state struct {
	intensity float64 // energy units per billion of GDP
}

// New returns the energy module.
func New() *model.Module {
	return &model.Module{
		Name:    "energy",
		Inputs:  []string{"gdp"},
		Outputs: []string{"energy_demand", "energy_price"},
		InputKinds: map[string]cty.Type{
			"gdp": cty.Number,
		},
		OutputKinds: map[string]cty.Type{
			"energy_demand": cty.Number,
			"energy_price":  cty.Number,
		},
		Defaults: model.Params{
			"initial_intensity": 1.6,   // per billion of GDP
			"intensity_decline": 0.012, // per year
			"base_price":        80.0,
			"reference_demand":  170000.0,
			"price_pressure":    0.5, // price response to relative demand
		},
		ValidateParams: validateParams,
		Init: func(params model.Params) (any, error) {
			return state{intensity: params["initial_intensity"].(float64)}, nil
		},
		Step: step,
	}
}

func validateParams(params model.Params) error {
	if params["initial_intensity"].(float64) <= 0 {
		return fmt.Errorf("initial_intensity must be positive")
	}
	if params["reference_demand"].(float64) <= 0 {
		return fmt.Errorf("reference_demand must be positive")
	}
	decline := params["intensity_decline"].(float64)
	if decline < 0 || decline >= 1 {
		return fmt.Errorf("intensity_decline must be in [0, 1), got %v", decline)
	}
	return nil
}

func step(st any, in model.Values, params model.Params, _, _ int) (any, model.Values, error) {
	s := st.(state)
	s.intensity *= 1 - params["intensity_decline"].(float64)

	demand := in["gdp"].(float64) * s.intensity
	pressure := demand/params["reference_demand"].(float64) - 1
	price := params["base_price"].(float64) * (1 + params["price_pressure"].(float64)*pressure)

	return s, model.Values{
		"energy_demand": demand,
		"energy_price":  price,
	}, nil
}
