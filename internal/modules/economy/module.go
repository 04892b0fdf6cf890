// Package economy models aggregate GDP growth damped by the previous year's
// energy price. The price arrives through the "energy_price_lagged" channel:
// economy runs before energy within a year, so the feedback loop between the
// two is broken by a one-year lag declared in the scenario.
package economy

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/orrery-sim/orrery/internal/model"
)

type state struct {
	gdp            float64 // billions
	lastPopulation float64 // millions, zero until the first step
}

// New returns the economy module.
func New() *model.Module {
	return &model.Module{
		Name:    "economy",
		Inputs:  []string{"population", "energy_price_lagged"},
		Outputs: []string{"gdp", "gdp_growth"},
		InputKinds: map[string]cty.Type{
			"population":          cty.Number,
			"energy_price_lagged": cty.Number,
		},
		OutputKinds: map[string]cty.Type{
			"gdp":        cty.Number,
			"gdp_growth": cty.Number,
		},
		Defaults: model.Params{
			"initial_gdp":       105000.0, // billions
			"base_growth":       0.025,    // per year at the reference price
			"price_sensitivity": 0.0003,   // growth lost per unit of price above reference
			"reference_price":   80.0,
			"labor_elasticity":  0.3,
		},
		ValidateParams: validateParams,
		Init: func(params model.Params) (any, error) {
			return state{gdp: params["initial_gdp"].(float64)}, nil
		},
		Step: step,
	}
}

func validateParams(params model.Params) error {
	if params["initial_gdp"].(float64) <= 0 {
		return fmt.Errorf("initial_gdp must be positive")
	}
	if params["reference_price"].(float64) <= 0 {
		return fmt.Errorf("reference_price must be positive")
	}
	return nil
}

func step(st any, in model.Values, params model.Params, _, yearIndex int) (any, model.Values, error) {
	s := st.(state)
	price := in["energy_price_lagged"].(float64)

	growth := params["base_growth"].(float64)
	growth -= params["price_sensitivity"].(float64) * (price - params["reference_price"].(float64))

	// Labor contribution: population growth feeds through with a fixed
	// elasticity. The first year has no prior population to compare against.
	population := in["population"].(float64)
	if yearIndex > 0 {
		popGrowth := population/s.lastPopulation - 1
		growth += params["labor_elasticity"].(float64) * popGrowth
	}
	s.lastPopulation = population

	s.gdp *= 1 + growth
	return s, model.Values{
		"gdp":        s.gdp,
		"gdp_growth": growth,
	}, nil
}
