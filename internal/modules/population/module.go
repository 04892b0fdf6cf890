// Package population models total population with exponential growth and a
// fixed regional breakdown. It has no inputs, which makes it a root of every
// composition it appears in.
package population

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/orrery-sim/orrery/internal/model"
)

// state is the module's opaque per-run state: the current population in
// millions.
type state struct {
	population float64
}

// New returns the population module.
func New() *model.Module {
	return &model.Module{
		Name:    "population",
		Outputs: []string{"population", "population_by_region"},
		OutputKinds: map[string]cty.Type{
			"population":           cty.Number,
			"population_by_region": cty.Map(cty.Number),
		},
		Defaults: model.Params{
			"initial_population": 8100.0, // millions
			"growth_rate":        0.009,  // per year
			"region_shares": map[string]any{
				"oecd":  0.17,
				"asia":  0.54,
				"mena":  0.08,
				"other": 0.21,
			},
		},
		ValidateParams: validateParams,
		Init: func(params model.Params) (any, error) {
			return state{population: params["initial_population"].(float64)}, nil
		},
		Step: step,
	}
}

func validateParams(params model.Params) error {
	if params["initial_population"].(float64) <= 0 {
		return fmt.Errorf("initial_population must be positive")
	}
	rate := params["growth_rate"].(float64)
	if rate < -1 {
		return fmt.Errorf("growth_rate must not be below -1, got %v", rate)
	}
	return nil
}

func step(st any, _ model.Values, params model.Params, _, _ int) (any, model.Values, error) {
	s := st.(state)
	s.population *= 1 + params["growth_rate"].(float64)

	byRegion := make(map[string]float64)
	for region, share := range params["region_shares"].(map[string]any) {
		byRegion[region] = s.population * share.(float64)
	}

	return s, model.Values{
		"population":           s.population,
		"population_by_region": byRegion,
	}, nil
}
