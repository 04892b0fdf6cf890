// Package climate accumulates emissions from energy demand and maps them to
// a temperature anomaly. Carbon intensity of energy falls as wealth rises,
// which is why the module consumes the derived gdp_per_capita value rather
// than raw GDP.
package climate

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/orrery-sim/orrery/internal/model"
)

type state struct {
	cumulative float64 // GtCO2 since the start of the run
}

// New returns the climate module.
func New() *model.Module {
	return &model.Module{
		Name:    "climate",
		Inputs:  []string{"energy_demand", "gdp_per_capita"},
		Outputs: []string{"emissions", "cumulative_emissions", "temperature_anomaly"},
		InputKinds: map[string]cty.Type{
			"energy_demand":  cty.Number,
			"gdp_per_capita": cty.Number,
		},
		OutputKinds: map[string]cty.Type{
			"emissions":            cty.Number,
			"cumulative_emissions": cty.Number,
			"temperature_anomaly":  cty.Number,
		},
		Defaults: model.Params{
			"carbon_intensity":    0.00022, // GtCO2 per unit of energy demand
			"decarbonization":     0.004,   // intensity reduction per unit of log wealth
			"reference_gdp_pc":    12.0,    // thousands per person
			"tcre":                0.00045, // degrees per GtCO2
			"baseline_emissions":  0.0,
			"baseline_temp_level": 1.2, // anomaly already realized before the run
		},
		ValidateParams: validateParams,
		Init: func(params model.Params) (any, error) {
			return state{cumulative: params["baseline_emissions"].(float64)}, nil
		},
		Step: step,
	}
}

func validateParams(params model.Params) error {
	if params["carbon_intensity"].(float64) < 0 {
		return fmt.Errorf("carbon_intensity must not be negative")
	}
	if params["tcre"].(float64) < 0 {
		return fmt.Errorf("tcre must not be negative")
	}
	if params["reference_gdp_pc"].(float64) <= 0 {
		return fmt.Errorf("reference_gdp_pc must be positive")
	}
	return nil
}

func step(st any, in model.Values, params model.Params, _, _ int) (any, model.Values, error) {
	s := st.(state)

	intensity := params["carbon_intensity"].(float64)
	wealth := in["gdp_per_capita"].(float64) / params["reference_gdp_pc"].(float64)
	if wealth > 1 {
		// Richer economies decarbonize: intensity erodes with relative wealth.
		intensity *= 1 - params["decarbonization"].(float64)*(wealth-1)
		if intensity < 0 {
			intensity = 0
		}
	}

	emissions := in["energy_demand"].(float64) * intensity
	s.cumulative += emissions
	anomaly := params["baseline_temp_level"].(float64) + params["tcre"].(float64)*s.cumulative

	return s, model.Values{
		"emissions":            emissions,
		"cumulative_emissions": s.cumulative,
		"temperature_anomaly":  anomaly,
	}, nil
}
