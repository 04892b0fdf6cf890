package app

import (
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/modules/climate"
	"github.com/orrery-sim/orrery/internal/modules/economy"
	"github.com/orrery-sim/orrery/internal/modules/energy"
	"github.com/orrery-sim/orrery/internal/modules/population"
	"github.com/orrery-sim/orrery/internal/wiring"
)

// coreModules is the definitive list of domain modules compiled into the
// orrery binary.
func coreModules() []*model.Module {
	return []*model.Module{
		population.New(),
		economy.New(),
		energy.New(),
		climate.New(),
	}
}

// coreTransforms holds the derived inputs shared by the core modules.
func coreTransforms() map[string]model.Transform {
	return map[string]model.Transform{
		// GDP is in billions, population in millions, so the ratio lands in
		// thousands per person.
		"gdp_per_capita": {
			DependsOn: []string{"gdp", "population"},
			Fn: func(outs model.Reader, _, _ int) (any, error) {
				gdp, err := wiring.Require(outs, "gdp")
				if err != nil {
					return nil, err
				}
				population, err := wiring.Require(outs, "population")
				if err != nil {
					return nil, err
				}
				return gdp.(float64) * 1000 / population.(float64), nil
			},
		},
	}
}
