package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrery-sim/orrery/internal/model"
)

func TestStep(t *testing.T) {
	mod := New()

	params, err := mod.MergedParams(model.Params{
		"initial_population": 1000.0,
		"growth_rate":        0.1,
		"region_shares":      map[string]any{"north": 0.25, "south": 0.75},
	})
	require.NoError(t, err)

	st, err := mod.Init(params)
	require.NoError(t, err)

	st, out, err := mod.Step(st, nil, params, 2025, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1100.0, out["population"].(float64), 1e-9)

	byRegion := out["population_by_region"].(map[string]float64)
	assert.InDelta(t, 275.0, byRegion["north"], 1e-9)
	assert.InDelta(t, 825.0, byRegion["south"], 1e-9)

	_, out, err = mod.Step(st, nil, params, 2026, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1210.0, out["population"].(float64), 1e-9)
}

func TestValidateParams(t *testing.T) {
	mod := New()

	_, err := mod.MergedParams(model.Params{"initial_population": -5.0})
	assert.ErrorContains(t, err, "initial_population must be positive")

	_, err = mod.MergedParams(model.Params{"growth_rate": -2.0})
	assert.ErrorContains(t, err, "growth_rate")
}
