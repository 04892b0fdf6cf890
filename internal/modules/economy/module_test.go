package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrery-sim/orrery/internal/model"
)

func TestStep(t *testing.T) {
	mod := New()

	params, err := mod.MergedParams(model.Params{
		"initial_gdp":       1000.0,
		"base_growth":       0.02,
		"price_sensitivity": 0.001,
		"reference_price":   100.0,
		"labor_elasticity":  0.5,
	})
	require.NoError(t, err)

	st, err := mod.Init(params)
	require.NoError(t, err)

	// An expensive first year cancels base growth exactly.
	st, out, err := mod.Step(st, model.Values{
		"population":          1000.0,
		"energy_price_lagged": 120.0,
	}, params, 2025, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out["gdp_growth"].(float64), 1e-9)
	assert.InDelta(t, 1000.0, out["gdp"].(float64), 1e-9)

	// At the reference price, growth is base plus the labor contribution.
	_, out, err = mod.Step(st, model.Values{
		"population":          1100.0,
		"energy_price_lagged": 100.0,
	}, params, 2026, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.07, out["gdp_growth"].(float64), 1e-9)
	assert.InDelta(t, 1070.0, out["gdp"].(float64), 1e-9)
}

func TestValidateParams(t *testing.T) {
	mod := New()

	_, err := mod.MergedParams(model.Params{"initial_gdp": 0.0})
	assert.ErrorContains(t, err, "initial_gdp must be positive")

	_, err = mod.MergedParams(model.Params{"reference_price": -1.0})
	assert.ErrorContains(t, err, "reference_price must be positive")
}
