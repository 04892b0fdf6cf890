package wiring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
)

func buildRegistry(t *testing.T, modules ...*model.Module) *registry.Registry {
	t.Helper()
	r, err := registry.Build(context.Background(), modules)
	require.NoError(t, err)
	return r
}

func noopTransform(model.Reader, int, int) (any, error) { return 0.0, nil }

func TestValidate(t *testing.T) {
	reg := buildRegistry(t,
		&model.Module{Name: "economy", Outputs: []string{"gdp"}},
		&model.Module{Name: "population", Outputs: []string{"population"}},
	)

	t.Run("resolvable wiring passes", func(t *testing.T) {
		transforms := map[string]model.Transform{
			"gdp_per_capita": {Fn: noopTransform, DependsOn: []string{"gdp", "population"}},
		}
		lags := map[string]model.Lag{
			"gdp_lagged": {Source: "gdp", Delay: 1, Initial: 0.0},
		}
		assert.NoError(t, Validate(context.Background(), reg, transforms, lags))
	})

	t.Run("transform may depend on another transform", func(t *testing.T) {
		transforms := map[string]model.Transform{
			"gdp_per_capita": {Fn: noopTransform, DependsOn: []string{"gdp", "population"}},
			"log_gdp_pc":     {Fn: noopTransform, DependsOn: []string{"gdp_per_capita"}},
		}
		assert.NoError(t, Validate(context.Background(), reg, transforms, nil))
	})

	t.Run("lag may source a transform", func(t *testing.T) {
		transforms := map[string]model.Transform{
			"gdp_per_capita": {Fn: noopTransform, DependsOn: []string{"gdp", "population"}},
		}
		lags := map[string]model.Lag{
			"gdp_pc_lagged": {Source: "gdp_per_capita", Delay: 2, Initial: 0.0},
		}
		assert.NoError(t, Validate(context.Background(), reg, transforms, lags))
	})

	t.Run("all defects are reported together", func(t *testing.T) {
		transforms := map[string]model.Transform{
			"broken": {Fn: noopTransform, DependsOn: []string{"no_such_output"}},
		}
		lags := map[string]model.Lag{
			"dangling":  {Source: "also_missing", Delay: 1, Initial: 0.0},
			"too_fresh": {Source: "gdp", Delay: 0, Initial: 0.0},
		}

		err := Validate(context.Background(), reg, transforms, lags)
		require.Error(t, err)
		assert.ErrorContains(t, err, `transform "broken": dependency "no_such_output"`)
		assert.ErrorContains(t, err, `lag "dangling": source "also_missing"`)
		assert.ErrorContains(t, err, `lag "too_fresh": delay must be at least 1`)
	})
}
