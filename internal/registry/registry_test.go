package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrery-sim/orrery/internal/model"
)

func TestBuild(t *testing.T) {
	t.Run("maps every output to its producer", func(t *testing.T) {
		mods := []*model.Module{
			{Name: "population", Outputs: []string{"population", "population_by_region"}},
			{Name: "economy", Outputs: []string{"gdp"}},
		}

		r, err := Build(context.Background(), mods)
		require.NoError(t, err)

		assert.Equal(t, 3, r.Len())
		producer, ok := r.Producer("gdp")
		require.True(t, ok)
		assert.Equal(t, "economy", producer)
		assert.True(t, r.Has("population_by_region"))
		assert.False(t, r.Has("temperature"))
	})

	t.Run("duplicate output names both producers", func(t *testing.T) {
		mods := []*model.Module{
			{Name: "economy", Outputs: []string{"gdp"}},
			{Name: "shadow_economy", Outputs: []string{"gdp"}},
		}

		_, err := Build(context.Background(), mods)
		require.Error(t, err)
		assert.ErrorContains(t, err, `"gdp"`)
		assert.ErrorContains(t, err, `"economy"`)
		assert.ErrorContains(t, err, `"shadow_economy"`)
	})
}
