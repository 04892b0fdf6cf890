package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrery-sim/orrery/internal/model"
)

func TestValidateOutputs(t *testing.T) {
	mod := &model.Module{Name: "energy", Outputs: []string{"capacity"}}

	t.Run("finite values pass", func(t *testing.T) {
		outs := model.Values{"capacity": map[string]float64{"solar": 120.5, "wind": 80.0}}
		assert.NoError(t, validateOutputs(mod, outs, 2040))
	})

	t.Run("non-numeric leaves are opaque", func(t *testing.T) {
		outs := model.Values{"capacity": "unconstrained"}
		assert.NoError(t, validateOutputs(mod, outs, 2040))
	})

	t.Run("missing output names module and year", func(t *testing.T) {
		err := validateOutputs(mod, model.Values{}, 2040)
		require.Error(t, err)
		assert.ErrorContains(t, err, `"energy"`)
		assert.ErrorContains(t, err, `"capacity"`)
		assert.ErrorContains(t, err, "2040")
	})

	t.Run("NaN in a float map names the leaf", func(t *testing.T) {
		outs := model.Values{"capacity": map[string]float64{"solar": math.NaN()}}
		err := validateOutputs(mod, outs, 2041)
		require.Error(t, err)
		assert.ErrorContains(t, err, `"capacity.solar"`)
	})

	t.Run("walk depth is bounded", func(t *testing.T) {
		deep := model.Values{"capacity": model.Values{
			"a": model.Values{"b": model.Values{"c": model.Values{"d": model.Values{"e": math.NaN()}}}},
		}}
		// Beyond maxWalkDepth the NaN is out of reach and the value passes.
		assert.NoError(t, validateOutputs(mod, deep, 2042))
	})
}
