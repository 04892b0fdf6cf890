package summary

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/orrery-sim/orrery/internal/model"
)

func sampleResult() *model.Result {
	return &model.Result{
		RunID: "test",
		Order: []string{"economy", "population"},
		Years: []int{2025, 2026, 2027},
		Series: map[string]map[string][]any{
			"economy": {
				"gdp": []any{105000.0, 107625.5, 110316.125},
			},
			"population": {
				"population": []any{8100.0, 8172.9, 8246.456},
				"population_by_region": []any{
					map[string]float64{"oecd": 1377.0},
					map[string]float64{"oecd": 1389.393},
					map[string]float64{"oecd": 1401.898},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	g := goldie.New(t)

	t.Run("selected columns", func(t *testing.T) {
		out := Render(sampleResult(), []string{"economy.gdp", "population.population"})
		g.Assert(t, "selected_columns", []byte(out))
	})

	t.Run("default selection includes only scalar series", func(t *testing.T) {
		out := Render(sampleResult(), nil)
		g.Assert(t, "default_columns", []byte(out))
	})

	t.Run("unknown column renders placeholders", func(t *testing.T) {
		out := Render(sampleResult(), []string{"energy.demand"})
		assert.Contains(t, out, "energy.demand")
		assert.Contains(t, out, "-")
	})
}
