package connector

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
)

// capturedLogger returns a context whose logger writes to the returned buffer.
func capturedLogger(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return ctxlog.WithLogger(context.Background(), logger), &buf
}

func TestCheck(t *testing.T) {
	mods := []*model.Module{
		{
			Name:        "population",
			Outputs:     []string{"population"},
			OutputKinds: map[string]cty.Type{"population": cty.Map(cty.Number)},
		},
		{
			Name:       "economy",
			Inputs:     []string{"population"},
			Outputs:    []string{"gdp"},
			InputKinds: map[string]cty.Type{"population": cty.Number},
		},
	}
	reg, err := registry.Build(context.Background(), mods)
	require.NoError(t, err)

	t.Run("mismatch warns with both kinds", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		Check(ctx, mods, reg, nil, nil)

		out := buf.String()
		assert.Contains(t, out, "Connector kind mismatch")
		assert.Contains(t, out, "population")
		assert.Contains(t, out, "economy")
	})

	t.Run("transform-routed inputs are exempt", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		transforms := map[string]model.Transform{
			"population": {Fn: func(model.Reader, int, int) (any, error) { return 0.0, nil }},
		}
		Check(ctx, mods, reg, transforms, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("lag-routed inputs are exempt", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		lags := map[string]model.Lag{
			"population": {Source: "gdp", Delay: 1, Initial: 0.0},
		}
		Check(ctx, mods, reg, nil, lags)
		assert.Empty(t, buf.String())
	})

	t.Run("undeclared kinds are skipped", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		bare := []*model.Module{
			{Name: "population", Outputs: []string{"population"}},
			{Name: "economy", Inputs: []string{"population"}, Outputs: []string{"gdp"}},
		}
		bareReg, err := registry.Build(context.Background(), bare)
		require.NoError(t, err)

		Check(ctx, bare, bareReg, nil, nil)
		assert.Empty(t, buf.String())
	})
}

func TestCheckValue(t *testing.T) {
	t.Run("matching scalar is silent", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		CheckValue(ctx, "economy", "gdp", cty.Number, 42.0)
		assert.Empty(t, buf.String())
	})

	t.Run("structured value against scalar declaration warns", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		CheckValue(ctx, "population", "population", cty.Number, map[string]float64{"mena": 0.6})
		assert.Contains(t, buf.String(), "differs from the module's declaration")
	})

	t.Run("matching regional map is silent", func(t *testing.T) {
		ctx, buf := capturedLogger(t)
		CheckValue(ctx, "population", "population_by_region", cty.Map(cty.Number), map[string]float64{"mena": 0.6})
		assert.Empty(t, buf.String())
	})
}
