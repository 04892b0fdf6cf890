package app

import (
	"context"
	"fmt"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/engine"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/scenario"
	"github.com/orrery-sim/orrery/internal/summary"
)

// Run loads the scenario, composes it with the registered modules, drives
// the simulation to the end year, and prints the summary table.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scn, err := scenario.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}
	if a.config.OverridesPath != "" {
		if err := scenario.ApplyOverrides(scn, a.config.OverridesPath); err != nil {
			return fmt.Errorf("failed to apply overrides: %w", err)
		}
		a.logger.Debug("Parameter overrides applied.", "path", a.config.OverridesPath)
	}

	comp := &model.Composition{
		Modules:    a.modules,
		Transforms: a.transforms,
		Lags:       scn.Lags,
		Params:     scn.Params,
		StartYear:  scn.StartYear,
		EndYear:    scn.EndYear,
		TrackReads: scn.TrackReads || a.config.TrackReads,
	}

	a.logger.Info("Starting simulation.",
		"modules", len(comp.Modules), "start_year", comp.StartYear, "end_year", comp.EndYear)
	result, err := engine.Run(ctx, comp)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	a.logger.Info("Simulation finished.",
		"run_id", result.RunID, "years", len(result.Years), "order", result.Order)

	fmt.Fprint(a.outW, summary.Render(result, a.config.Columns))
	return nil
}
