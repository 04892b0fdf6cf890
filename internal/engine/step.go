package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/orrery-sim/orrery/internal/connector"
	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
)

// StepYear simulates the current year: it resolves every module's inputs
// (lag, transform, or direct), invokes each module in the fixed order,
// validates and commits its outputs, then advances every lag channel and
// the year counter. The returned outputs expose both the flat and the
// module-qualified mapping for the year.
func (e *Engine) StepYear(ctx context.Context) (*model.YearOutputs, error) {
	logger := ctxlog.FromContext(ctx).With("run_id", e.runID, "year", e.year)
	ctx = ctxlog.WithLogger(ctx, logger)

	if !e.initialized {
		return nil, fmt.Errorf("engine not initialized")
	}
	if e.year > e.comp.EndYear {
		return nil, fmt.Errorf("run already complete: year %d exceeds end year %d", e.year, e.comp.EndYear)
	}

	current := make(model.Values)
	qualified := make(model.Values)

	for _, name := range e.order {
		mod := e.mods[name]

		inputs, err := e.resolveInputs(ctx, mod, current)
		if err != nil {
			return nil, err
		}

		newState, outputs, err := mod.Step(e.states[name], inputs, e.params[name], e.year, e.yearIndex)
		if err != nil {
			return nil, fmt.Errorf("module %q: step failed in year %d: %w", name, e.year, err)
		}

		if err := validateOutputs(mod, outputs, e.year); err != nil {
			return nil, err
		}
		for output, kind := range mod.OutputKinds {
			connector.CheckValue(ctx, name, output, kind, outputs[output])
		}

		e.states[name] = newState
		e.stateHistory[name] = append(e.stateHistory[name], newState)
		for _, output := range mod.Outputs {
			value := outputs[output]
			e.series[name][output] = append(e.series[name][output], value)
			current[output] = value
			qualified[name+"."+output] = value
		}
		logger.Debug("Module stepped.", "module", name)
	}

	if err := e.advanceLags(ctx, current); err != nil {
		return nil, err
	}

	e.years = append(e.years, e.year)
	out := &model.YearOutputs{
		Year:      e.year,
		YearIndex: e.yearIndex,
		Values:    current,
		Qualified: qualified,
	}
	e.year++
	e.yearIndex++
	return out, nil
}

// resolveInputs gathers one module's declared inputs for the current year.
// Resolution order per input: lag channel front, then transform, then a
// direct read of the current-year outputs. A direct read can only miss if
// the topological order is wrong, which is an engine defect, not a user
// wiring error.
func (e *Engine) resolveInputs(ctx context.Context, mod *model.Module, current model.Values) (model.Values, error) {
	inputs := make(model.Values, len(mod.Inputs))
	for _, input := range mod.Inputs {
		if ch, ok := e.lags[input]; ok {
			inputs[input] = ch.queue[0]
			continue
		}
		if tr, ok := e.comp.Transforms[input]; ok {
			value, err := e.evalTransform(ctx, input, tr, current)
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", mod.Name, err)
			}
			inputs[input] = value
			continue
		}
		value, ok := current[input]
		if !ok {
			return nil, fmt.Errorf(
				"engine bug: input %q for module %q absent from current-year outputs in year %d despite topological order",
				input, mod.Name, e.year)
		}
		inputs[input] = value
	}
	return inputs, nil
}

// evalTransform invokes a transform against the outputs computed so far this
// year. With read tracking enabled, every name the function touches is
// recorded and undeclared reads are logged as warnings; this stays advisory
// because empty-DependsOn transforms are the documented cycle-breaker
// pattern and legitimately read beyond their declarations.
func (e *Engine) evalTransform(ctx context.Context, name string, tr model.Transform, current model.Values) (any, error) {
	var reader model.Reader = valuesReader{values: current}
	var tracker *trackingReader
	if e.comp.TrackReads {
		tracker = newTrackingReader(reader)
		reader = tracker
	}

	value, err := tr.Fn(reader, e.year, e.yearIndex)
	if err != nil {
		return nil, fmt.Errorf("transform %q failed in year %d: %w", name, e.year, err)
	}

	if tracker != nil {
		declared := make(map[string]bool, len(tr.DependsOn))
		for _, dep := range tr.DependsOn {
			declared[dep] = true
		}
		reads := make([]string, 0, len(tracker.reads))
		for read := range tracker.reads {
			if !declared[read] {
				reads = append(reads, read)
			}
		}
		sort.Strings(reads)
		logger := ctxlog.FromContext(ctx)
		for _, read := range reads {
			logger.Warn("Transform read an output it does not declare in DependsOn.",
				"transform", name, "read", read)
		}
	}
	return value, nil
}

// advanceLags runs after every module has stepped: each channel discards its
// oldest value and appends the source's fresh value for this year, keeping
// the queue length equal to the configured delay. Channels advance in name
// order so runs are deterministic.
func (e *Engine) advanceLags(ctx context.Context, current model.Values) error {
	for _, name := range e.lagNames {
		ch := e.lags[name]

		var fresh any
		if tr, ok := e.comp.Transforms[ch.def.Source]; ok {
			value, err := e.evalTransform(ctx, ch.def.Source, tr, current)
			if err != nil {
				return fmt.Errorf("lag %q: %w", name, err)
			}
			fresh = value
		} else {
			value, ok := current[ch.def.Source]
			if !ok {
				return fmt.Errorf(
					"engine bug: lag %q source %q absent from current-year outputs in year %d",
					name, ch.def.Source, e.year)
			}
			fresh = value
		}

		ch.queue = append(ch.queue[1:], fresh)
	}
	return nil
}
