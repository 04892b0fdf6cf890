package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/orrery-sim/orrery/internal/connector"
	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/dag"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
	"github.com/orrery-sim/orrery/internal/wiring"
)

// lagChannel owns one lag's FIFO. The queue holds exactly Delay pending
// values at every observable point: StepYear pops the oldest at the front
// and pushes the fresh source value at the back.
type lagChannel struct {
	def   model.Lag
	queue []any
}

// Engine is the stepped execution state machine for one composition.
type Engine struct {
	comp  *model.Composition
	runID string

	// Composition-time products, computed once and reused every year.
	mods  map[string]*model.Module
	order []string
	reg   *registry.Registry

	// Run state. Module states are opaque; the engine only stores and
	// replays them.
	params   map[string]model.Params
	states   map[string]any
	lags     map[string]*lagChannel
	lagNames []string

	series       map[string]map[string][]any
	stateHistory map[string][]any
	years        []int

	year        int
	yearIndex   int
	initialized bool
}

// New creates an engine for the given composition. Nothing is validated
// until Initialize.
func New(comp *model.Composition) *Engine {
	return &Engine{comp: comp}
}

// RunID returns the identifier stamped on this run's logs and result.
func (e *Engine) RunID() string {
	return e.runID
}

// Initialize runs the composition pipeline once: output registry, wiring
// validation, graph construction, topological sort, the advisory connector
// check, parameter merging, module init, and lag seeding. Any failure is
// terminal; the engine must not be stepped afterwards.
func (e *Engine) Initialize(ctx context.Context) error {
	e.runID = uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("run_id", e.runID)
	ctx = ctxlog.WithLogger(ctx, logger)

	if e.comp.EndYear < e.comp.StartYear {
		return fmt.Errorf("end year %d precedes start year %d", e.comp.EndYear, e.comp.StartYear)
	}

	e.mods = make(map[string]*model.Module, len(e.comp.Modules))
	for _, mod := range e.comp.Modules {
		if _, ok := e.mods[mod.Name]; ok {
			return fmt.Errorf("module %q is declared twice", mod.Name)
		}
		e.mods[mod.Name] = mod
	}

	reg, err := registry.Build(ctx, e.comp.Modules)
	if err != nil {
		return err
	}
	e.reg = reg

	if err := wiring.Validate(ctx, reg, e.comp.Transforms, e.comp.Lags); err != nil {
		return err
	}

	graph, err := dag.Build(ctx, e.comp.Modules, reg, e.comp.Transforms, e.comp.Lags)
	if err != nil {
		return err
	}

	order, err := dag.TopoSort(ctx, graph)
	if err != nil {
		return err
	}
	e.order = order
	logger.Debug("Execution order fixed for the run.", "order", order)

	// Advisory only; never blocks composition.
	connector.Check(ctx, e.comp.Modules, reg, e.comp.Transforms, e.comp.Lags)

	e.params = make(map[string]model.Params, len(e.order))
	e.states = make(map[string]any, len(e.order))
	e.series = make(map[string]map[string][]any, len(e.order))
	e.stateHistory = make(map[string][]any, len(e.order))
	for _, name := range e.order {
		mod := e.mods[name]

		params, err := mod.MergedParams(e.comp.Params[name])
		if err != nil {
			return err
		}
		e.params[name] = params

		if mod.Init != nil {
			state, err := mod.Init(params)
			if err != nil {
				return fmt.Errorf("module %q: init failed: %w", name, err)
			}
			e.states[name] = state
		}

		e.series[name] = make(map[string][]any, len(mod.Outputs))
		for _, output := range mod.Outputs {
			e.series[name][output] = nil
		}
	}

	e.lags = make(map[string]*lagChannel, len(e.comp.Lags))
	for name, def := range e.comp.Lags {
		queue := make([]any, def.Delay)
		for i := range queue {
			queue[i] = def.Initial
		}
		e.lags[name] = &lagChannel{def: def, queue: queue}
		e.lagNames = append(e.lagNames, name)
	}
	sort.Strings(e.lagNames)

	e.year = e.comp.StartYear
	e.yearIndex = 0
	e.initialized = true
	logger.Debug("Engine initialized.",
		"module_count", len(e.order), "lag_count", len(e.lags),
		"start_year", e.comp.StartYear, "end_year", e.comp.EndYear)
	return nil
}

// Done reports whether every year in the configured range has been stepped.
func (e *Engine) Done() bool {
	return e.initialized && e.year > e.comp.EndYear
}

// Finalize returns the accumulated years, per-module per-output series, and
// per-module state history.
func (e *Engine) Finalize() *model.Result {
	return &model.Result{
		RunID:  e.runID,
		Order:  append([]string(nil), e.order...),
		Years:  append([]int(nil), e.years...),
		Series: e.series,
		States: e.stateHistory,
	}
}

// Run composes Initialize, StepYear until the end year is exceeded, and
// Finalize. Callers that want to inspect or intervene between years drive
// StepYear themselves instead.
func Run(ctx context.Context, comp *model.Composition) (*model.Result, error) {
	e := New(comp)
	if err := e.Initialize(ctx); err != nil {
		return nil, err
	}
	for !e.Done() {
		if _, err := e.StepYear(ctx); err != nil {
			return nil, err
		}
	}
	return e.Finalize(), nil
}
