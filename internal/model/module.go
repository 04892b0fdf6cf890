package model

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// InitFunc produces a module's opaque initial state from its merged
// parameters. Called exactly once per run.
type InitFunc func(params Params) (any, error)

// StepFunc advances a module by one simulated year. It must be pure with
// respect to its arguments and must return a value for every output name the
// module declares; the engine treats a missing or non-finite output as a
// fatal wiring defect, so step functions do not self-validate.
type StepFunc func(state any, inputs Values, params Params, year, yearIndex int) (any, Values, error)

// Module is the capability contract between the engine and a domain unit.
// Inputs and Outputs are static declarations used only for wiring.
type Module struct {
	Name string

	// Inputs names the values this module requires each year, in declaration
	// order. Each name must resolve to another module's output, a transform,
	// or a lag channel.
	Inputs []string

	// Outputs names the values this module promises to produce each year.
	// No output name may be produced by more than one module.
	Outputs []string

	// InputKinds and OutputKinds optionally tag names with a cty type for the
	// advisory connector check. Undeclared kinds are never checked.
	InputKinds  map[string]cty.Type
	OutputKinds map[string]cty.Type

	// Defaults is the module's full default parameter set.
	Defaults Params

	// ValidateParams, when set, is run against the merged parameters before
	// Init. A non-nil error is a composition error.
	ValidateParams func(params Params) error

	// Merge, when set, replaces the default shallow merge of overrides over
	// Defaults.
	Merge func(defaults, overrides Params) Params

	Init InitFunc
	Step StepFunc
}

// MergedParams folds scenario overrides into the module's defaults and runs
// the module's parameter validator, if any.
func (m *Module) MergedParams(overrides Params) (Params, error) {
	merge := m.Merge
	if merge == nil {
		merge = MergeParams
	}
	params := merge(m.Defaults, overrides)
	if m.ValidateParams != nil {
		if err := m.ValidateParams(params); err != nil {
			return nil, fmt.Errorf("module %q: invalid parameters: %w", m.Name, err)
		}
	}
	return params, nil
}
