// Package model defines the data model of the simulation engine: the module
// capability contract, transforms, lags, the composition that binds them, and
// the value/result containers that flow through a run.
//
// # Core Concepts
//
//   - Module: the capability contract every domain unit implements. A module
//     is immutable metadata plus three functions: MergeParams, Init, and Step.
//     Its state is opaque to the engine; the engine only stores and replays it.
//
//   - Transform: a derived-input adapter. It is a pure function of the
//     current year's already-computed outputs with an explicit list of output
//     names it depends on. A transform is not a module: it has no persistent
//     state and never appears in the execution order as its own node.
//
//   - Lag: a delayed-feedback channel carrying a value from N years prior.
//     A lag input never creates a same-year graph edge, which makes it the
//     only sanctioned way to break a dependency cycle.
//
//   - Composition: everything the engine needs to run: the module list, the
//     transform and lag declarations, per-module parameter overrides, and the
//     inclusive year range.
//
// Why a separate model package?
//
// The registry, graph builder, connector checker, and engine all consume the
// same declarations. Keeping the declarations here, free of any wiring or
// execution logic, lets each stage stay a pure function of the model and
// keeps the contract a domain author sees as small as possible.
package model
