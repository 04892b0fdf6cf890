// Package engine drives the year-by-year simulation loop. Initialize runs
// the composition pipeline once (registry, wiring validation, graph build,
// topological sort, connector check, parameter merge, module init, lag
// seeding); StepYear executes every module in the fixed order, validates
// each module's outputs, and advances the lag channels; Finalize returns the
// accumulated series. Run chains the three for callers that do not need to
// inspect or intervene between years.
//
// Execution is strictly sequential and deterministic. Nothing is retried and
// nothing is silently defaulted: a wrong number allowed to flow through
// years of feedback loops is far more dangerous than a loud, early failure.
package engine
