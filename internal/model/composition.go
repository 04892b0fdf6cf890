package model

// Composition is the full static input to one engine run. Registry, graph,
// and execution order are derived from it once and reused for every year.
type Composition struct {
	Modules []*Module

	// Transforms maps transform name to its declaration. A module input
	// matching a key here is computed by the transform each year.
	Transforms map[string]Transform

	// Lags maps lag name to its declaration. A module input matching a key
	// here reads the channel's delayed value each year.
	Lags map[string]Lag

	// Params holds per-module parameter overrides, keyed by module name.
	Params map[string]Params

	// StartYear and EndYear bound the run, inclusive on both ends.
	StartYear int
	EndYear   int

	// TrackReads enables the dev-mode reader that records which outputs each
	// transform actually touches and warns about undeclared reads.
	TrackReads bool
}
