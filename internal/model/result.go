package model

// YearOutputs is everything one simulated year produced: the flat mapping of
// every output name to its value, plus the module-qualified duplicate
// ("module.output") kept for derived tooling that needs to disambiguate.
type YearOutputs struct {
	Year      int
	YearIndex int
	Values    Values
	Qualified Values
}

// Result is the accumulated outcome of a completed run.
type Result struct {
	// RunID uniquely identifies this run in logs and derived artifacts.
	RunID string

	// Order is the fixed module execution order used for every year.
	Order []string

	// Years lists every simulated year in sequence.
	Years []int

	// Series holds, for every module and every declared output, the ordered
	// per-year values. Series[module][output][i] belongs to Years[i].
	Series map[string]map[string][]any

	// States holds, for every module, the ordered per-year opaque state
	// snapshots as returned by the module's step function.
	States map[string][]any
}
