package model

// Values is a flat mapping of output names to values for a single year.
// Leaves are float64 scalars or small nested maps of scalars (for example a
// regional breakdown); the engine validates every numeric leaf after each
// module step.
type Values map[string]any

// Params holds a module's merged parameter set. Overrides from a scenario
// are shallow-merged over the module's declared defaults.
type Params map[string]any

// Reader is the read-only view of the current year's outputs handed to
// transform functions. The engine may hand out a tracking implementation
// that records every name actually read.
type Reader interface {
	// Get returns the value for an output name and whether it is present.
	Get(name string) (any, bool)
}

// MergeParams shallow-merges overrides over defaults and returns a fresh map.
// Neither argument is mutated. It is the default merge used for modules that
// do not supply their own.
func MergeParams(defaults, overrides Params) Params {
	merged := make(Params, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
