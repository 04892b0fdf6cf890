package engine

import (
	"fmt"
	"math"

	"github.com/orrery-sim/orrery/internal/model"
)

// maxWalkDepth bounds the numeric soundness walk. Outputs are scalars or
// small nested mappings of scalars; anything deeper is left untouched.
const maxWalkDepth = 4

// validateOutputs enforces the two post-step invariants, failing fast on
// either: every declared output must be present, and every numeric leaf must
// be finite. Errors name the module, the offending output (with its dotted
// path for nested leaves), and the year.
func validateOutputs(mod *model.Module, outputs model.Values, year int) error {
	for _, name := range mod.Outputs {
		value, ok := outputs[name]
		if !ok {
			return fmt.Errorf("module %q omitted declared output %q in year %d", mod.Name, name, year)
		}
		if err := checkNumericLeaves(value, name, 0); err != nil {
			return fmt.Errorf("module %q, year %d: %w", mod.Name, year, err)
		}
	}
	return nil
}

// checkNumericLeaves recursively walks a value, rejecting NaN and ±Inf
// leaves with the exact dotted path. Non-numeric leaves are opaque to the
// engine and pass through.
func checkNumericLeaves(value any, path string, depth int) error {
	if depth > maxWalkDepth {
		return nil
	}

	switch v := value.(type) {
	case float64:
		return checkFinite(v, path)
	case float32:
		return checkFinite(float64(v), path)
	case model.Values:
		for key, nested := range v {
			if err := checkNumericLeaves(nested, path+"."+key, depth+1); err != nil {
				return err
			}
		}
	case map[string]any:
		for key, nested := range v {
			if err := checkNumericLeaves(nested, path+"."+key, depth+1); err != nil {
				return err
			}
		}
	case map[string]float64:
		for key, nested := range v {
			if err := checkFinite(nested, path+"."+key); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkFinite(v float64, path string) error {
	if math.IsNaN(v) {
		return fmt.Errorf("output %q is NaN", path)
	}
	if math.IsInf(v, 0) {
		return fmt.Errorf("output %q is infinite", path)
	}
	return nil
}
