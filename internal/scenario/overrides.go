package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orrery-sim/orrery/internal/model"
)

// ApplyOverrides layers a YAML override file over the scenario's parameter
// blocks. The file is a two-level mapping of module name to parameter name
// to value; values win over the scenario's own params blocks. Intended for
// parameter sweeps where editing the scenario per run would be noise.
func ApplyOverrides(scn *Scenario, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	var overrides map[string]map[string]any
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}

	for moduleName, params := range overrides {
		if scn.Params[moduleName] == nil {
			scn.Params[moduleName] = make(model.Params, len(params))
		}
		for name, value := range params {
			// YAML integers arrive as int; widen so module math sees float64.
			if i, ok := value.(int); ok {
				value = float64(i)
			}
			scn.Params[moduleName][name] = value
		}
	}
	return nil
}
