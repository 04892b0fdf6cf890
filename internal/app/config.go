package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	ScenarioPath  string // .hcl file or directory of .hcl files
	OverridesPath string // optional YAML parameter overrides

	// Columns selects the module-qualified series printed in the summary;
	// empty means every scalar series.
	Columns []string

	LogFormat  string
	LogLevel   string
	TrackReads bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
