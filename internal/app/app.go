package app

import (
	"io"
	"log/slog"

	"github.com/orrery-sim/orrery/internal/model"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	modules    []*model.Module
	transforms map[string]model.Transform
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App with its own isolated logger. Callers may supply their own
// module set; by default the compiled-in core modules and transforms are
// used.
func NewApp(outW io.Writer, config *Config, modules ...*model.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules()
	}

	return &App{
		outW:       outW,
		logger:     logger,
		config:     config,
		modules:    modules,
		transforms: coreTransforms(),
	}
}
