package registry

import (
	"context"
	"fmt"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
)

// Registry maps output names to their unique producing module.
type Registry struct {
	producers map[string]string
}

// Build walks every module's declared outputs and records its producer.
// Registering a second producer for the same name is a composition error:
// no output may appear twice across the whole module set.
func Build(ctx context.Context, modules []*model.Module) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)

	r := &Registry{producers: make(map[string]string)}
	for _, mod := range modules {
		for _, name := range mod.Outputs {
			if existing, ok := r.producers[name]; ok {
				return nil, fmt.Errorf(
					"output %q is declared by both module %q and module %q; output names must have exactly one producer",
					name, existing, mod.Name)
			}
			r.producers[name] = mod.Name
		}
	}
	logger.Debug("Output registry built.", "output_count", len(r.producers))
	return r, nil
}

// Producer returns the module that declares the named output.
func (r *Registry) Producer(name string) (string, bool) {
	mod, ok := r.producers[name]
	return mod, ok
}

// Has reports whether any module declares the named output.
func (r *Registry) Has(name string) bool {
	_, ok := r.producers[name]
	return ok
}

// Len returns the number of registered output names.
func (r *Registry) Len() int {
	return len(r.producers)
}
