package dag

import (
	"context"
	"fmt"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
)

// Build constructs the module dependency graph from declared inputs.
//
// For each module input, in order:
//   - a lag key creates no edge (the intentional cycle break);
//   - a transform key creates an edge from the producer of each of the
//     transform's declared dependencies;
//   - any other name must resolve directly through the registry to its
//     producer, or composition fails.
//
// Self-edges are skipped: a module reading its own output (directly or via a
// transform) is not a dependency.
func Build(ctx context.Context, modules []*model.Module, reg *registry.Registry, transforms map[string]model.Transform, lags map[string]model.Lag) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.")

	graph := New()
	for _, mod := range modules {
		graph.AddNode(mod.Name)
	}
	logger.Debug("Build: node creation complete.", "node_count", graph.Len())

	for _, mod := range modules {
		for _, input := range mod.Inputs {
			if _, ok := lags[input]; ok {
				logger.Debug("Build: lag input, no edge.", "module", mod.Name, "input", input)
				continue
			}

			if tr, ok := transforms[input]; ok {
				seen := map[string]bool{input: true}
				if err := linkTransformDeps(graph, reg, transforms, tr, mod.Name, seen); err != nil {
					return nil, fmt.Errorf("transform %q consumed by module %q: %w", input, mod.Name, err)
				}
				continue
			}

			producer, ok := reg.Producer(input)
			if !ok {
				return nil, fmt.Errorf(
					"module %q requires input %q, but no module produces it; add a producing module, a transform, or a lag named %q",
					mod.Name, input, input)
			}
			if producer == mod.Name {
				continue
			}
			if err := graph.AddEdge(producer, mod.Name); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Build: graph construction successful.")
	return graph, nil
}

// linkTransformDeps adds an edge from the producer of every declared
// dependency of tr to the consuming module. Dependencies naming another
// transform expand transitively through that transform's own declarations;
// seen guards against reference loops between transforms.
func linkTransformDeps(graph *Graph, reg *registry.Registry, transforms map[string]model.Transform, tr model.Transform, consumer string, seen map[string]bool) error {
	for _, dep := range tr.DependsOn {
		if producer, ok := reg.Producer(dep); ok {
			if producer == consumer {
				continue
			}
			if err := graph.AddEdge(producer, consumer); err != nil {
				return err
			}
			continue
		}
		if nested, ok := transforms[dep]; ok {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			if err := linkTransformDeps(graph, reg, transforms, nested, consumer, seen); err != nil {
				return err
			}
			continue
		}
		// The wiring validator has already established that every dependency
		// is an output or a transform; reaching here means it was skipped.
		return fmt.Errorf("dependency %q does not resolve to a producing module", dep)
	}
	return nil
}
