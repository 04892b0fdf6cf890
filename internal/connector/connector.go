// Package connector cross-checks declared value kinds between producers and
// consumers. The check is advisory: a disagreement logs a warning and never
// blocks execution. It exists to catch accidental type confusion early, for
// example a consumer expecting a scalar where the producer emits a regional
// breakdown.
package connector

import (
	"context"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
)

// Check compares declared input kinds against the producer's declared output
// kinds for every directly-routed input. Transform- and lag-routed inputs
// are exempt: adapters are trusted to convert. Inputs or outputs without a
// declared kind are skipped.
func Check(ctx context.Context, modules []*model.Module, reg *registry.Registry, transforms map[string]model.Transform, lags map[string]model.Lag) {
	logger := ctxlog.FromContext(ctx)

	byName := make(map[string]*model.Module, len(modules))
	for _, mod := range modules {
		byName[mod.Name] = mod
	}

	for _, mod := range modules {
		for _, input := range mod.Inputs {
			if _, ok := lags[input]; ok {
				continue
			}
			if _, ok := transforms[input]; ok {
				continue
			}

			wantKind, ok := mod.InputKinds[input]
			if !ok {
				continue
			}
			producerName, ok := reg.Producer(input)
			if !ok {
				continue // the graph builder reports unresolved inputs
			}
			producer := byName[producerName]
			haveKind, ok := producer.OutputKinds[input]
			if !ok {
				continue
			}

			if haveKind.Equals(cty.DynamicPseudoType) || wantKind.Equals(cty.DynamicPseudoType) {
				logger.Warn("Connector kind declared as 'any' disables the advisory check for this value.",
					"value", input, "producer", producerName, "consumer", mod.Name)
				continue
			}
			if !haveKind.Equals(wantKind) {
				logger.Warn("Connector kind mismatch between producer and consumer.",
					"value", input,
					"producer", producerName, "produces", haveKind.FriendlyName(),
					"consumer", mod.Name, "expects", wantKind.FriendlyName())
			}
		}
	}
}

// CheckValue compares a runtime output value against the module's declared
// output kind, warning on disagreement. Values whose Go type implies no cty
// type are skipped rather than flagged; the engine's numeric validation is
// the authority on value soundness.
func CheckValue(ctx context.Context, moduleName, output string, declared cty.Type, value any) {
	impliedKind, err := gocty.ImpliedType(normalizeForImply(value))
	if err != nil {
		return
	}
	if impliedKind.Equals(declared) {
		return
	}
	ctxlog.FromContext(ctx).Warn("Output value kind differs from the module's declaration.",
		"module", moduleName, "output", output,
		"declared", declared.FriendlyName(), "actual", impliedKind.FriendlyName())
}

// normalizeForImply widens map values so gocty sees homogeneous collection
// types the way kind declarations express them.
func normalizeForImply(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return value
	}
	out := make(map[string]float64, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k, ok := iter.Key().Interface().(string)
		if !ok {
			return value
		}
		switch v := iter.Value().Interface().(type) {
		case float64:
			out[k] = v
		case int:
			out[k] = float64(v)
		default:
			return value
		}
	}
	return out
}
