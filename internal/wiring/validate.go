package wiring

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orrery-sim/orrery/internal/ctxlog"
	"github.com/orrery-sim/orrery/internal/model"
	"github.com/orrery-sim/orrery/internal/registry"
)

// Validate checks that every transform dependency and every lag source names
// something real: a registered module output or another transform. Lag delays
// must be at least one year. Violations are collected and reported together
// so a user sees all wiring defects in one pass.
func Validate(ctx context.Context, reg *registry.Registry, transforms map[string]model.Transform, lags map[string]model.Lag) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	for _, name := range sortedKeys(transforms) {
		tr := transforms[name]
		if tr.Fn == nil {
			errs = append(errs, fmt.Sprintf("transform %q: missing function", name))
		}
		for _, dep := range tr.DependsOn {
			if reg.Has(dep) {
				continue
			}
			if _, ok := transforms[dep]; ok {
				continue
			}
			errs = append(errs, fmt.Sprintf("transform %q: dependency %q is not a module output or transform", name, dep))
		}
	}

	for _, name := range sortedKeys(lags) {
		lag := lags[name]
		if lag.Delay < 1 {
			errs = append(errs, fmt.Sprintf("lag %q: delay must be at least 1 year, got %d", name, lag.Delay))
		}
		if reg.Has(lag.Source) {
			continue
		}
		if _, ok := transforms[lag.Source]; ok {
			continue
		}
		errs = append(errs, fmt.Sprintf("lag %q: source %q is not a module output or transform", name, lag.Source))
	}

	if len(errs) > 0 {
		return fmt.Errorf("wiring validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	logger.Debug("Wiring validation passed.", "transform_count", len(transforms), "lag_count", len(lags))
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
