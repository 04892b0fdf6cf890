package wiring

import (
	"fmt"

	"github.com/orrery-sim/orrery/internal/model"
)

// The helpers below are the one sanctioned "soft fallback" surface in the
// system. The engine itself never defaults a missing value; a transform
// author picks one of these per call site to make the policy explicit.

// Require reads a value that must be present. The returned error aborts the
// run when propagated out of a transform.
func Require(outputs model.Reader, name string) (any, error) {
	v, ok := outputs.Get(name)
	if !ok {
		return nil, fmt.Errorf("required value %q is missing from current-year outputs", name)
	}
	return v, nil
}

// InitialDefault reads a value that is only allowed to be absent in the first
// simulated year, where initial stands in for it. Absence in any later year
// is an error.
func InitialDefault(outputs model.Reader, name string, yearIndex int, initial any) (any, error) {
	if v, ok := outputs.Get(name); ok {
		return v, nil
	}
	if yearIndex == 0 {
		return initial, nil
	}
	return nil, fmt.Errorf("value %q is missing after the first year (year index %d)", name, yearIndex)
}

// Optional reads a value that may legitimately be absent in any year,
// substituting fallback whenever it is.
func Optional(outputs model.Reader, name string, fallback any) any {
	if v, ok := outputs.Get(name); ok {
		return v
	}
	return fallback
}
