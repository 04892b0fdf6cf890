package engine

import "github.com/orrery-sim/orrery/internal/model"

// valuesReader is the plain read-only view over the current year's outputs.
type valuesReader struct {
	values model.Values
}

func (r valuesReader) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// trackingReader wraps another reader and records every name actually read.
// It backs the dev-mode check that a transform only touches outputs it
// declared in DependsOn.
type trackingReader struct {
	inner model.Reader
	reads map[string]bool
}

func newTrackingReader(inner model.Reader) *trackingReader {
	return &trackingReader{inner: inner, reads: make(map[string]bool)}
}

func (r *trackingReader) Get(name string) (any, bool) {
	r.reads[name] = true
	return r.inner.Get(name)
}
