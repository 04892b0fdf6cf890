// Package wiring statically validates transform and lag declarations before
// graph construction is trusted, and provides the lookup helpers transform
// authors use to choose an explicit missing-value policy per call site.
package wiring
