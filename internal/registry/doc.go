// Package registry maps every declared output name to the single module that
// produces it. The registry is built fresh per composition; there is no
// process-wide shared state between independent runs.
package registry
