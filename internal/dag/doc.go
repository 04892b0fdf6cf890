// Package dag builds the module dependency graph from declared inputs,
// transforms, and lags, and linearizes it into the fixed execution order
// used for every simulated year. Lag-routed inputs create no edges: they are
// the sanctioned cycle break.
package dag
