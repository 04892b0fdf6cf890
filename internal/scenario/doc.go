// Package scenario loads run definitions from HCL files: the simulated year
// range, the lag channels, and per-module parameter overrides. A scenario
// may be split across many files in a directory; blocks are merged into a
// single definition. YAML override files can be layered on top for quick
// parameter sweeps without editing the scenario itself.
package scenario
