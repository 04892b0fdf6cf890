// Package cli parses command-line arguments into an app.Config and carries
// exit codes across the main boundary via ExitError.
package cli
