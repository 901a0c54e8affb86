// Package cmd implements the graphspec CLI commands using Cobra.
//
// Available commands:
//   - run: Execute expectations against a Neo4j database
//   - validate: Check expectation file syntax without executing
//   - list: Display all expectations defined in files
//   - history: Show results of past runs
//   - init: Create a new graphspec project with example files
//   - version: Show graphspec version information
//
// The CLI supports various flags for filtering, output formatting,
// repeated execution with latency reporting, and watch mode for
// development workflows.
package cmd
