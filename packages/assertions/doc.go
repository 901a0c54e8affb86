// Package assertions provides fluent assertions over Neo4j domain values.
//
// Supported wrappers:
//   - Node: labels and properties (HasLabel, HasProperty, ...)
//   - Relationship: type, endpoints and properties (StartsWithNode, ...)
//   - Path: length and terminal nodes/relationships
//   - Records: collected query results (IsEmpty, HasSize, ContainsColumns)
//   - Index / Constraint: schema definitions from SHOW INDEXES / CONSTRAINTS
//   - Entity: any property container, plus JSON Schema validation
//
// Every predicate returns its wrapper for chaining and reports failures
// through a TestingT, so the wrappers plug into *testing.T directly or into
// a Recorder when the expectation runner needs structured results.
package assertions
