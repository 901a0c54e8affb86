// Package graph holds the domain model shared by graphspec's assertion and
// runner layers: identity helpers over the neo4j driver's node, relationship
// and path types, human-readable value descriptions, and schema metadata
// (index and constraint definitions) parsed from SHOW INDEXES / SHOW
// CONSTRAINTS result rows.
//
// graphspec never owns the lifecycle of these values; it only inspects the
// state the driver materialized.
package graph
