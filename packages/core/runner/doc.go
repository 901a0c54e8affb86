// Package runner executes expectation files against a live Neo4j instance.
//
// For every expectation it runs the Cypher query in a read session, collects
// the records, and evaluates each assertion with the same wrappers test code
// uses, recording failures instead of aborting. Results aggregate into a
// RunResult consumed by the output formatters and the history store.
package runner
