// Package parser reads graphspec expectation files: YAML documents that
// pair Cypher queries with assertions over their results.
//
// A minimal file:
//
//	target: bolt://localhost:7687
//	expectations:
//	  - name: homer exists
//	    query: MATCH (p:Person {name: $name}) RETURN p
//	    params: {name: Homer}
//	    asserts:
//	      - subject: p
//	        op: has_label
//	        expected: Person
//	      - subject: rows
//	        op: count
//	        expected: 1
package parser
