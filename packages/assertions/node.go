package assertions

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// NodeAssert wraps a node and checks its labels and properties.
type NodeAssert struct {
	t      TestingT
	actual *dbtype.Node
}

// Node returns an assertion wrapper for a node.
func Node(t TestingT, actual *dbtype.Node) *NodeAssert {
	return &NodeAssert{t: t, actual: actual}
}

// Actual returns the wrapped node.
func (a *NodeAssert) Actual() *dbtype.Node {
	return a.actual
}

func (a *NodeAssert) ok() bool {
	helper(a.t)
	if a.actual == nil {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasLabel verifies the node carries the given label. Matching is
// case-sensitive exact string comparison.
func (a *NodeAssert) HasLabel(label string) *NodeAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if !containsLabel(a.actual.Labels, label) {
		fail(a.t, KindAssertion, shouldHaveLabel(graph.DescribeNode(a.actual), label))
	}
	return a
}

// DoesNotHaveLabel verifies the node does not carry the given label.
func (a *NodeAssert) DoesNotHaveLabel(label string) *NodeAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if containsLabel(a.actual.Labels, label) {
		fail(a.t, KindAssertion, shouldNotHaveLabel(graph.DescribeNode(a.actual), label))
	}
	return a
}

// HasPropertyKey verifies the node has a property with the given key.
func (a *NodeAssert) HasPropertyKey(key string) *NodeAssert {
	helper(a.t)
	if a.ok() {
		assertHasPropertyKey(a.t, a.actual.Props, graph.DescribeNode(a.actual), key)
	}
	return a
}

// DoesNotHavePropertyKey verifies the node has no property with the given key.
func (a *NodeAssert) DoesNotHavePropertyKey(key string) *NodeAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHavePropertyKey(a.t, a.actual.Props, graph.DescribeNode(a.actual), key)
	}
	return a
}

// HasProperty verifies the node has the given key with the given value.
func (a *NodeAssert) HasProperty(key string, value any) *NodeAssert {
	helper(a.t)
	if a.ok() {
		assertHasProperty(a.t, a.actual.Props, graph.DescribeNode(a.actual), key, value)
	}
	return a
}

// DoesNotHaveProperty verifies the node does not have the given key with the
// given value.
func (a *NodeAssert) DoesNotHaveProperty(key string, value any) *NodeAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHaveProperty(a.t, a.actual.Props, graph.DescribeNode(a.actual), key, value)
	}
	return a
}

// HasPropertiesMatchingSchema validates the node's properties against a JSON
// Schema document.
func (a *NodeAssert) HasPropertiesMatchingSchema(schemaJSON string) *NodeAssert {
	helper(a.t)
	if a.ok() {
		assertPropertiesMatchSchema(a.t, a.actual.Props, graph.DescribeNode(a.actual), schemaJSON)
	}
	return a
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
