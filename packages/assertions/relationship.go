package assertions

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// RelationshipAssert wraps a relationship and checks its type, endpoints and
// properties.
type RelationshipAssert struct {
	t      TestingT
	actual *dbtype.Relationship
}

// Relationship returns an assertion wrapper for a relationship.
func Relationship(t TestingT, actual *dbtype.Relationship) *RelationshipAssert {
	return &RelationshipAssert{t: t, actual: actual}
}

// Actual returns the wrapped relationship.
func (a *RelationshipAssert) Actual() *dbtype.Relationship {
	return a.actual
}

func (a *RelationshipAssert) ok() bool {
	helper(a.t)
	if a.actual == nil {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasType verifies the relationship has the given type.
func (a *RelationshipAssert) HasType(relType string) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if relType == "" {
		fail(a.t, KindInvalidArgument, msgTypeArg)
		return a
	}
	if a.actual.Type != relType {
		fail(a.t, KindAssertion, shouldHaveType(graph.DescribeRelationship(a.actual), relType))
	}
	return a
}

// DoesNotHaveType verifies the relationship does not have the given type.
func (a *RelationshipAssert) DoesNotHaveType(relType string) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if relType == "" {
		fail(a.t, KindInvalidArgument, msgTypeArg)
		return a
	}
	if a.actual.Type == relType {
		fail(a.t, KindAssertion, shouldNotHaveType(graph.DescribeRelationship(a.actual), relType))
	}
	return a
}

// StartsWithNode verifies the relationship starts at the given node.
func (a *RelationshipAssert) StartsWithNode(node *dbtype.Node) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if !graph.HasStart(a.actual) {
		fail(a.t, KindInvalidState, msgActualStartNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if !graph.StartsWith(a.actual, node) {
		fail(a.t, KindAssertion, shouldStartWithNode(graph.DescribeRelationship(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// DoesNotStartWithNode verifies the relationship does not start at the given
// node.
func (a *RelationshipAssert) DoesNotStartWithNode(node *dbtype.Node) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if !graph.HasStart(a.actual) {
		fail(a.t, KindInvalidState, msgActualStartNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if graph.StartsWith(a.actual, node) {
		fail(a.t, KindAssertion, shouldNotStartWithNode(graph.DescribeRelationship(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// EndsWithNode verifies the relationship ends at the given node.
func (a *RelationshipAssert) EndsWithNode(node *dbtype.Node) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if !graph.HasEnd(a.actual) {
		fail(a.t, KindInvalidState, msgActualEndNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if !graph.EndsWith(a.actual, node) {
		fail(a.t, KindAssertion, shouldEndWithNode(graph.DescribeRelationship(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// DoesNotEndWithNode verifies the relationship does not end at the given node.
func (a *RelationshipAssert) DoesNotEndWithNode(node *dbtype.Node) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if !graph.HasEnd(a.actual) {
		fail(a.t, KindInvalidState, msgActualEndNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if graph.EndsWith(a.actual, node) {
		fail(a.t, KindAssertion, shouldNotEndWithNode(graph.DescribeRelationship(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// StartsOrEndsWithNode verifies the given node is one of the relationship's
// two endpoints. It holds exactly when StartsWithNode or EndsWithNode would.
func (a *RelationshipAssert) StartsOrEndsWithNode(node *dbtype.Node) *RelationshipAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if !graph.HasStart(a.actual) {
		fail(a.t, KindInvalidState, msgActualStartNode)
		return a
	}
	if !graph.HasEnd(a.actual) {
		fail(a.t, KindInvalidState, msgActualEndNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if !graph.StartsWith(a.actual, node) && !graph.EndsWith(a.actual, node) {
		fail(a.t, KindAssertion, shouldStartOrEndWithNode(graph.DescribeRelationship(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// HasPropertyKey verifies the relationship has a property with the given key.
func (a *RelationshipAssert) HasPropertyKey(key string) *RelationshipAssert {
	helper(a.t)
	if a.ok() {
		assertHasPropertyKey(a.t, a.actual.Props, graph.DescribeRelationship(a.actual), key)
	}
	return a
}

// DoesNotHavePropertyKey verifies the relationship has no property with the
// given key.
func (a *RelationshipAssert) DoesNotHavePropertyKey(key string) *RelationshipAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHavePropertyKey(a.t, a.actual.Props, graph.DescribeRelationship(a.actual), key)
	}
	return a
}

// HasProperty verifies the relationship has the given key with the given
// value.
func (a *RelationshipAssert) HasProperty(key string, value any) *RelationshipAssert {
	helper(a.t)
	if a.ok() {
		assertHasProperty(a.t, a.actual.Props, graph.DescribeRelationship(a.actual), key, value)
	}
	return a
}

// DoesNotHaveProperty verifies the relationship does not have the given key
// with the given value.
func (a *RelationshipAssert) DoesNotHaveProperty(key string, value any) *RelationshipAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHaveProperty(a.t, a.actual.Props, graph.DescribeRelationship(a.actual), key, value)
	}
	return a
}

// HasPropertiesMatchingSchema validates the relationship's properties against
// a JSON Schema document.
func (a *RelationshipAssert) HasPropertiesMatchingSchema(schemaJSON string) *RelationshipAssert {
	helper(a.t)
	if a.ok() {
		assertPropertiesMatchSchema(a.t, a.actual.Props, graph.DescribeRelationship(a.actual), schemaJSON)
	}
	return a
}
