package assertions

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// PathAssert wraps a path and checks its length and terminal nodes and
// relationships.
type PathAssert struct {
	t      TestingT
	actual *dbtype.Path
}

// Path returns an assertion wrapper for a path.
func Path(t TestingT, actual *dbtype.Path) *PathAssert {
	return &PathAssert{t: t, actual: actual}
}

// Actual returns the wrapped path.
func (a *PathAssert) Actual() *dbtype.Path {
	return a.actual
}

func (a *PathAssert) ok() bool {
	helper(a.t)
	if a.actual == nil {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasLength verifies the path has the given number of relationships.
func (a *PathAssert) HasLength(length int) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if length < 0 {
		fail(a.t, KindInvalidArgument, msgNegativeLen)
		return a
	}
	if got := graph.PathLength(a.actual); got != length {
		fail(a.t, KindAssertion, shouldHaveLength(graph.DescribePath(a.actual), length, got))
	}
	return a
}

// StartsWithNode verifies the path starts with the given node.
func (a *PathAssert) StartsWithNode(node *dbtype.Node) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	start := graph.PathStart(a.actual)
	if start == nil {
		fail(a.t, KindInvalidState, msgActualStartNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if !graph.SameNode(start, node) {
		fail(a.t, KindAssertion, shouldStartWithNode(graph.DescribePath(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// DoesNotStartWithNode verifies the path does not start with the given node.
func (a *PathAssert) DoesNotStartWithNode(node *dbtype.Node) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	start := graph.PathStart(a.actual)
	if start == nil {
		fail(a.t, KindInvalidState, msgActualStartNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if graph.SameNode(start, node) {
		fail(a.t, KindAssertion, shouldNotStartWithNode(graph.DescribePath(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// EndsWithNode verifies the path ends with the given node.
func (a *PathAssert) EndsWithNode(node *dbtype.Node) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	end := graph.PathEnd(a.actual)
	if end == nil {
		fail(a.t, KindInvalidState, msgActualEndNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if !graph.SameNode(end, node) {
		fail(a.t, KindAssertion, shouldEndWithNode(graph.DescribePath(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// DoesNotEndWithNode verifies the path does not end with the given node.
func (a *PathAssert) DoesNotEndWithNode(node *dbtype.Node) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	end := graph.PathEnd(a.actual)
	if end == nil {
		fail(a.t, KindInvalidState, msgActualEndNode)
		return a
	}
	if node == nil {
		fail(a.t, KindInvalidArgument, msgNodeArg)
		return a
	}
	if graph.SameNode(end, node) {
		fail(a.t, KindAssertion, shouldNotEndWithNode(graph.DescribePath(a.actual), graph.DescribeNode(node)))
	}
	return a
}

// EndsWithRelationship verifies the path's last relationship is the given
// one.
func (a *PathAssert) EndsWithRelationship(rel *dbtype.Relationship) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	last := graph.PathLastRelationship(a.actual)
	if last == nil {
		fail(a.t, KindInvalidState, msgActualLastRel)
		return a
	}
	if rel == nil {
		fail(a.t, KindInvalidArgument, msgLastRelArg)
		return a
	}
	if !graph.SameRelationship(last, rel) {
		fail(a.t, KindAssertion, shouldEndWithRelationship(graph.DescribePath(a.actual), graph.DescribeRelationship(rel)))
	}
	return a
}

// DoesNotEndWithRelationship verifies the path's last relationship is not the
// given one.
func (a *PathAssert) DoesNotEndWithRelationship(rel *dbtype.Relationship) *PathAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	last := graph.PathLastRelationship(a.actual)
	if last == nil {
		fail(a.t, KindInvalidState, msgActualLastRel)
		return a
	}
	if rel == nil {
		fail(a.t, KindInvalidArgument, msgLastRelArg)
		return a
	}
	if graph.SameRelationship(last, rel) {
		fail(a.t, KindAssertion, shouldNotEndWithRelationship(graph.DescribePath(a.actual), graph.DescribeRelationship(rel)))
	}
	return a
}
