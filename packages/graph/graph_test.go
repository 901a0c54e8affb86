package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameNode(t *testing.T) {
	t.Run("element IDs win when both set", func(t *testing.T) {
		a := &dbtype.Node{Id: 1, ElementId: "4:db:1"}
		b := &dbtype.Node{Id: 2, ElementId: "4:db:1"}
		assert.True(t, SameNode(a, b))
	})

	t.Run("different element IDs differ even with equal legacy IDs", func(t *testing.T) {
		a := &dbtype.Node{Id: 1, ElementId: "4:db:1"}
		b := &dbtype.Node{Id: 1, ElementId: "4:db:2"}
		assert.False(t, SameNode(a, b))
	})

	t.Run("legacy ID fallback", func(t *testing.T) {
		a := &dbtype.Node{Id: 7}
		b := &dbtype.Node{Id: 7}
		assert.True(t, SameNode(a, b))
		assert.False(t, SameNode(a, &dbtype.Node{Id: 8}))
	})

	t.Run("nil never matches", func(t *testing.T) {
		assert.False(t, SameNode(nil, &dbtype.Node{Id: 1}))
		assert.False(t, SameNode(&dbtype.Node{Id: 1}, nil))
		assert.False(t, SameNode(nil, nil))
	})
}

func TestRelationshipEndpoints(t *testing.T) {
	start := &dbtype.Node{Id: 1, ElementId: "4:db:1"}
	end := &dbtype.Node{Id: 2, ElementId: "4:db:2"}
	rel := &dbtype.Relationship{
		Id: 9, ElementId: "5:db:9", Type: "KNOWS",
		StartId: 1, StartElementId: "4:db:1",
		EndId: 2, EndElementId: "4:db:2",
	}

	assert.True(t, StartsWith(rel, start))
	assert.False(t, StartsWith(rel, end))
	assert.True(t, EndsWith(rel, end))
	assert.False(t, EndsWith(rel, start))
	assert.True(t, HasStart(rel))
	assert.True(t, HasEnd(rel))

	assert.False(t, HasStart(&dbtype.Relationship{}))
	assert.False(t, HasEnd(&dbtype.Relationship{}))
	assert.False(t, HasStart(nil))
}

func TestPathAccessors(t *testing.T) {
	a := dbtype.Node{Id: 1, ElementId: "4:db:1"}
	b := dbtype.Node{Id: 2, ElementId: "4:db:2"}
	rel := dbtype.Relationship{Id: 9, ElementId: "5:db:9"}
	path := &dbtype.Path{Nodes: []dbtype.Node{a, b}, Relationships: []dbtype.Relationship{rel}}

	require.NotNil(t, PathStart(path))
	assert.Equal(t, a.ElementId, PathStart(path).ElementId)
	assert.Equal(t, b.ElementId, PathEnd(path).ElementId)
	assert.Equal(t, rel.ElementId, PathLastRelationship(path).ElementId)
	assert.Equal(t, 1, PathLength(path))

	empty := &dbtype.Path{}
	assert.Nil(t, PathStart(empty))
	assert.Nil(t, PathEnd(empty))
	assert.Nil(t, PathLastRelationship(empty))
	assert.Equal(t, 0, PathLength(empty))
	assert.Equal(t, 0, PathLength(nil))
}

func TestDescribe(t *testing.T) {
	node := &dbtype.Node{Id: 42, Labels: []string{"Person", "Employee"}}
	assert.Equal(t, "node with ID: 42 and labels: [Person, Employee]", DescribeNode(node))

	withElement := &dbtype.Node{Id: 42, ElementId: "4:db:42", Labels: []string{"Person"}}
	assert.Equal(t, "node with ID: 4:db:42 and labels: [Person]", DescribeNode(withElement))

	rel := &dbtype.Relationship{Id: 42, Type: "SOME_TYPE"}
	assert.Equal(t, "relationship with ID: 42 and type: SOME_TYPE", DescribeRelationship(rel))

	path := &dbtype.Path{Relationships: []dbtype.Relationship{*rel}}
	assert.Equal(t, "path with length: 1", DescribePath(path))

	assert.Equal(t, "<nil node>", DescribeNode(nil))
	assert.Equal(t, "<nil relationship>", DescribeRelationship(nil))
	assert.Equal(t, "<nil path>", DescribePath(nil))
}

func TestDescribeEntity(t *testing.T) {
	node := dbtype.Node{Id: 1, Labels: []string{"Person"}}
	rel := dbtype.Relationship{Id: 2, Type: "KNOWS"}

	assert.Equal(t, DescribeNode(&node), DescribeEntity(node))
	assert.Equal(t, DescribeNode(&node), DescribeEntity(&node))
	assert.Equal(t, DescribeRelationship(&rel), DescribeEntity(rel))
	assert.Equal(t, "<nil entity>", DescribeEntity(nil))
}
