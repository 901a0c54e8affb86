package assertions

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

func TestAssert_Dispatch(t *testing.T) {
	node := newNode(1, []string{"Person"}, nil)
	rel := newRelationship(2, "KNOWS", node, newNode(3, nil, nil), nil)
	path := newPath([]*dbtype.Node{node}, nil)

	cases := []struct {
		name  string
		value any
		want  any
	}{
		{"node pointer", node, &NodeAssert{}},
		{"node value", *node, &NodeAssert{}},
		{"relationship pointer", rel, &RelationshipAssert{}},
		{"relationship value", *rel, &RelationshipAssert{}},
		{"path pointer", path, &PathAssert{}},
		{"path value", *path, &PathAssert{}},
		{"records", []*db.Record{}, &RecordsAssert{}},
		{"index definition", &graph.IndexDefinition{Name: "i"}, &IndexAssert{}},
		{"constraint definition", &graph.ConstraintDefinition{Name: "c"}, &ConstraintAssert{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &Recorder{}
			got := Assert(rec, tc.value)
			requirePassed(t, rec)
			require.IsType(t, tc.want, got)
		})
	}
}

func TestAssert_DispatchedWrapperIsUsable(t *testing.T) {
	rec := &Recorder{}
	node := newNode(1, []string{"Person"}, map[string]any{"name": "Homer"})

	wrapper, ok := Assert(rec, node).(*NodeAssert)
	require.True(t, ok)
	wrapper.HasLabel("Person").HasProperty("name", "Homer")
	requirePassed(t, rec)
}

func TestAssert_UnsupportedType(t *testing.T) {
	rec := &Recorder{}
	got := Assert(rec, 42)
	assert.Nil(t, got)
	requireFailure(t, rec, KindInvalidArgument, "no assertion wrapper for type int")
}

func TestAssert_NilValue(t *testing.T) {
	rec := &Recorder{}
	got := Assert(rec, nil)
	assert.Nil(t, got)
	requireFailure(t, rec, KindInvalidArgument, "The value to assert on should not be null")
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	require.False(t, rec.Failed())

	fail(rec, KindInvalidState, "endpoint missing")
	require.True(t, rec.Failed())
	require.Len(t, rec.Failures, 1)
	assert.Equal(t, KindInvalidState, rec.Failures[0].Kind)
	assert.Equal(t, "invalid state: endpoint missing", rec.Failures[0].Error())

	// Errorf records plain assertion failures, so testify helpers can report
	// through a Recorder too.
	rec.Errorf("expected %d", 1)
	require.Len(t, rec.Failures, 2)
	assert.Equal(t, KindAssertion, rec.Failures[1].Kind)
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "assertion failed", KindAssertion.String())
	assert.Equal(t, "invalid argument", KindInvalidArgument.String())
	assert.Equal(t, "invalid state", KindInvalidState.String())
}
