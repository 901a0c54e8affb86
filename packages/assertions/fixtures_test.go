package assertions

import (
	"fmt"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/require"
)

func newNode(id int64, labels []string, props map[string]any) *dbtype.Node {
	return &dbtype.Node{
		Id:        id,
		ElementId: elementID(id),
		Labels:    labels,
		Props:     props,
	}
}

func newRelationship(id int64, relType string, start, end *dbtype.Node, props map[string]any) *dbtype.Relationship {
	rel := &dbtype.Relationship{
		Id:        id,
		ElementId: elementID(id),
		Type:      relType,
		Props:     props,
	}
	if start != nil {
		rel.StartId = start.Id
		rel.StartElementId = start.ElementId
	}
	if end != nil {
		rel.EndId = end.Id
		rel.EndElementId = end.ElementId
	}
	return rel
}

func elementID(id int64) string {
	return fmt.Sprintf("4:graphspec:%d", id)
}

func requireFailure(t *testing.T, rec *Recorder, kind FailureKind, contains string) {
	t.Helper()
	require.True(t, rec.Failed(), "expected a recorded failure")
	last := rec.Failures[len(rec.Failures)-1]
	require.Equal(t, kind, last.Kind)
	require.Contains(t, last.Message, contains)
}

func requirePassed(t *testing.T, rec *Recorder) {
	t.Helper()
	require.False(t, rec.Failed(), "expected no failures, got %v", rec.Failures)
}
