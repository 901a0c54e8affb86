package graph

import (
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// IndexDefinition describes one row of SHOW INDEXES.
type IndexDefinition struct {
	Name       string
	Type       string
	EntityType string
	Labels     []string
	Properties []string
}

// ConstraintDefinition describes one row of SHOW CONSTRAINTS.
type ConstraintDefinition struct {
	Name       string
	Type       string
	EntityType string
	Labels     []string
	Properties []string
}

// HasLabel reports whether the index covers the given label (or relationship
// type, for relationship indexes). Matching is case-sensitive.
func (d *IndexDefinition) HasLabel(label string) bool {
	return containsString(d.Labels, label)
}

// HasPropertyKey reports whether the index covers the given property key.
func (d *IndexDefinition) HasPropertyKey(key string) bool {
	return containsString(d.Properties, key)
}

func (d *IndexDefinition) String() string {
	return fmt.Sprintf("index %q on :%s(%s)", d.Name, strings.Join(d.Labels, ":"), strings.Join(d.Properties, ", "))
}

// HasLabel reports whether the constraint covers the given label.
func (d *ConstraintDefinition) HasLabel(label string) bool {
	return containsString(d.Labels, label)
}

// HasPropertyKey reports whether the constraint covers the given property key.
func (d *ConstraintDefinition) HasPropertyKey(key string) bool {
	return containsString(d.Properties, key)
}

func (d *ConstraintDefinition) String() string {
	return fmt.Sprintf("constraint %q of type %s on :%s(%s)", d.Name, d.Type, strings.Join(d.Labels, ":"), strings.Join(d.Properties, ", "))
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// IndexFromRecord parses a SHOW INDEXES row.
func IndexFromRecord(rec *db.Record) (*IndexDefinition, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil record")
	}
	def := &IndexDefinition{
		Name:       stringColumn(rec, "name"),
		Type:       stringColumn(rec, "type"),
		EntityType: stringColumn(rec, "entityType"),
		Labels:     stringSliceColumn(rec, "labelsOrTypes"),
		Properties: stringSliceColumn(rec, "properties"),
	}
	if def.Name == "" {
		return nil, fmt.Errorf("record has no index name: columns %v", rec.Keys)
	}
	return def, nil
}

// ConstraintFromRecord parses a SHOW CONSTRAINTS row.
func ConstraintFromRecord(rec *db.Record) (*ConstraintDefinition, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil record")
	}
	def := &ConstraintDefinition{
		Name:       stringColumn(rec, "name"),
		Type:       stringColumn(rec, "type"),
		EntityType: stringColumn(rec, "entityType"),
		Labels:     stringSliceColumn(rec, "labelsOrTypes"),
		Properties: stringSliceColumn(rec, "properties"),
	}
	if def.Name == "" {
		return nil, fmt.Errorf("record has no constraint name: columns %v", rec.Keys)
	}
	return def, nil
}

func stringColumn(rec *db.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func stringSliceColumn(rec *db.Record, key string) []string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
