package runner

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/tidwall/gjson"

	"github.com/abdul-hamid-achik/graphspec/packages/assertions"
	"github.com/abdul-hamid-achik/graphspec/packages/core/parser"
	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// evaluateAll applies every assert line to the collected records.
func evaluateAll(records []*db.Record, asserts []*parser.Assertion) []*AssertionResult {
	results := make([]*AssertionResult, len(asserts))
	for i, a := range asserts {
		results[i] = evaluate(records, a)
	}
	return results
}

func evaluate(records []*db.Record, a *parser.Assertion) *AssertionResult {
	rec := &assertions.Recorder{}
	res := &AssertionResult{Subject: a.Subject, Op: string(a.Op), Expected: a.Expected}

	switch a.Op {
	case parser.OpCount, parser.OpEmpty, parser.OpNotEmpty, parser.OpColumns:
		evaluateRows(rec, records, a)
	case parser.OpIndex:
		evaluateIndex(rec, records, a)
	case parser.OpConstraint:
		evaluateConstraint(rec, records, a)
	case parser.OpEquals, parser.OpContains, parser.OpMatches:
		evaluateValue(rec, records, a)
	default:
		evaluateColumn(rec, records, a)
	}

	res.Failures = rec.Failures
	res.Passed = !rec.Failed()
	return res
}

func evaluateRows(rec *assertions.Recorder, records []*db.Record, a *parser.Assertion) {
	wrapper := assertions.Records(rec, records)
	switch a.Op {
	case parser.OpCount:
		n, _ := a.ExpectedInt()
		wrapper.HasSize(n)
	case parser.OpEmpty:
		wrapper.IsEmpty()
	case parser.OpNotEmpty:
		wrapper.IsNotEmpty()
	case parser.OpColumns:
		wrapper.ContainsColumns(a.ExpectedStrings()...)
	}
}

// evaluateColumn checks a graph value found in a column of the first record.
func evaluateColumn(rec *assertions.Recorder, records []*db.Record, a *parser.Assertion) {
	value, err := columnValue(records, a.Subject)
	if err != nil {
		rec.Errorf("%v", err)
		return
	}

	switch v := value.(type) {
	case dbtype.Node:
		evaluateNode(rec, &v, a)
	case dbtype.Relationship:
		evaluateRelationship(rec, &v, a)
	case dbtype.Path:
		evaluatePath(rec, &v, a)
	default:
		rec.Errorf("column %q holds %T, not a node, relationship or path", a.Subject, value)
	}
}

func evaluateNode(rec *assertions.Recorder, node *dbtype.Node, a *parser.Assertion) {
	wrapper := assertions.Node(rec, node)
	switch a.Op {
	case parser.OpHasLabel:
		wrapper.HasLabel(a.ExpectedString())
	case parser.OpDoesNotHaveLabel:
		wrapper.DoesNotHaveLabel(a.ExpectedString())
	case parser.OpHasPropertyKey:
		wrapper.HasPropertyKey(a.ExpectedString())
	case parser.OpDoesNotHavePropertyKey:
		wrapper.DoesNotHavePropertyKey(a.ExpectedString())
	case parser.OpHasProperty:
		wrapper.HasProperty(a.Key, a.Value)
	case parser.OpDoesNotHaveProperty:
		wrapper.DoesNotHaveProperty(a.Key, a.Value)
	case parser.OpMatchesSchema:
		wrapper.HasPropertiesMatchingSchema(a.ExpectedString())
	default:
		rec.Errorf("op %q does not apply to a node", a.Op)
	}
}

func evaluateRelationship(rec *assertions.Recorder, rel *dbtype.Relationship, a *parser.Assertion) {
	wrapper := assertions.Relationship(rec, rel)
	switch a.Op {
	case parser.OpHasType:
		wrapper.HasType(a.ExpectedString())
	case parser.OpDoesNotHaveType:
		wrapper.DoesNotHaveType(a.ExpectedString())
	case parser.OpHasPropertyKey:
		wrapper.HasPropertyKey(a.ExpectedString())
	case parser.OpDoesNotHavePropertyKey:
		wrapper.DoesNotHavePropertyKey(a.ExpectedString())
	case parser.OpHasProperty:
		wrapper.HasProperty(a.Key, a.Value)
	case parser.OpDoesNotHaveProperty:
		wrapper.DoesNotHaveProperty(a.Key, a.Value)
	case parser.OpMatchesSchema:
		wrapper.HasPropertiesMatchingSchema(a.ExpectedString())
	case parser.OpStartsWithNodeID:
		assertEndpointID(rec, rel, a, true)
	case parser.OpEndsWithNodeID:
		assertEndpointID(rec, rel, a, false)
	default:
		rec.Errorf("op %q does not apply to a relationship", a.Op)
	}
}

// assertEndpointID checks which node a relationship starts or ends at. An
// integer expected value addresses the legacy numeric ID, a string the
// element ID.
func assertEndpointID(rec *assertions.Recorder, rel *dbtype.Relationship, a *parser.Assertion, start bool) {
	elementID, legacyID, side := rel.EndElementId, rel.EndId, "end"
	if start {
		elementID, legacyID, side = rel.StartElementId, rel.StartId, "start"
	}

	if n, ok := a.ExpectedInt(); ok {
		if legacyID != int64(n) {
			rec.Errorf("expected relationship to %s at node with ID %d, got %d", side, n, legacyID)
		}
		return
	}
	expected := a.ExpectedString()
	if elementID != expected {
		rec.Errorf("expected relationship to %s at node with element ID %q, got %q", side, expected, elementID)
	}
}

func evaluatePath(rec *assertions.Recorder, path *dbtype.Path, a *parser.Assertion) {
	wrapper := assertions.Path(rec, path)
	switch a.Op {
	case parser.OpHasLength:
		n, _ := a.ExpectedInt()
		wrapper.HasLength(n)
	default:
		rec.Errorf("op %q does not apply to a path", a.Op)
	}
}

func evaluateIndex(rec *assertions.Recorder, records []*db.Record, a *parser.Assertion) {
	spec, _ := a.Expected.(map[string]any)
	name, _ := spec["name"].(string)
	if name == "" {
		rec.Errorf("index assert needs a name")
		return
	}
	def := findIndex(records, name)
	wrapper := assertions.Index(rec, def)
	if label, ok := spec["label"].(string); ok {
		wrapper.HasLabel(label)
	}
	if prop, ok := spec["property"].(string); ok {
		wrapper.HasPropertyKey(prop)
	}
	if def == nil {
		return
	}
	if idxType, ok := spec["type"].(string); ok && def.Type != idxType {
		rec.Errorf("index %q has type %s, expected %s", name, def.Type, idxType)
	}
}

func evaluateConstraint(rec *assertions.Recorder, records []*db.Record, a *parser.Assertion) {
	spec, _ := a.Expected.(map[string]any)
	name, _ := spec["name"].(string)
	if name == "" {
		rec.Errorf("constraint assert needs a name")
		return
	}
	def := findConstraint(records, name)
	wrapper := assertions.Constraint(rec, def)
	if label, ok := spec["label"].(string); ok {
		wrapper.HasLabel(label)
	}
	if cType, ok := spec["type"].(string); ok {
		wrapper.HasType(cType)
	}
	if prop, ok := spec["property"].(string); ok && def != nil && !def.HasPropertyKey(prop) {
		rec.Errorf("constraint %q does not cover property %q", name, prop)
	}
}

func findIndex(records []*db.Record, name string) *graph.IndexDefinition {
	for _, r := range records {
		def, err := graph.IndexFromRecord(r)
		if err == nil && def.Name == name {
			return def
		}
	}
	return nil
}

func findConstraint(records []*db.Record, name string) *graph.ConstraintDefinition {
	for _, r := range records {
		def, err := graph.ConstraintFromRecord(r)
		if err == nil && def.Name == name {
			return def
		}
	}
	return nil
}

// evaluateValue addresses a scalar inside the JSON-encoded records with a
// gjson path. Paths are relative to the array of record maps, so "0.p.name"
// is the name property of column p in the first record.
func evaluateValue(rec *assertions.Recorder, records []*db.Record, a *parser.Assertion) {
	doc, err := recordsJSON(records)
	if err != nil {
		rec.Errorf("records are not JSON-encodable: %v", err)
		return
	}
	path := a.ValuePath()
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		rec.Errorf("no value at path %q", path)
		return
	}

	actual := result.String()
	expected := a.ExpectedString()
	switch a.Op {
	case parser.OpEquals:
		if actual != expected && fmt.Sprintf("%v", result.Value()) != expected {
			rec.Errorf("expected value at %q to equal %q, got %q", path, expected, actual)
		}
	case parser.OpContains:
		if !strings.Contains(actual, expected) {
			rec.Errorf("expected value at %q to contain %q, got %q", path, expected, actual)
		}
	case parser.OpMatches:
		re, err := regexp.Compile(expected)
		if err != nil {
			rec.Errorf("invalid pattern %q: %v", expected, err)
			return
		}
		if !re.MatchString(actual) {
			rec.Errorf("expected value at %q to match /%s/, got %q", path, expected, actual)
		}
	}
}

func recordsJSON(records []*db.Record) ([]byte, error) {
	maps := make([]map[string]any, len(records))
	for i, r := range records {
		maps[i] = r.AsMap()
	}
	return json.Marshal(maps)
}

func columnValue(records []*db.Record, column string) (any, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("query returned no rows, cannot read column %q", column)
	}
	value, ok := records[0].Get(column)
	if !ok {
		return nil, fmt.Errorf("column %q not found, result has columns %v", column, records[0].Keys)
	}
	return value, nil
}
