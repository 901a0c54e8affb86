package assertions

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/xeipuuv/gojsonschema"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// EntityAssert wraps any property container the driver hands out (a node or
// a relationship) and checks its key/value bag. The typed wrappers embed the
// same checks through the shared helpers below.
type EntityAssert struct {
	t      TestingT
	actual dbtype.Entity
}

// Entity returns an assertion wrapper for a generic property container.
func Entity(t TestingT, actual dbtype.Entity) *EntityAssert {
	return &EntityAssert{t: t, actual: actual}
}

// Actual returns the wrapped value.
func (a *EntityAssert) Actual() dbtype.Entity {
	return a.actual
}

func (a *EntityAssert) ok() bool {
	helper(a.t)
	if isNilEntity(a.actual) {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasPropertyKey verifies the container has a property with the given key.
func (a *EntityAssert) HasPropertyKey(key string) *EntityAssert {
	helper(a.t)
	if a.ok() {
		assertHasPropertyKey(a.t, a.actual.GetProperties(), graph.DescribeEntity(a.actual), key)
	}
	return a
}

// DoesNotHavePropertyKey verifies the container has no property with the
// given key.
func (a *EntityAssert) DoesNotHavePropertyKey(key string) *EntityAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHavePropertyKey(a.t, a.actual.GetProperties(), graph.DescribeEntity(a.actual), key)
	}
	return a
}

// HasProperty verifies the container has the given key with the given value.
// Values compare by value equality, with numeric widening so an int64 stored
// by the server matches an int expected by the test.
func (a *EntityAssert) HasProperty(key string, value any) *EntityAssert {
	helper(a.t)
	if a.ok() {
		assertHasProperty(a.t, a.actual.GetProperties(), graph.DescribeEntity(a.actual), key, value)
	}
	return a
}

// DoesNotHaveProperty verifies the container does not have the given key
// with the given value. A container missing the key entirely passes.
func (a *EntityAssert) DoesNotHaveProperty(key string, value any) *EntityAssert {
	helper(a.t)
	if a.ok() {
		assertDoesNotHaveProperty(a.t, a.actual.GetProperties(), graph.DescribeEntity(a.actual), key, value)
	}
	return a
}

// HasPropertiesMatchingSchema validates the property map against a JSON
// Schema document.
func (a *EntityAssert) HasPropertiesMatchingSchema(schemaJSON string) *EntityAssert {
	helper(a.t)
	if a.ok() {
		assertPropertiesMatchSchema(a.t, a.actual.GetProperties(), graph.DescribeEntity(a.actual), schemaJSON)
	}
	return a
}

func isNilEntity(e dbtype.Entity) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *dbtype.Node:
		return v == nil
	case *dbtype.Relationship:
		return v == nil
	default:
		return false
	}
}

// Shared predicate bodies. Callers have already rejected a nil actual; each
// helper rejects its own absent arguments, matching the check order the
// wrappers promise (actual first, then argument, then condition).

func assertHasPropertyKey(t TestingT, props map[string]any, desc, key string) {
	helper(t)
	if key == "" {
		fail(t, KindInvalidArgument, msgKeyArg)
		return
	}
	if _, ok := props[key]; !ok {
		fail(t, KindAssertion, shouldHavePropertyKey(desc, key))
	}
}

func assertDoesNotHavePropertyKey(t TestingT, props map[string]any, desc, key string) {
	helper(t)
	if key == "" {
		fail(t, KindInvalidArgument, msgKeyArg)
		return
	}
	if _, ok := props[key]; ok {
		fail(t, KindAssertion, shouldNotHavePropertyKey(desc, key))
	}
}

func assertHasProperty(t TestingT, props map[string]any, desc, key string, value any) {
	helper(t)
	if key == "" {
		fail(t, KindInvalidArgument, msgKeyArg)
		return
	}
	stored, ok := props[key]
	if !ok {
		fail(t, KindAssertion, shouldHavePropertyKey(desc, key))
		return
	}
	if value == nil {
		fail(t, KindInvalidArgument, msgValueArg)
		return
	}
	if !valueEqual(stored, value) {
		fail(t, KindAssertion, shouldHaveProperty(desc, key, value))
	}
}

func assertDoesNotHaveProperty(t TestingT, props map[string]any, desc, key string, value any) {
	helper(t)
	if key == "" {
		fail(t, KindInvalidArgument, msgKeyArg)
		return
	}
	if value == nil {
		fail(t, KindInvalidArgument, msgValueArg)
		return
	}
	if stored, ok := props[key]; ok && valueEqual(stored, value) {
		fail(t, KindAssertion, shouldNotHaveProperty(desc, key, value))
	}
}

func assertPropertiesMatchSchema(t TestingT, props map[string]any, desc, schemaJSON string) {
	helper(t)
	if schemaJSON == "" {
		fail(t, KindInvalidArgument, msgSchemaArg)
		return
	}
	doc, err := json.Marshal(props)
	if err != nil {
		fail(t, KindInvalidState, fmt.Sprintf("properties are not JSON-encodable: %v", err))
		return
	}
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schemaJSON), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		fail(t, KindInvalidArgument, fmt.Sprintf("schema validation error: %v", err))
		return
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			violations = append(violations, e.String())
		}
		fail(t, KindAssertion, shouldMatchSchema(desc, violations))
	}
}

// valueEqual compares a stored property value with a looked-for value. Deep
// equality first, then numeric widening so int/int64/float mixes still match.
func valueEqual(stored, sought any) bool {
	if reflect.DeepEqual(stored, sought) {
		return true
	}
	a, aOk := toFloat64(stored)
	b, bOk := toFloat64(sought)
	return aOk && bOk && a == b
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
