package assertions

import (
	"fmt"
	"strconv"
	"strings"
)

// Failure messages follow one shape: the actual value's description, the
// relation that should (or should not) hold, and the value looked for. Each
// predicate has its own factory so wording stays stable per failure kind.

const msgActualNotNull = "Expecting actual not to be null"

const (
	msgKeyArg            = "The key to look for should not be empty"
	msgValueArg          = "The value to look for should not be null"
	msgLabelArg          = "The label to look for should not be empty"
	msgTypeArg           = "The relationship type to look for should not be empty"
	msgConstraintTypeArg = "The constraint type to look for should not be empty"
	msgNodeArg           = "The node to look for should not be null"
	msgLastRelArg        = "The last relationship to look for should not be null"
	msgSchemaArg         = "The schema document to validate against should not be empty"
	msgColumnsArg        = "The column names to look for should not be empty"
	msgNegativeLen       = "The expected length should not be negative"
)

const (
	msgActualStartNode = "The actual start node should not be null"
	msgActualEndNode   = "The actual end node should not be null"
	msgActualLastRel   = "The actual last relationship should not be null"
)

// formatLookup renders a looked-for value; strings are quoted so an empty or
// whitespace value stays visible in the message.
func formatLookup(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

func expecting(actual, relation, sought string) string {
	return fmt.Sprintf("\nExpecting:\n  <%s>\n%s:\n  <%s>", actual, relation, sought)
}

func shouldHavePropertyKey(actual, key string) string {
	return expecting(actual, "to have property key", strconv.Quote(key))
}

func shouldNotHavePropertyKey(actual, key string) string {
	return expecting(actual, "to not have property key", strconv.Quote(key))
}

func shouldHaveProperty(actual, key string, value any) string {
	return fmt.Sprintf("\nExpecting:\n  <%s>\nto have property with key:\n  <%s>\nand value:\n  <%s>",
		actual, strconv.Quote(key), formatLookup(value))
}

func shouldNotHaveProperty(actual, key string, value any) string {
	return fmt.Sprintf("\nExpecting:\n  <%s>\nto not have property with key:\n  <%s>\nand value:\n  <%s>",
		actual, strconv.Quote(key), formatLookup(value))
}

func shouldHaveLabel(actual, label string) string {
	return expecting(actual, "to have label", strconv.Quote(label))
}

func shouldNotHaveLabel(actual, label string) string {
	return expecting(actual, "to not have label", strconv.Quote(label))
}

func shouldHaveType(actual, relType string) string {
	return expecting(actual, "to have type", strconv.Quote(relType))
}

func shouldNotHaveType(actual, relType string) string {
	return expecting(actual, "to not have type", strconv.Quote(relType))
}

func shouldStartWithNode(actual, node string) string {
	return expecting(actual, "to start with node", node)
}

func shouldNotStartWithNode(actual, node string) string {
	return expecting(actual, "to not start with node", node)
}

func shouldEndWithNode(actual, node string) string {
	return expecting(actual, "to end with node", node)
}

func shouldNotEndWithNode(actual, node string) string {
	return expecting(actual, "to not end with node", node)
}

func shouldStartOrEndWithNode(actual, node string) string {
	return fmt.Sprintf("\nExpecting %s\nto either start or end with node:\n  <%s>", actual, node)
}

func shouldEndWithRelationship(actual, rel string) string {
	return expecting(actual, "to end with relationship", rel)
}

func shouldNotEndWithRelationship(actual, rel string) string {
	return expecting(actual, "to not end with relationship", rel)
}

func shouldHaveLength(actual string, expected, got int) string {
	return fmt.Sprintf("\nExpecting:\n  <%s>\nto have length:\n  <%d>\nbut length was:\n  <%d>", actual, expected, got)
}

func shouldBeEmpty(size int) string {
	return fmt.Sprintf("\nExpecting result to be empty but it contained %d record(s)", size)
}

const msgShouldNotBeEmpty = "\nExpecting result not to be empty"

func shouldHaveSize(expected, got int) string {
	return fmt.Sprintf("\nExpecting result to have size:\n  <%d>\nbut size was:\n  <%d>", expected, got)
}

func shouldContainColumns(actual []string, missing []string) string {
	return fmt.Sprintf("\nExpecting result with columns:\n  <[%s]>\nto contain column(s):\n  <[%s]>",
		strings.Join(actual, ", "), strings.Join(missing, ", "))
}

func shouldMatchSchema(actual string, violations []string) string {
	return fmt.Sprintf("\nExpecting properties of:\n  <%s>\nto match schema, but validation reported:\n  %s",
		actual, strings.Join(violations, "\n  "))
}
