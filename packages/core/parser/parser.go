package parser

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/graphspec/packages/core/env"
)

// Op names an assertion operator in an expectation file.
type Op string

const (
	// Graph value operators, applied to a node/relationship/path column.
	OpHasLabel               Op = "has_label"
	OpDoesNotHaveLabel       Op = "does_not_have_label"
	OpHasPropertyKey         Op = "has_property_key"
	OpDoesNotHavePropertyKey Op = "does_not_have_property_key"
	OpHasProperty            Op = "has_property"
	OpDoesNotHaveProperty    Op = "does_not_have_property"
	OpHasType                Op = "has_type"
	OpDoesNotHaveType        Op = "does_not_have_type"
	OpStartsWithNodeID       Op = "starts_with_node_id"
	OpEndsWithNodeID         Op = "ends_with_node_id"
	OpHasLength              Op = "has_length"
	OpMatchesSchema          Op = "matches_schema"

	// Result-set operators, applied to the "rows" subject.
	OpCount    Op = "count"
	OpEmpty    Op = "empty"
	OpNotEmpty Op = "not_empty"
	OpColumns  Op = "columns"

	// Schema operators, applied to SHOW INDEXES / SHOW CONSTRAINTS rows.
	OpIndex      Op = "index"
	OpConstraint Op = "constraint"

	// Scalar operators, applied to a "value <path>" subject.
	OpEquals   Op = "equals"
	OpContains Op = "contains"
	OpMatches  Op = "matches"
)

// SubjectRows is the subject addressing the whole record set.
const SubjectRows = "rows"

// SubjectValuePrefix marks a subject that addresses a scalar inside the
// JSON-encoded records with a gjson path, e.g. "value 0.p.name".
const SubjectValuePrefix = "value "

// Assertion is one check inside an expectation.
type Assertion struct {
	Subject  string `yaml:"subject"`
	Op       Op     `yaml:"op"`
	Expected any    `yaml:"expected"`
	Key      string `yaml:"key"`
	Value    any    `yaml:"value"`
}

// Expectation pairs one Cypher query with its assertions.
type Expectation struct {
	Name    string         `yaml:"name"`
	Query   string         `yaml:"query"`
	Params  map[string]any `yaml:"params"`
	Tags    []string       `yaml:"tags"`
	Skip    bool           `yaml:"skip"`
	Asserts []*Assertion   `yaml:"asserts"`
}

// HasTag reports whether the expectation carries the given tag.
func (e *Expectation) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Suite is one parsed expectation file.
type Suite struct {
	Target       string         `yaml:"target"`
	Database     string         `yaml:"database"`
	Username     string         `yaml:"username"`
	Password     string         `yaml:"password"`
	Expectations []*Expectation `yaml:"expectations"`

	File string `yaml:"-"`
}

// ParseFile reads and validates one expectation file.
func ParseFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	suite.File = path

	// Targets and credentials may reference environment variables so files
	// can be committed without secrets.
	suite.Target = env.Expand(suite.Target)
	suite.Username = env.Expand(suite.Username)
	suite.Password = env.Expand(suite.Password)

	return suite, nil
}

// Parse decodes and validates an expectation document.
func Parse(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	if len(s.Expectations) == 0 {
		return fmt.Errorf("file declares no expectations")
	}
	for i, e := range s.Expectations {
		if e == nil {
			return fmt.Errorf("expectation %d is empty", i+1)
		}
		if e.Name == "" {
			return fmt.Errorf("expectation %d has no name", i+1)
		}
		if strings.TrimSpace(e.Query) == "" {
			return fmt.Errorf("expectation %q has no query", e.Name)
		}
		if len(e.Asserts) == 0 {
			return fmt.Errorf("expectation %q has no asserts", e.Name)
		}
		for j, a := range e.Asserts {
			if err := a.validate(); err != nil {
				return fmt.Errorf("expectation %q, assert %d: %w", e.Name, j+1, err)
			}
		}
	}
	return nil
}

func (a *Assertion) validate() error {
	if a == nil {
		return fmt.Errorf("empty assert")
	}
	switch a.Op {
	case OpHasLabel, OpDoesNotHaveLabel, OpHasType, OpDoesNotHaveType,
		OpStartsWithNodeID, OpEndsWithNodeID,
		OpHasPropertyKey, OpDoesNotHavePropertyKey, OpMatchesSchema:
		if a.Subject == "" || a.Subject == SubjectRows {
			return fmt.Errorf("op %q needs a column subject", a.Op)
		}
		if a.Expected == nil {
			return fmt.Errorf("op %q needs an expected value", a.Op)
		}
	case OpHasProperty, OpDoesNotHaveProperty:
		if a.Subject == "" || a.Subject == SubjectRows {
			return fmt.Errorf("op %q needs a column subject", a.Op)
		}
		if a.Key == "" {
			return fmt.Errorf("op %q needs a key", a.Op)
		}
		if a.Value == nil {
			return fmt.Errorf("op %q needs a value", a.Op)
		}
	case OpHasLength:
		if a.Subject == "" || a.Subject == SubjectRows {
			return fmt.Errorf("op %q needs a column subject", a.Op)
		}
		if _, ok := asInt(a.Expected); !ok {
			return fmt.Errorf("op %q needs an integer expected value", a.Op)
		}
	case OpCount:
		if _, ok := asInt(a.Expected); !ok {
			return fmt.Errorf("op %q needs an integer expected value", a.Op)
		}
	case OpEmpty, OpNotEmpty:
		// No arguments.
	case OpColumns:
		if len(a.ExpectedStrings()) == 0 {
			return fmt.Errorf("op %q needs a list of column names", a.Op)
		}
	case OpIndex, OpConstraint:
		if _, ok := a.Expected.(map[string]any); !ok {
			return fmt.Errorf("op %q needs a mapping with name/label/property fields", a.Op)
		}
	case OpEquals, OpContains, OpMatches:
		if !strings.HasPrefix(a.Subject, SubjectValuePrefix) {
			return fmt.Errorf("op %q needs a %q subject", a.Op, "value <path>")
		}
		if a.Expected == nil {
			return fmt.Errorf("op %q needs an expected value", a.Op)
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", a.Op)
	}
	return nil
}

// ExpectedStrings returns the expected value as a string list, accepting
// either a YAML list or a single scalar.
func (a *Assertion) ExpectedStrings() []string {
	switch v := a.Expected.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ExpectedString returns the expected value rendered as a string.
func (a *Assertion) ExpectedString() string {
	if s, ok := a.Expected.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", a.Expected)
}

// ExpectedInt returns the expected value as an int.
func (a *Assertion) ExpectedInt() (int, bool) {
	return asInt(a.Expected)
}

// ValuePath returns the gjson path of a "value <path>" subject.
func (a *Assertion) ValuePath() string {
	return strings.TrimSpace(strings.TrimPrefix(a.Subject, SubjectValuePrefix))
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
