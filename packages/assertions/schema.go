package assertions

import (
	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// IndexAssert wraps an index definition parsed from SHOW INDEXES.
type IndexAssert struct {
	t      TestingT
	actual *graph.IndexDefinition
}

// Index returns an assertion wrapper for an index definition.
func Index(t TestingT, actual *graph.IndexDefinition) *IndexAssert {
	return &IndexAssert{t: t, actual: actual}
}

// Actual returns the wrapped index definition.
func (a *IndexAssert) Actual() *graph.IndexDefinition {
	return a.actual
}

func (a *IndexAssert) ok() bool {
	helper(a.t)
	if a.actual == nil {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasLabel verifies the index covers the given label.
func (a *IndexAssert) HasLabel(label string) *IndexAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if !a.actual.HasLabel(label) {
		fail(a.t, KindAssertion, shouldHaveLabel(a.actual.String(), label))
	}
	return a
}

// DoesNotHaveLabel verifies the index does not cover the given label.
func (a *IndexAssert) DoesNotHaveLabel(label string) *IndexAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if a.actual.HasLabel(label) {
		fail(a.t, KindAssertion, shouldNotHaveLabel(a.actual.String(), label))
	}
	return a
}

// HasPropertyKey verifies the index covers the given property key.
func (a *IndexAssert) HasPropertyKey(key string) *IndexAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if key == "" {
		fail(a.t, KindInvalidArgument, msgKeyArg)
		return a
	}
	if !a.actual.HasPropertyKey(key) {
		fail(a.t, KindAssertion, shouldHavePropertyKey(a.actual.String(), key))
	}
	return a
}

// DoesNotHavePropertyKey verifies the index does not cover the given
// property key.
func (a *IndexAssert) DoesNotHavePropertyKey(key string) *IndexAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if key == "" {
		fail(a.t, KindInvalidArgument, msgKeyArg)
		return a
	}
	if a.actual.HasPropertyKey(key) {
		fail(a.t, KindAssertion, shouldNotHavePropertyKey(a.actual.String(), key))
	}
	return a
}

// ConstraintAssert wraps a constraint definition parsed from SHOW
// CONSTRAINTS.
type ConstraintAssert struct {
	t      TestingT
	actual *graph.ConstraintDefinition
}

// Constraint returns an assertion wrapper for a constraint definition.
func Constraint(t TestingT, actual *graph.ConstraintDefinition) *ConstraintAssert {
	return &ConstraintAssert{t: t, actual: actual}
}

// Actual returns the wrapped constraint definition.
func (a *ConstraintAssert) Actual() *graph.ConstraintDefinition {
	return a.actual
}

func (a *ConstraintAssert) ok() bool {
	helper(a.t)
	if a.actual == nil {
		fail(a.t, KindAssertion, msgActualNotNull)
		return false
	}
	return true
}

// HasLabel verifies the constraint covers the given label.
func (a *ConstraintAssert) HasLabel(label string) *ConstraintAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if !a.actual.HasLabel(label) {
		fail(a.t, KindAssertion, shouldHaveLabel(a.actual.String(), label))
	}
	return a
}

// DoesNotHaveLabel verifies the constraint does not cover the given label.
func (a *ConstraintAssert) DoesNotHaveLabel(label string) *ConstraintAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if label == "" {
		fail(a.t, KindInvalidArgument, msgLabelArg)
		return a
	}
	if a.actual.HasLabel(label) {
		fail(a.t, KindAssertion, shouldNotHaveLabel(a.actual.String(), label))
	}
	return a
}

// HasType verifies the constraint is of the given type, e.g. UNIQUENESS.
func (a *ConstraintAssert) HasType(constraintType string) *ConstraintAssert {
	helper(a.t)
	if !a.ok() {
		return a
	}
	if constraintType == "" {
		fail(a.t, KindInvalidArgument, msgConstraintTypeArg)
		return a
	}
	if a.actual.Type != constraintType {
		fail(a.t, KindAssertion, shouldHaveType(a.actual.String(), constraintType))
	}
	return a
}
