package assertions

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

// TestingT is the minimal testing surface the wrappers report through. It is
// satisfied by *testing.T and by the Recorder used by the expectation runner.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// FailureKind classifies what went wrong inside a predicate call.
type FailureKind int

const (
	// KindAssertion means the condition under test did not hold.
	KindAssertion FailureKind = iota
	// KindInvalidArgument means the caller passed an absent lookup argument.
	KindInvalidArgument
	// KindInvalidState means the wrapped value itself is missing a required
	// field, e.g. a relationship without a start node.
	KindInvalidState
)

func (k FailureKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindInvalidState:
		return "invalid state"
	default:
		return "assertion failed"
	}
}

// Failure is one recorded predicate failure.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Recorder is a TestingT that collects failures instead of aborting, so the
// expectation runner (and tests of the wrappers themselves) can inspect what
// an assertion chain reported.
type Recorder struct {
	Failures []Failure
}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Failures = append(r.Failures, Failure{Kind: KindAssertion, Message: fmt.Sprintf(format, args...)})
}

// FailNow is a no-op; the Recorder keeps going so a single chain can report
// everything it finds.
func (r *Recorder) FailNow() {}

// Failed reports whether any failure was recorded.
func (r *Recorder) Failed() bool {
	return len(r.Failures) > 0
}

func (r *Recorder) record(f Failure) {
	r.Failures = append(r.Failures, f)
}

// fail reports a failure through t. With *testing.T this stops the test, so
// the rest of the chain never runs, matching throw-on-failure semantics.
func fail(t TestingT, kind FailureKind, message string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if r, ok := t.(*Recorder); ok {
		r.record(Failure{Kind: kind, Message: message})
		return
	}
	t.Errorf("%s", message)
	t.FailNow()
}

func helper(t TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// Assert maps a runtime value to the matching wrapper. It is the dispatch
// entry point for callers that hold a value of unknown graph type; typed
// constructors (Node, Relationship, ...) are preferred in test code.
func Assert(t TestingT, value any) any {
	helper(t)
	switch v := value.(type) {
	case dbtype.Node:
		return Node(t, &v)
	case *dbtype.Node:
		return Node(t, v)
	case dbtype.Relationship:
		return Relationship(t, &v)
	case *dbtype.Relationship:
		return Relationship(t, v)
	case dbtype.Path:
		return Path(t, &v)
	case *dbtype.Path:
		return Path(t, v)
	case []*db.Record:
		return Records(t, v)
	case graph.IndexDefinition:
		return Index(t, &v)
	case *graph.IndexDefinition:
		return Index(t, v)
	case graph.ConstraintDefinition:
		return Constraint(t, &v)
	case *graph.ConstraintDefinition:
		return Constraint(t, v)
	case dbtype.Entity:
		return Entity(t, v)
	case nil:
		fail(t, KindInvalidArgument, "The value to assert on should not be null")
		return nil
	default:
		fail(t, KindInvalidArgument, fmt.Sprintf("no assertion wrapper for type %T", value))
		return nil
	}
}
