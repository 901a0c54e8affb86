package assertions

import (
	"testing"

	"github.com/abdul-hamid-achik/graphspec/packages/graph"
)

func TestIndexAssert(t *testing.T) {
	idx := &graph.IndexDefinition{
		Name:       "person_name",
		Type:       "RANGE",
		EntityType: "NODE",
		Labels:     []string{"Person"},
		Properties: []string{"name"},
	}

	t.Run("label checks", func(t *testing.T) {
		rec := &Recorder{}
		Index(rec, idx).HasLabel("Person").DoesNotHaveLabel("Movie")
		requirePassed(t, rec)

		rec = &Recorder{}
		Index(rec, idx).HasLabel("Movie")
		requireFailure(t, rec, KindAssertion, "to have label")

		rec = &Recorder{}
		Index(rec, idx).DoesNotHaveLabel("Person")
		requireFailure(t, rec, KindAssertion, "to not have label")
	})

	t.Run("property key checks", func(t *testing.T) {
		rec := &Recorder{}
		Index(rec, idx).HasPropertyKey("name").DoesNotHavePropertyKey("age")
		requirePassed(t, rec)

		rec = &Recorder{}
		Index(rec, idx).HasPropertyKey("age")
		requireFailure(t, rec, KindAssertion, "to have property key")
	})

	t.Run("nil definition", func(t *testing.T) {
		rec := &Recorder{}
		Index(rec, nil).HasLabel("Person")
		requireFailure(t, rec, KindAssertion, "Expecting actual not to be null")
	})

	t.Run("empty label argument", func(t *testing.T) {
		rec := &Recorder{}
		Index(rec, idx).HasLabel("")
		requireFailure(t, rec, KindInvalidArgument, "The label to look for should not be empty")
	})
}

func TestConstraintAssert(t *testing.T) {
	c := &graph.ConstraintDefinition{
		Name:       "person_name_unique",
		Type:       "UNIQUENESS",
		EntityType: "NODE",
		Labels:     []string{"Person"},
		Properties: []string{"name"},
	}

	t.Run("label and type checks", func(t *testing.T) {
		rec := &Recorder{}
		Constraint(rec, c).HasLabel("Person").DoesNotHaveLabel("Movie").HasType("UNIQUENESS")
		requirePassed(t, rec)

		rec = &Recorder{}
		Constraint(rec, c).HasType("NODE_KEY")
		requireFailure(t, rec, KindAssertion, "to have type")
	})

	t.Run("empty type argument", func(t *testing.T) {
		rec := &Recorder{}
		Constraint(rec, c).HasType("")
		requireFailure(t, rec, KindInvalidArgument, "The constraint type to look for should not be empty")
	})

	t.Run("nil definition", func(t *testing.T) {
		rec := &Recorder{}
		Constraint(rec, nil).HasType("UNIQUENESS")
		requireFailure(t, rec, KindAssertion, "Expecting actual not to be null")
	})
}
