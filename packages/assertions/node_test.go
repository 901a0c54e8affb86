package assertions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAssert_HasLabel(t *testing.T) {
	node := newNode(1, []string{"Person", "Employee"}, nil)

	t.Run("passes when label present", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasLabel("Person").HasLabel("Employee")
		requirePassed(t, rec)
	})

	t.Run("fails when label absent", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasLabel("Robot")
		requireFailure(t, rec, KindAssertion, `to have label`)
		requireFailure(t, rec, KindAssertion, `"Robot"`)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasLabel("person")
		requireFailure(t, rec, KindAssertion, `"person"`)
	})

	t.Run("fails when node is nil", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, nil).HasLabel("Person")
		requireFailure(t, rec, KindAssertion, "Expecting actual not to be null")
	})

	t.Run("rejects empty label before condition", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasLabel("")
		requireFailure(t, rec, KindInvalidArgument, "The label to look for should not be empty")
	})
}

func TestNodeAssert_DoesNotHaveLabel(t *testing.T) {
	node := newNode(1, []string{"Person"}, nil)

	t.Run("passes when label absent", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).DoesNotHaveLabel("Robot")
		requirePassed(t, rec)
	})

	t.Run("fails when label present", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).DoesNotHaveLabel("Person")
		requireFailure(t, rec, KindAssertion, "to not have label")
	})

	t.Run("fails when node is nil", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, nil).DoesNotHaveLabel("Person")
		requireFailure(t, rec, KindAssertion, "Expecting actual not to be null")
	})
}

// HasLabel and DoesNotHaveLabel are logical complements for any fixed label
// set: exactly one of them holds per candidate label.
func TestNodeAssert_LabelComplement(t *testing.T) {
	node := newNode(1, []string{"Person", "Employee"}, nil)

	for _, label := range []string{"Person", "Employee", "Robot", "person"} {
		has := &Recorder{}
		Node(has, node).HasLabel(label)
		hasNot := &Recorder{}
		Node(hasNot, node).DoesNotHaveLabel(label)

		assert.NotEqual(t, has.Failed(), hasNot.Failed(), "label %q", label)
	}
}

func TestNodeAssert_HasPropertyKey(t *testing.T) {
	node := newNode(1, nil, map[string]any{"firstName": "Homer"})

	t.Run("passes when key present", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasPropertyKey("firstName")
		requirePassed(t, rec)
	})

	t.Run("fails when key absent", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasPropertyKey("lastName")
		requireFailure(t, rec, KindAssertion, "to have property key")
	})

	t.Run("empty property bag fails", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, newNode(2, nil, nil)).HasPropertyKey("key")
		requireFailure(t, rec, KindAssertion, "to have property key")
	})

	t.Run("rejects empty key", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasPropertyKey("")
		requireFailure(t, rec, KindInvalidArgument, "The key to look for should not be empty")
	})

	t.Run("nil node checked before argument", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, nil).HasPropertyKey("")
		requireFailure(t, rec, KindAssertion, "Expecting actual not to be null")
	})
}

func TestNodeAssert_DoesNotHavePropertyKey(t *testing.T) {
	t.Run("empty property bag passes", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, newNode(1, nil, nil)).DoesNotHavePropertyKey("key")
		requirePassed(t, rec)
	})

	t.Run("fails when key present", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, newNode(1, nil, map[string]any{"key": 1})).DoesNotHavePropertyKey("key")
		requireFailure(t, rec, KindAssertion, "to not have property key")
	})
}

func TestNodeAssert_HasProperty(t *testing.T) {
	node := newNode(1, nil, map[string]any{"firstName": "Homer", "age": int64(39)})

	t.Run("passes on equal value", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasProperty("firstName", "Homer")
		requirePassed(t, rec)
	})

	t.Run("numeric widening matches int against int64", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasProperty("age", 39)
		requirePassed(t, rec)
	})

	t.Run("fails on different value", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasProperty("firstName", "Bart")
		requireFailure(t, rec, KindAssertion, "to have property with key")
	})

	t.Run("missing key reported as missing key", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasProperty("lastName", "Simpson")
		requireFailure(t, rec, KindAssertion, "to have property key")
	})

	t.Run("rejects nil value", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).HasProperty("firstName", nil)
		requireFailure(t, rec, KindInvalidArgument, "The value to look for should not be null")
	})
}

func TestNodeAssert_DoesNotHaveProperty(t *testing.T) {
	node := newNode(1, nil, map[string]any{"firstName": "Homer"})

	t.Run("passes on different value", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).DoesNotHaveProperty("firstName", "Bart")
		requirePassed(t, rec)
	})

	t.Run("passes on missing key", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).DoesNotHaveProperty("lastName", "Homer")
		requirePassed(t, rec)
	})

	t.Run("fails on matching key and value", func(t *testing.T) {
		rec := &Recorder{}
		Node(rec, node).DoesNotHaveProperty("firstName", "Homer")
		requireFailure(t, rec, KindAssertion, "to not have property with key")
	})
}

// Whenever the container has key k with some value, exactly one of
// HasProperty(k, v) and DoesNotHaveProperty(k, v) holds.
func TestNodeAssert_PropertyComplement(t *testing.T) {
	node := newNode(1, nil, map[string]any{"name": "Homer", "age": int64(39)})

	cases := []struct {
		key   string
		value any
	}{
		{"name", "Homer"},
		{"name", "Bart"},
		{"age", 39},
		{"age", 40},
	}
	for _, tc := range cases {
		has := &Recorder{}
		Node(has, node).HasProperty(tc.key, tc.value)
		hasNot := &Recorder{}
		Node(hasNot, node).DoesNotHaveProperty(tc.key, tc.value)

		require.NotEqual(t, has.Failed(), hasNot.Failed(), "key=%s value=%v", tc.key, tc.value)
	}
}

func TestNodeAssert_Chaining(t *testing.T) {
	node := newNode(1, []string{"Person"}, map[string]any{"firstName": "Homer"})

	rec := &Recorder{}
	a := Node(rec, node)
	got := a.HasLabel("Person").HasPropertyKey("firstName").HasProperty("firstName", "Homer")

	requirePassed(t, rec)
	assert.Same(t, a, got)
	assert.Same(t, node, a.Actual())
}
