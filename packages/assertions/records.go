package assertions

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// RecordsAssert wraps a collected record set, as returned by the driver's
// Collect helpers. A nil slice is treated as an empty result, not as an
// absent one, matching how the driver reports empty results.
type RecordsAssert struct {
	t      TestingT
	actual []*db.Record
}

// Records returns an assertion wrapper for a record set.
func Records(t TestingT, actual []*db.Record) *RecordsAssert {
	return &RecordsAssert{t: t, actual: actual}
}

// Actual returns the wrapped record set.
func (a *RecordsAssert) Actual() []*db.Record {
	return a.actual
}

// IsEmpty verifies the result contains no records.
func (a *RecordsAssert) IsEmpty() *RecordsAssert {
	helper(a.t)
	if len(a.actual) != 0 {
		fail(a.t, KindAssertion, shouldBeEmpty(len(a.actual)))
	}
	return a
}

// IsNotEmpty verifies the result contains at least one record.
func (a *RecordsAssert) IsNotEmpty() *RecordsAssert {
	helper(a.t)
	if len(a.actual) == 0 {
		fail(a.t, KindAssertion, msgShouldNotBeEmpty)
	}
	return a
}

// HasSize verifies the result contains exactly the given number of records.
func (a *RecordsAssert) HasSize(size int) *RecordsAssert {
	helper(a.t)
	if size < 0 {
		fail(a.t, KindInvalidArgument, msgNegativeLen)
		return a
	}
	if len(a.actual) != size {
		fail(a.t, KindAssertion, shouldHaveSize(size, len(a.actual)))
	}
	return a
}

// ContainsColumns verifies every record carries all the given column names.
func (a *RecordsAssert) ContainsColumns(columns ...string) *RecordsAssert {
	helper(a.t)
	if len(columns) == 0 {
		fail(a.t, KindInvalidArgument, msgColumnsArg)
		return a
	}
	for _, c := range columns {
		if c == "" {
			fail(a.t, KindInvalidArgument, msgColumnsArg)
			return a
		}
	}
	for _, rec := range a.actual {
		var missing []string
		for _, c := range columns {
			if !containsString(rec.Keys, c) {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			fail(a.t, KindAssertion, shouldContainColumns(rec.Keys, missing))
			return a
		}
	}
	return a
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
