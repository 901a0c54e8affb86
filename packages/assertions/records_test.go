package assertions

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

func record(keys []string, values ...any) *db.Record {
	return &db.Record{Keys: keys, Values: values}
}

func TestRecordsAssert_Emptiness(t *testing.T) {
	var empty []*db.Record
	full := []*db.Record{record([]string{"n"}, 1)}

	t.Run("nil slice is empty", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, empty).IsEmpty()
		requirePassed(t, rec)
	})

	t.Run("IsEmpty fails on records", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, full).IsEmpty()
		requireFailure(t, rec, KindAssertion, "to be empty")
	})

	t.Run("IsNotEmpty passes on records", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, full).IsNotEmpty()
		requirePassed(t, rec)
	})

	t.Run("IsNotEmpty fails on empty result", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, empty).IsNotEmpty()
		requireFailure(t, rec, KindAssertion, "not to be empty")
	})
}

func TestRecordsAssert_HasSize(t *testing.T) {
	recs := []*db.Record{
		record([]string{"n"}, 1),
		record([]string{"n"}, 2),
	}

	t.Run("passes on exact size", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).HasSize(2)
		requirePassed(t, rec)
	})

	t.Run("fails on wrong size", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).HasSize(3)
		requireFailure(t, rec, KindAssertion, "to have size")
	})

	t.Run("rejects negative size", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).HasSize(-1)
		requireFailure(t, rec, KindInvalidArgument, "should not be negative")
	})
}

func TestRecordsAssert_ContainsColumns(t *testing.T) {
	recs := []*db.Record{
		record([]string{"name", "age"}, "Homer", 39),
		record([]string{"name", "age"}, "Marge", 36),
	}

	t.Run("passes when all columns present", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).ContainsColumns("name", "age")
		requirePassed(t, rec)
	})

	t.Run("fails on missing column", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).ContainsColumns("name", "city")
		requireFailure(t, rec, KindAssertion, "to contain column(s)")
		requireFailure(t, rec, KindAssertion, "city")
	})

	t.Run("rejects empty column list", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, recs).ContainsColumns()
		requireFailure(t, rec, KindInvalidArgument, "The column names to look for should not be empty")
	})

	t.Run("empty result passes vacuously", func(t *testing.T) {
		rec := &Recorder{}
		Records(rec, nil).ContainsColumns("name")
		requirePassed(t, rec)
	})
}
