package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/graphspec/packages/core/runner"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRun(file string) *runner.RunResult {
	return &runner.RunResult{
		File:    file,
		Passed:  2,
		Failed:  1,
		Skipped: 1,
		Results: []*runner.ExpectationResult{
			{Name: "keanu exists", Passed: true, Duration: 10 * time.Millisecond},
			{Name: "movie count", Passed: true, Duration: 5 * time.Millisecond},
			{Name: "director label", Duration: 4 * time.Millisecond},
			{Name: "slow query", Skipped: true},
		},
		Duration: 30 * time.Millisecond,
	}
}

func TestRecordAndRecentRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, sampleRun("movies.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := store.RecentRuns(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "movies.yaml", runs[0].File)
	assert.Equal(t, 2, runs[0].Passed)
	assert.Equal(t, 1, runs[0].Failed)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, 30*time.Millisecond, runs[0].Duration)
}

func TestRecentRuns_FileFilter(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, sampleRun("movies.yaml"))
	require.NoError(t, err)
	_, err = store.Record(ctx, sampleRun("people.yaml"))
	require.NoError(t, err)

	runs, err := store.RecentRuns(ctx, "people.yaml", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "people.yaml", runs[0].File)

	all, err := store.RecentRuns(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestExpectations(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run := sampleRun("movies.yaml")
	run.Results[2].Error = errors.New("query failed: timeout")
	id, err := store.Record(ctx, run)
	require.NoError(t, err)

	exps, err := store.Expectations(ctx, id)
	require.NoError(t, err)
	require.Len(t, exps, 4)

	assert.Equal(t, "keanu exists", exps[0].Name)
	assert.True(t, exps[0].Passed)
	assert.Equal(t, "query failed: timeout", exps[2].Error)
	assert.True(t, exps[3].Skipped)
}

func TestPrune(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := store.Record(ctx, sampleRun("movies.yaml"))
		require.NoError(t, err)
		ids = append(ids, id)
		// Spread started_at so ordering is deterministic
		_, err = store.db.ExecContext(ctx, `UPDATE runs SET started_at = ? WHERE id = ?`, 1000+i, id)
		require.NoError(t, err)
	}

	require.NoError(t, store.Prune(ctx, 1))

	runs, err := store.RecentRuns(ctx, "movies.yaml", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, ids[2], runs[0].ID)

	exps, err := store.Expectations(ctx, ids[0])
	require.NoError(t, err)
	assert.Empty(t, exps)
}

func TestRecentRuns_Empty(t *testing.T) {
	store := openStore(t)

	runs, err := store.RecentRuns(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
