package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/graphspec/packages/core/config"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"movies.yaml", "people.yml", "notes.txt", "graphspec.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "movies.yaml"),
		filepath.Join(dir, "people.yml"),
	}, files)
}

func TestCollectFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	files, err := collectFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFiles_Missing(t *testing.T) {
	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestIsExpectationFile(t *testing.T) {
	assert.True(t, isExpectationFile("movies.yaml"))
	assert.True(t, isExpectationFile("movies.YML"))
	assert.False(t, isExpectationFile("movies.json"))
	assert.False(t, isExpectationFile("movies"))
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("/some/dir/graphspec.yaml"))
	assert.True(t, isConfigFile(".graphspec.yaml"))
	assert.False(t, isConfigFile("movies.yaml"))
}

func TestBuildRunnerOptions_ConfigFallback(t *testing.T) {
	targetFlag = ""
	usernameFlag = ""
	passwordFlag = ""
	databaseFlag = ""
	timeoutFlag = ""
	repeatFlag = 0
	rateFlag = 0
	bailFlag = false
	tagFlag = ""
	t.Cleanup(func() { timeoutFlag = "" })

	bail := true
	cfg := &config.Config{
		Target:   "bolt://config:7687",
		Username: "neo4j",
		Password: "secret",
		Timeout:  "5s",
		Repeat:   3,
		Rate:     10,
		Bail:     &bail,
		Tag:      "smoke",
	}

	opts, err := buildRunnerOptions(cfg)
	require.NoError(t, err)

	assert.Equal(t, "bolt://config:7687", opts.Target)
	assert.Equal(t, "neo4j", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, 3, opts.Repeat)
	assert.Equal(t, 10.0, opts.Rate)
	assert.True(t, opts.Bail)
	assert.Equal(t, "smoke", opts.Tag)
}

func TestBuildRunnerOptions_FlagsWin(t *testing.T) {
	targetFlag = "bolt://flag:7687"
	timeoutFlag = "2s"
	t.Cleanup(func() {
		targetFlag = ""
		timeoutFlag = ""
	})

	cfg := &config.Config{Target: "bolt://config:7687", Timeout: "5s"}

	opts, err := buildRunnerOptions(cfg)
	require.NoError(t, err)

	assert.Equal(t, "bolt://flag:7687", opts.Target)
	assert.Equal(t, 2*time.Second, opts.Timeout)
}

func TestBuildRunnerOptions_BadTimeout(t *testing.T) {
	timeoutFlag = "soon"
	t.Cleanup(func() { timeoutFlag = "" })

	_, err := buildRunnerOptions(config.DefaultConfig())
	assert.Error(t, err)
}
