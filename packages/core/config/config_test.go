package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, "graphspec.yaml", `
target: bolt://localhost:7687
database: movies
username: neo4j
output: json
timeout: 10s
repeat: 5
rate: 50
bail: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "bolt://localhost:7687", cfg.Target)
	assert.Equal(t, "movies", cfg.Database)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 5, cfg.Repeat)
	assert.Equal(t, 50.0, cfg.Rate)
	assert.True(t, cfg.GetBail())

	timeout, err := cfg.GetTimeout()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, timeout)
}

func TestLoadConfig_ExpandsCredentials(t *testing.T) {
	t.Setenv("GRAPHSPEC_TEST_PW", "hunter2")

	path := writeConfig(t, "graphspec.yaml", `
target: bolt://localhost:7687
password: ${GRAPHSPEC_TEST_PW}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestFindAndLoadConfig_Defaults(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "neo4j", cfg.Username)
	assert.Equal(t, "console", cfg.Output)
	assert.True(t, cfg.GetHistory())
	assert.False(t, cfg.GetBail())
}

func TestFindAndLoadConfig_HiddenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".graphspec.yaml"), []byte("database: movies\n"), 0o644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "movies", cfg.Database)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Target = "bolt://base:7687"
	base.Repeat = 2

	bail := true
	merged := base.Merge(&Config{
		Target: "bolt://override:7687",
		Bail:   &bail,
	})

	assert.Equal(t, "bolt://override:7687", merged.Target)
	assert.Equal(t, 2, merged.Repeat)
	assert.True(t, merged.GetBail())

	// Base is untouched
	assert.Equal(t, "bolt://base:7687", base.Target)
	assert.False(t, base.GetBail())
}

func TestGetTimeout_Invalid(t *testing.T) {
	cfg := &Config{Timeout: "soon"}
	_, err := cfg.GetTimeout()
	assert.Error(t, err)
}
