package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "first-win.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "first-win", s.Name)
	assert.Equal(t, "classic", s.Mode)
	require.Len(t, s.Steps, 1)
	require.NotNil(t, s.Steps[0].Tap)
	assert.Equal(t, 2, s.Steps[0].Tap.X)

	assert.FileExists(t, s.LevelPath())
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenario(t, "level: l.yaml\nmode: classic\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_MissingLevel(t *testing.T) {
	path := writeScenario(t, "name: x\nmode: classic\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level is required")
}

func TestLoadScenario_AmbiguousStep(t *testing.T) {
	path := writeScenario(t, `name: x
level: l.yaml
mode: classic
steps:
  - tap: {x: 1, y: 1}
    advance: true
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestLoadScenario_EmptyStep(t *testing.T) {
	path := writeScenario(t, "name: x\nlevel: l.yaml\nmode: classic\nsteps:\n  - {}\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestLoadScenario_FileMissing(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
