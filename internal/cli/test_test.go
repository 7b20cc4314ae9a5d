package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenariosDir = "../harness/testdata/scenarios"

func TestTestCommand_AllPass(t *testing.T) {
	out, err := executeCommand(t, "test", scenariosDir)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  advent_2019")
	assert.Contains(t, out, "PASS  holy_week_2008")
	assert.NotContains(t, out, "FAIL")
}

func TestTestCommand_Filter(t *testing.T) {
	out, err := executeCommand(t, "test", scenariosDir, "--filter", "advent_*")
	require.NoError(t, err)
	assert.Contains(t, out, "advent_2019")
	assert.NotContains(t, out, "holy_week_2008")
	assert.Contains(t, out, "1/1 scenarios passed")
}

func TestTestCommand_FilterNoMatch(t *testing.T) {
	_, err := executeCommand(t, "test", scenariosDir, "--filter", "nope_*")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_EmptyDir(t *testing.T) {
	_, err := executeCommand(t, "test", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommand_FailingScenario(t *testing.T) {
	dir := t.TempDir()
	scenario := `
name: wrong_easter
year: 2018
expect:
  - date: 2018-04-01
    celebration: ["tempora:dom_palmarum:1"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(scenario), 0o644))

	out, err := executeCommand(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL  wrong_easter")
	assert.Contains(t, out, "0/1 scenarios passed")
}

func TestTestCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "test", scenariosDir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"passed":`)
	assert.Contains(t, out, `"failed":0`)
	assert.Contains(t, out, `"name":"november_2008"`)
}
