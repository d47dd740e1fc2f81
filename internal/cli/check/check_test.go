package check

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/projmeta/internal/core/config"
	"github.com/nightconcept/projmeta/internal/output"
)

// setupCheckTestEnvironment creates a temporary project directory holding the
// given config files and returns its path.
func setupCheckTestEnvironment(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(tempDir, name), []byte(content), 0644)
		require.NoError(t, err, "Failed to write %s", name)
	}
	return tempDir
}

// runCheckCommand runs the check command with args and returns its stdout.
func runCheckCommand(t *testing.T, appArgs ...string) (string, error) {
	t.Helper()
	var outBuf bytes.Buffer
	app := &cli.App{
		Writer:   &outBuf,
		Commands: []*cli.Command{NewCheckCommand()},
		// Prevent os.Exit from being called by urfave/cli during tests
		ExitErrHandler: func(context *cli.Context, err error) {},
	}
	// Disable color output for consistent test results
	t.Setenv("NO_COLOR", "1")
	color.NoColor = true
	err := app.Run(append([]string{"projmeta", "check"}, appArgs...))
	return outBuf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "expected an exit error, got %v", err)
	return exitErr.ExitCode()
}

func TestCheckCommand_VersionMismatch(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo", "version": "1.0.0"}`,
		config.CargoTomlName:   "[package]\nname = \"demo\"\nversion = \"1.0.1\"\n",
	})

	output, err := runCheckCommand(t, "--dir", dir)
	require.NoError(t, err, "discrepancies are reported, not failed on")
	assert.Contains(t, output, "Difference found between first config file '"+filepath.Join(dir, "package.json")+"'")
	assert.Contains(t, output, filepath.Join(dir, "Cargo.toml"))
	assert.Contains(t, output, "version: 1.0.0 vs 1.0.1 (newer)")
	assert.NotContains(t, output, "name:")
	assert.Contains(t, output, "1 discrepancies found.")
}

func TestCheckCommand_Strict(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.DenoJSONName:      `{"name": "demo", "version": "1.0.0"}`,
		config.PyprojectTomlName: "[project]\nname = \"demo-py\"\nversion = \"1.0.0\"\n",
	})

	_, err := runCheckCommand(t, "--dir", dir, "--strict")
	require.Error(t, err)
	assert.Equal(t, ExitDiscrepancies, exitCode(t, err))
}

func TestCheckCommand_Consistent(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo", "version": "1.0.0"}`,
		config.DenoJSONName:    `{"name": "demo", "version": "1.0.0"}`,
	})

	output, err := runCheckCommand(t, "--dir", dir, "--strict")
	require.NoError(t, err)
	assert.Contains(t, output, "All 2 config files are consistent.")
}

func TestCheckCommand_SingleFile(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.CargoTomlName: "[package]\nname = \"demo\"\n",
	})

	output, err := runCheckCommand(t, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, output, "nothing to compare")
}

func TestCheckCommand_NoFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := runCheckCommand(t, "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "no configuration files found in "+dir)
}

func TestCheckCommand_ParseError(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo"`,
	})

	_, err := runCheckCommand(t, "--dir", dir)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "failed to parse JSON: "+filepath.Join(dir, "package.json"))
}

func TestCheckCommand_JSONOutput(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo", "version": "1.0.0"}`,
		config.CargoTomlName:   "[package]\nname = \"other\"\nversion = \"1.0.0\"\n",
	})

	output, err := runCheckCommand(t, "--dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, output, `"field": "name"`)
	assert.Contains(t, output, `"base": "demo"`)
	assert.Contains(t, output, `"other": "other"`)
}

func TestCheckCommand_LogsDiscrepanciesAtDebugLevel(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo", "version": "1.0.0"}`,
		config.DenoJSONName:    `{"name": "demo-deno", "version": "1.0.0"}`,
	})

	var logBuf bytes.Buffer
	previous := output.Logger
	output.Logger = log.NewWithOptions(&logBuf, log.Options{Level: log.DebugLevel})
	t.Cleanup(func() { output.Logger = previous })

	stdout, err := runCheckCommand(t, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: demo vs demo-deno")
	assert.NotContains(t, stdout, "config files disagree", "log lines stay off stdout")
	assert.Contains(t, logBuf.String(), "config files disagree")
	assert.Contains(t, logBuf.String(), "field=name")
}

func TestCheckCommand_DenoTasksDoNotMatchScripts(t *testing.T) {
	dir := setupCheckTestEnvironment(t, map[string]string{
		config.PackageJSONName: `{"name": "demo", "version": "1.0.0", "scripts": {"dev": "vite"}}`,
		config.DenoJSONName:    `{"name": "demo", "version": "1.0.0", "tasks": {"dev": "vite"}}`,
	})

	stdout, err := runCheckCommand(t, "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "scripts: {dev: vite} vs <none>")
	assert.Contains(t, stdout, "1 discrepancies found.")
}
