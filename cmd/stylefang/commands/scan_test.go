package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/stylefang/cmd/stylefang/commands"
	"github.com/Sumatoshi-tech/stylefang/pkg/checkers/check"
	"github.com/Sumatoshi-tech/stylefang/pkg/config"
	"github.com/Sumatoshi-tech/stylefang/pkg/report"
)

const dirtyInput = `{
  "identifiers": [
    {"name": "my_property", "role": "property", "file": "model.py", "line": 3}
  ],
  "methods": [
    {"name": "validate", "class": "Widget", "file": "model.py", "line": 9}
  ]
}`

const cleanInput = `{
  "identifiers": [
    {"name": "EnColor", "role": "enum", "file": "model.py", "line": 1}
  ]
}`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runScan(t *testing.T, args ...string) (string, error) {
	t.Helper()

	output := filepath.Join(t.TempDir(), "report.out")

	cmd := commands.NewScanCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs(append(args, "-o", output))

	err := cmd.Execute()

	data, readErr := os.ReadFile(output)
	if readErr != nil {
		return "", err
	}

	return string(data), err
}

func TestScanReportsViolations(t *testing.T) {
	input := writeInput(t, "stream.json", dirtyInput)

	out, err := runScan(t, input, "-f", "json")

	require.ErrorIs(t, err, commands.ErrViolationsFound)

	var result report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Violations, 2)
	assert.Equal(t, "naming/property-casing", result.Violations[0].Rule)
	assert.Equal(t, "methodtype/param-count", result.Violations[1].Rule)
	assert.Equal(t, 1, result.Summary.ScannedIdentifiers)
	assert.Equal(t, 1, result.Summary.ScannedMethods)
}

func TestScanCleanInput(t *testing.T) {
	input := writeInput(t, "stream.json", cleanInput)

	out, err := runScan(t, input, "-f", "compact", "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "0 violations")
}

func TestScanYAMLInput(t *testing.T) {
	input := writeInput(t, "stream.yaml", `
identifiers:
  - name: my_property
    role: property
`)

	_, err := runScan(t, input, "-f", "json")

	require.ErrorIs(t, err, commands.ErrViolationsFound)
}

func TestScanRejectsSchemaViolations(t *testing.T) {
	input := writeInput(t, "stream.json", `{"identifiers": [{"name": "x"}]}`)

	_, err := runScan(t, input, "-f", "json")

	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrViolationsFound)
}

func TestScanNoSchemaSkipsValidation(t *testing.T) {
	// Without the role the identifier fails the unknown-role rule instead of
	// the schema gate.
	input := writeInput(t, "stream.json", `{"identifiers": [{"name": "x"}]}`)

	out, err := runScan(t, input, "-f", "json", "--no-schema")

	require.ErrorIs(t, err, commands.ErrViolationsFound)
	assert.Contains(t, out, "naming/unknown-role")
}

func TestScanUnknownChecker(t *testing.T) {
	input := writeInput(t, "stream.json", cleanInput)

	_, err := runScan(t, input, "-k", "imaginary")

	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrUnknownChecker)
}

func TestScanSelectsCheckers(t *testing.T) {
	input := writeInput(t, "stream.json", dirtyInput)

	out, err := runScan(t, input, "-f", "json", "-k", "naming")

	require.ErrorIs(t, err, commands.ErrViolationsFound)

	var result report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "naming/property-casing", result.Violations[0].Rule)
}

func TestScanMissingInputFile(t *testing.T) {
	_, err := runScan(t, filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrViolationsFound)
}

func TestNewRegistryRegistersAllCheckers(t *testing.T) {
	cfg := &config.Config{
		Rules: config.RulesConfig{MaxLineLength: config.DefaultMaxLineLength},
	}

	registry := commands.NewRegistry(cfg)

	assert.Equal(t, []string{"format", "methodtype", "naming"}, registry.Names())
}
