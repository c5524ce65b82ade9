// Package cli — cli_test.go runs the command tree in-process with
// captured stdout/stderr.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/castdemo/internal/model"
)

const demoOutput = "Item 2. Sample codes for how CppCast's work.\n" +
	"Psw name = [Widget1]; type = [NotDefault]\n" +
	"Psw name = [Widget2]; type = [Special]\n"

// execute runs the root command with args and returns stdout, stderr
// and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestRoot_NoArgs verifies the end-to-end output of the bare command.
func TestRoot_NoArgs(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, demoOutput, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, model.ExitSuccess, ExitCodeOf(err))
}

func TestDemo_Subcommand(t *testing.T) {
	stdout, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, demoOutput, stdout)
}

func TestDemo_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "demo", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, demoOutput, stdout)
	assert.Contains(t, stderr, "[verbose] Holding \"Widget2\"")
}

func TestDemo_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--json")
	require.NoError(t, err)

	var got demoResultJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{
		"Item 2. Sample codes for how CppCast's work.",
		"Psw name = [Widget1]; type = [NotDefault]",
		"Psw name = [Widget2]; type = [Special]",
	}, got.Lines)
	require.Len(t, got.Steps, 2)
	assert.True(t, got.Steps[1].OK)
}

func TestNarrow(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode model.ExitCode
	}{
		{
			name:    "special widget with type",
			args:    []string{"narrow", "Widget2", "--type", "Special"},
			wantOut: "Psw name = [Widget2]; type = [Special]\n",
		},
		{
			name:    "special widget default type",
			args:    []string{"narrow", "X"},
			wantOut: "Psw name = [X]; type = [Default]\n",
		},
		{
			name:     "plain widget fails the check",
			args:     []string{"narrow", "Widget3", "--kind", "widget"},
			wantCode: model.ExitBadCast,
		},
		{
			name:     "unknown kind",
			args:     []string{"narrow", "W", "--kind", "base"},
			wantCode: model.ExitGeneralError,
		},
		{
			name:     "type on plain widget",
			args:     []string{"narrow", "W", "--kind", "widget", "--type", "T"},
			wantCode: model.ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			assert.Equal(t, tt.wantCode, ExitCodeOf(err))
			assert.Equal(t, tt.wantOut, stdout)
		})
	}
}

func TestNarrow_JSON(t *testing.T) {
	stdout, _, err := execute(t, "narrow", "Widget2", "--type", "Special", "--json")
	require.NoError(t, err)

	var got narrowResultJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, narrowResultJSON{Name: "Widget2", Held: "special", Type: "Special"}, got)
}

const scenarioYAML = `name: mixed
cases:
  - {name: Widget1, kind: special, type: NotDefault, conversion: readonly}
  - {name: Widget3, kind: widget, conversion: narrow}
`

func TestRun_Scenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenarioYAML)

	stdout, stderr, err := execute(t, "run", "--file", path)
	require.Error(t, err)
	assert.Equal(t, model.ExitBadCast, ExitCodeOf(err))
	assert.Equal(t, "1 of 2 conversions failed", err.Error())

	assert.Equal(t, "Psw name = [Widget1]; type = [NotDefault]\n", stdout)
	assert.Contains(t, stderr, `case "Widget3" (narrow widget): bad cast`)
}

func TestRun_ScenarioAllPass(t *testing.T) {
	path := writeFile(t, "scenario.jsonc", `{
  // both conversions succeed
  "cases": [
    {"name": "Widget1", "kind": "special", "type": "NotDefault", "conversion": "readonly"},
    {"name": "Widget2", "kind": "special", "type": "Special", "conversion": "narrow"}
  ]
}`)

	stdout, _, err := execute(t, "run", "-f", path)
	require.NoError(t, err)
	assert.Equal(t,
		"Psw name = [Widget1]; type = [NotDefault]\nPsw name = [Widget2]; type = [Special]\n",
		stdout)
}

func TestRun_ScenarioJSON(t *testing.T) {
	path := writeFile(t, "scenario.yaml", scenarioYAML)

	stdout, _, err := execute(t, "run", "--file", path, "--json")
	assert.Equal(t, model.ExitBadCast, ExitCodeOf(err))

	var got scenarioResultJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "mixed", got.Name)
	assert.Equal(t, 1, got.Failed)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "Psw name = [Widget1]; type = [NotDefault]", got.Results[0].Output)
}

func TestRun_ScenarioErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, _, err := execute(t, "run", "--file", missing)
	assert.Equal(t, model.ExitScenarioNotFound, ExitCodeOf(err))

	invalid := writeFile(t, "empty.json", `{"cases": []}`)
	_, _, err = execute(t, "run", "--file", invalid)
	assert.Equal(t, model.ExitInvalidScenario, ExitCodeOf(err))

	_, _, err = execute(t, "run")
	assert.Equal(t, model.ExitGeneralError, ExitCodeOf(err), "--file is required")
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, model.ExitSuccess, ExitCodeOf(nil))
	assert.Equal(t, model.ExitGeneralError, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, model.ExitBadCast, ExitCodeOf(model.NewCLIError(model.ExitBadCast, "x")))
}

func TestPrintError(t *testing.T) {
	t.Cleanup(func() { jsonOutput = false })

	var buf bytes.Buffer
	jsonOutput = false
	printError(&buf, "cannot narrow", errors.New("bad cast"))
	assert.Equal(t, "Error: cannot narrow: bad cast\n", buf.String())

	buf.Reset()
	jsonOutput = true
	printError(&buf, "cannot narrow", errors.New("bad cast"))

	var got map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "cannot narrow", got["error"]["message"])
	assert.Equal(t, "bad cast", got["error"]["detail"])
}
