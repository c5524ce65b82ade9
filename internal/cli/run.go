// Package cli — run.go implements "castdemo run", which executes the
// conversions listed in a scenario file.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/castdemo/internal/model"
	"github.com/shinji-kodama/castdemo/internal/scenario"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	file string // --file: scenario file path
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run --file <scenario>",
		Short: "Execute the conversions listed in a scenario file",
		Long: `Load a JSONC or YAML scenario file and apply each listed conversion.

Successful conversions print one "Psw name = [...]; type = [...]" line.
Failed conversions are reported on stderr and make the command exit with
code 2 after all cases have run.

Examples:
  castdemo run --file scenario.jsonc
  castdemo run --file scenario.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), cmd.ErrOrStderr(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Scenario file (.json, .jsonc, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// scenarioResultJSON is the --json output of the run command.
type scenarioResultJSON struct {
	Name    string            `json:"name,omitempty"`
	Failed  int               `json:"failed"`
	Results []scenario.Result `json:"results"`
}

func runScenario(out, errOut io.Writer, flags *runFlags) error {
	f, err := scenario.Load(flags.file)
	if err != nil {
		return err
	}
	if err := scenario.Validate(f); err != nil {
		return err
	}
	VerboseLog("Loaded scenario %q with %d cases", f.Name, len(f.Cases))

	// Text mode prints successes as they happen; JSON mode reports them
	// in the result document instead.
	lineOut := out
	if IsJSONOutput() {
		lineOut = io.Discard
	}
	results, err := scenario.Execute(lineOut, f)
	if err != nil {
		return err
	}

	failed := scenario.Failed(results)
	if IsJSONOutput() {
		if err := printJSON(out, scenarioResultJSON{Name: f.Name, Failed: failed, Results: results}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if !r.OK {
				fmt.Fprintf(errOut, "case %q (%s %s): %s\n", r.Case, r.Conversion, r.Kind, r.Err)
			}
		}
	}

	if failed > 0 {
		return model.NewCLIError(model.ExitBadCast,
			fmt.Sprintf("%d of %d conversions failed", failed, len(results)))
	}
	return nil
}
