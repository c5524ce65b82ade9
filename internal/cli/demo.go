// Package cli — demo.go implements "castdemo demo", which is also the
// default action of the root command.
package cli

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/castdemo/internal/demo"
)

// NewDemoCommand creates the "demo" cobra command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in conversion demo",
		Long: `Print the banner, then convert two special widgets:

  Widget1 is passed through a read-only view and recovered with an
  explicit conversion; Widget2 is held as a general widget and narrowed
  back to a special widget after a run-time check.

Examples:
  castdemo demo
  castdemo demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// demoResultJSON is the --json output of the demo.
type demoResultJSON struct {
	Lines []string    `json:"lines"`
	Steps []demo.Step `json:"steps"`
}

func runDemo(out io.Writer) error {
	if !IsJSONOutput() {
		_, err := demo.Run(out, demo.WithLogger(VerboseLog))
		return err
	}

	// In JSON mode the printed lines are collected and embedded in the result.
	var buf bytes.Buffer
	steps, err := demo.Run(&buf, demo.WithLogger(VerboseLog))
	if err != nil {
		return err
	}
	return printJSON(out, demoResultJSON{
		Lines: strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"),
		Steps: steps,
	})
}
