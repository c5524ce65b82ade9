// Package cli — narrow.go implements "castdemo narrow", a single
// checked narrowing driven by command-line flags.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/castdemo/internal/cast"
	"github.com/shinji-kodama/castdemo/internal/model"
	"github.com/shinji-kodama/castdemo/internal/report"
)

type narrowFlags struct {
	kind string // --kind: widget or special
	typ  string // --type: special widget type
}

// NewNarrowCommand creates the "narrow" cobra command.
func NewNarrowCommand() *cobra.Command {
	flags := &narrowFlags{}

	cmd := &cobra.Command{
		Use:   "narrow <name>",
		Short: "Narrow a general widget handle to a special widget",
		Long: `Build a widget of the given kind, hold it as a general widget, and try
to narrow it to a special widget. Narrowing a plain widget fails with
exit code 2.

Examples:
  castdemo narrow Widget2 --type Special
  castdemo narrow Widget3 --kind widget`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNarrow(cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", string(model.KindSpecial), "Widget kind: widget, special")
	cmd.Flags().StringVar(&flags.typ, "type", "", "Special widget type (default: Default)")

	return cmd
}

// narrowResultJSON is the --json output of the narrow command.
type narrowResultJSON struct {
	Name string `json:"name"`
	Held string `json:"held"`
	Type string `json:"type"`
}

func runNarrow(out io.Writer, name string, flags *narrowFlags) error {
	kind, err := model.ParseKind(flags.kind)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --kind", err)
	}
	handle, err := model.New(kind, name, flags.typ)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid widget", err)
	}
	VerboseLog("Holding %q (%s) as model.Namer", handle.Name(), model.KindOf(handle))

	sw, err := cast.AsSpecial(handle)
	if err != nil {
		return model.WrapCLIError(model.ExitBadCast, fmt.Sprintf("cannot narrow %q", name), err)
	}

	if IsJSONOutput() {
		return printJSON(out, narrowResultJSON{Name: sw.Name(), Held: kind.String(), Type: sw.Type()})
	}
	return report.PrintSpecialWidgetName(out, sw)
}
