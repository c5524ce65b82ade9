// Package cli implements the cobra-based CLI commands for castdemo.
//
// The root command runs the built-in demo when invoked without a
// subcommand. Each subcommand (demo, run, narrow) is defined in its own
// file within this package. This file defines the root command, the
// global flags and the shared error/verbose output helpers.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/castdemo/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output to JSON.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// logOut receives verbose output. It follows the root command's
	// stderr so tests can capture it.
	logOut io.Writer = os.Stderr
)

// Version, Commit and Date are set from main, which receives them via ldflags.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// Without a subcommand it runs the demo, the same as "castdemo demo".
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "castdemo",
		Short: "Demonstrate read-only view removal and checked narrowing on widgets",
		Long: `castdemo shows two handle conversions on a small widget hierarchy:

  - removing the read-only restriction from a view of a special widget
  - narrowing a general widget handle to a special widget, checked at run time

Run without arguments to print the built-in demo.`,

		Args: cobra.NoArgs,

		// Errors are formatted by Execute (text or JSON), not by cobra.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logOut = cmd.ErrOrStderr()
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewNarrowCommand())

	return rootCmd
}

// Execute runs the root command and exits the process with the code
// carried by the returned error. This is the main entry point called
// from main.go.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(rootCmd.ErrOrStderr(), cliErr.Message, cliErr.Err)
	} else {
		printError(rootCmd.ErrOrStderr(), err.Error(), nil)
	}
	os.Exit(int(ExitCodeOf(err)))
}

// ExitCodeOf maps an error returned by a command to a process exit code.
// nil maps to ExitSuccess; errors without a CLIError map to ExitGeneralError.
func ExitCodeOf(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError writes an error message to w in the format selected by --json.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(logOut, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
