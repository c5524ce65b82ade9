// Package model defines the widget hierarchy and the value types shared
// by the castdemo CLI.
//
// Widget is the general type, reached through the Namer capability.
// SpecialWidget extends it with a type attribute and a read-only view.
// There is no persistent state: every widget lives only for the duration
// of a single command.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
