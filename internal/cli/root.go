// Package cli implements the cobra-based CLI commands for boxofports.
//
// Each subcommand (expand, config ...) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags and exit codes.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/altheasignals/boxofports/internal/model"
)

// verbose enables detailed logging output for debugging. It is bound to a
// persistent flag on the root command, which makes it available to every
// subcommand automatically. Verbose output goes to stderr so it never
// contaminates a machine-readable stdout stream.
var verbose bool

// Version, Commit, and Date are set at build time via ldflags. They are
// injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command. This is
// the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boxofports",
		Short: "Port-bank resolution and table export for multi-port SMS gateways",
		Long: `boxofports resolves operator port shorthand ("1A,2.01-2.04,*", CSV port
files) into canonical port sets and renders per-port results as sorted
tables, exportable to CSV or JSON with identical row order everywhere.

Exports sent to the console carry exactly one machine-readable stream on
stdout, so output pipes cleanly into other tools.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// Execute formats them with exit codes instead.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewExpandCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes. This is the main
// entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them into
// appropriate OS exit codes. CLIError types carry their own exit codes;
// other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes an error to stderr. Stdout stays reserved for command
// output so console-only export streams are never polluted.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// warnLog prints a de-emphasized, non-fatal diagnostic to stderr.
func warnLog(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[warn] "+format+"\n", args...)
}
