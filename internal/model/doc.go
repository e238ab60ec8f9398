// Package model defines the process-level error types for the boxofports CLI.
//
// This package contains pure data structures with no external dependencies.
// It defines exit codes (ExitCode) and a custom error type (CLIError) that
// carries an exit code, so the CLI layer can translate domain errors into
// proper OS process exit handling. Domain-specific errors (port spec parse
// errors, warnings) live next to the code that produces them in
// internal/ports and internal/table; they are wrapped into CLIError at the
// command boundary.
package model
