package model

import "fmt"

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitSpecError indicates a port specification could not be resolved:
	// a malformed token, an inverted range, an unresolvable wildcard, or a
	// bad row in a referenced CSV port file. The tool never acts on a
	// misunderstood port set, so these are always fatal.
	ExitSpecError ExitCode = 2

	// ExitFileError indicates a referenced input file was missing or
	// unreadable, or an export file could not be written.
	ExitFileError ExitCode = 3

	// ExitConfigError indicates the profile store could not be read,
	// written, or the named profile does not exist.
	ExitConfigError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
