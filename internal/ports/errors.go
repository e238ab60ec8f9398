package ports

import "fmt"

// ErrorKind classifies the ways a port specification can fail to resolve.
// Every kind is fatal to the invoking command: the tool must never act on
// a misunderstood port set.
type ErrorKind string

const (
	// MalformedToken indicates a token outside the accepted grammars
	// (letter form "2B", decimal form "2.02", bare board "2"), or a range
	// whose endpoints mix surface forms or boards.
	MalformedToken ErrorKind = "malformed-token"

	// InvertedRange indicates a range whose end precedes its start in the
	// (board, slot) total order.
	InvertedRange ErrorKind = "inverted-range"

	// InvalidCSVRow indicates a row of a referenced CSV port file that
	// could not be interpreted. Row carries the 1-based line number.
	InvalidCSVRow ErrorKind = "invalid-csv-row"

	// UnresolvedWildcard indicates a "*" / "all" fragment with no injected
	// inventory to expand it against.
	UnresolvedWildcard ErrorKind = "unresolved-wildcard"

	// FileNotFound indicates a referenced CSV port file does not exist or
	// could not be opened.
	FileNotFound ErrorKind = "file-not-found"
)

// ParseError is the error type returned by Parse and Resolve. It names the
// offending token (or CSV row) and describes the expected grammar so the
// operator can correct the specification.
type ParseError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Token is the offending fragment as the operator wrote it.
	// Empty for file-level failures.
	Token string

	// Row is the 1-based CSV line number for InvalidCSVRow, 0 otherwise.
	Row int

	// Message describes what was expected.
	Message string
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Kind == InvalidCSVRow && e.Token != "":
		return fmt.Sprintf("invalid CSV row %d (%q): %s", e.Row, e.Token, e.Message)
	case e.Kind == InvalidCSVRow:
		return fmt.Sprintf("invalid CSV row %d: %s", e.Row, e.Message)
	case e.Token != "":
		return fmt.Sprintf("invalid port specification %q: %s", e.Token, e.Message)
	default:
		return e.Message
	}
}

// malformed builds a MalformedToken error for the given token.
func malformed(token, format string, args ...any) *ParseError {
	return &ParseError{Kind: MalformedToken, Token: token, Message: fmt.Sprintf(format, args...)}
}

// WarningKind classifies non-fatal resolution notes.
type WarningKind string

const (
	// DefaultSlotAssumed is reported once per resolution when one or more
	// bare-board tokens (or slot-less CSV rows) were silently given slot 1.
	// The assumption is only safe on single-slot devices, so the caller
	// should surface it to the operator.
	DefaultSlotAssumed WarningKind = "default-slot-assumed"
)

// Warning is a structured non-fatal note attached to a successful
// resolution. The resolver never blocks for confirmation; it reports and
// lets the caller decide.
type Warning struct {
	Kind WarningKind

	// Count is the number of tokens/rows that contributed to this warning.
	// Warnings of the same kind are aggregated, never repeated per row.
	Count int

	// Message is the operator-facing text.
	Message string
}
