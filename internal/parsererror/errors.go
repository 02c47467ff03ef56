// Package parsererror defines the typed errors returned while loading the
// transaction log and while reading interactive input.
package parsererror

import "fmt"

// ParseError represents a value in a retained row that could not be parsed.
// Row is the 1-based data row number (the header is not counted).
type ParseError struct {
	File   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
		e.File, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a structurally unusable input file,
// e.g. a required column missing from the header.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InputError represents interactive input that does not match what a
// prompt expects. It is reported to the user; it never ends the session.
type InputError struct {
	Prompt string
	Value  string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid input for %q: '%s': %v", e.Prompt, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid input for %q: '%s'", e.Prompt, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
