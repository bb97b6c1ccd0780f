package entities

import "fmt"

// ParseError reports a raw record that cannot be turned into a log entry:
// a required field is missing or has the wrong shape. It applies to a single
// record; callers iterating a batch should skip or report the record and
// continue with the rest.
type ParseError struct {
	Field  string
	Reason string
	Err    error
}

// Error returns the error message.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing log entry field %q: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError builds a ParseError without an underlying cause.
func newParseError(field, reason string) *ParseError {
	return &ParseError{Field: field, Reason: reason}
}

// FieldAbsentError reports access to a field that is legitimately optional
// for the entry's kind (e.g. some log entries carry no title). The record
// itself is valid, which distinguishes this from ParseError.
type FieldAbsentError struct {
	Field string
}

// Error returns the error message.
func (e *FieldAbsentError) Error() string {
	return fmt.Sprintf("log entry has no %q field", e.Field)
}
