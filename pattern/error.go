package pattern

import (
	"errors"
	"fmt"
)

// Common pattern errors
var (
	// ErrMalformedPattern is wrapped by every *SyntaxError. Match it with errors.Is
	// to detect any pattern that cannot be compiled.
	ErrMalformedPattern = errors.New("malformed condex pattern")

	// ErrEmptyPattern indicates the pattern has no significant rune
	ErrEmptyPattern = errors.New("pattern has no targets")

	// ErrUnterminatedClass indicates a '[' without a closing ']'
	ErrUnterminatedClass = errors.New("missing closing ]")

	// ErrEmptyClass indicates a class with no members, e.g. "[]"
	ErrEmptyClass = errors.New("empty character class")

	// ErrDanglingCapture indicates a '-' that is not followed by a target
	ErrDanglingCapture = errors.New("capture marker has no following target")
)

// SyntaxError describes a malformed pattern.
type SyntaxError struct {
	Pattern string
	Offset  int   // byte offset of the offending element
	Code    error // one of the Err* values above
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("error parsing condex %q at offset %d: %v", e.Pattern, e.Offset, e.Code)
}

// Unwrap exposes both the specific code and ErrMalformedPattern to errors.Is.
func (e *SyntaxError) Unwrap() []error {
	return []error{e.Code, ErrMalformedPattern}
}
