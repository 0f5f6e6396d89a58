package condex

import (
	"errors"
	"fmt"

	"github.com/coregx/condex/automaton"
	"github.com/coregx/condex/pattern"
)

var (
	// ErrMalformedPattern matches every pattern syntax error.
	ErrMalformedPattern = pattern.ErrMalformedPattern

	// ErrOffset matches every span that cannot be resolved against a source text.
	ErrOffset = automaton.ErrOffset

	// ErrNoPatterns is returned when a matcher is built without any pattern
	ErrNoPatterns = errors.New("condex: no patterns specified")

	// ErrFinalized is returned when a matcher is used after Finalize
	ErrFinalized = errors.New("condex: matcher already finalized")

	// ErrOffsetOrder is returned when offsets passed to Test do not increase
	ErrOffsetOrder = errors.New("condex: offsets must be strictly increasing")
)

// PatternError reports which pattern of a matcher table failed to compile.
type PatternError struct {
	Category string // category, formatted with %v
	Index    int    // position of the pattern within its category
	Err      error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("condex: category %s, pattern %d: %v", e.Category, e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "condex: invalid config: " + e.Field + ": " + e.Message
}
