package automaton

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrOffset indicates a span that cannot be resolved against the supplied text.
var ErrOffset = errors.New("span does not fit source text")

// OffsetError reports a span that falls outside the text or splits a UTF-8 sequence.
// It usually means the text differs from the one that was scanned, or offsets were
// not byte offsets.
type OffsetError struct {
	Span   Span
	Len    int // length of the source text in bytes
	Reason string
}

// Error implements the error interface
func (e *OffsetError) Error() string {
	return fmt.Sprintf("condex: cannot resolve span %v in %d-byte source: %s", e.Span, e.Len, e.Reason)
}

// Unwrap returns ErrOffset
func (e *OffsetError) Unwrap() error {
	return ErrOffset
}

// Span is a half-open byte range [Start, End) into the scanned text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns the span in range notation, e.g. "[1,10)".
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Resolve returns the text covered by the span with surrounding whitespace trimmed.
// It only reads src, so resolving the same span twice yields the same string.
func (s Span) Resolve(src string) (string, error) {
	switch {
	case s.Start < 0 || s.End > len(src):
		return "", &OffsetError{Span: s, Len: len(src), Reason: "out of range"}
	case s.Start > s.End:
		return "", &OffsetError{Span: s, Len: len(src), Reason: "start after end"}
	case !onBoundary(src, s.Start) || !onBoundary(src, s.End):
		return "", &OffsetError{Span: s, Len: len(src), Reason: "not on a rune boundary"}
	}
	return strings.TrimSpace(src[s.Start:s.End]), nil
}

func onBoundary(src string, i int) bool {
	return i == len(src) || utf8.RuneStart(src[i])
}

// Group is the ordered set of spans produced by one complete cycle through a
// pattern's capture markers.
type Group []Span

// Resolve resolves every span of the group against src.
func (g Group) Resolve(src string) ([]string, error) {
	out := make([]string, len(g))
	for i, s := range g {
		str, err := s.Resolve(src)
		if err != nil {
			return nil, err
		}
		out[i] = str
	}
	return out, nil
}
