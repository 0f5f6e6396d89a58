// Package automaton implements the single-pattern condex automaton.
//
// A Condex consumes one input rune at a time against a pattern.Cursor. It has two
// states:
//   - Awaiting: looking for the next target outside a capture region
//   - Recording: inside a capture region, looking for the target that closes it
//
// There is no terminal state. When the last capture marker of the pattern is closed
// the finished group is stored, and the cursor wraps around so the pattern can match
// again further along the same input.
//
// Example:
//
//	c, _ := automaton.Compile("@-(")
//	src := "@hello-man(name)"
//	for i, r := range src {
//	    c.Test(r, i)
//	}
//	s, _ := c.Groups()[0][0].Resolve(src) // "hello-man"
package automaton

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/condex/pattern"
)

// State is the recognizer state of a Condex.
type State uint8

const (
	// Awaiting means no capture is open. A mismatch abandons the attempt.
	Awaiting State = iota
	// Recording means a capture is open. Runes that do not close it are captured.
	Recording
)

// String implements fmt.Stringer
func (s State) String() string {
	switch s {
	case Awaiting:
		return "Awaiting"
	case Recording:
		return "Recording"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// IsInputSpace reports whether an input rune is whitespace. Such runes are never
// compared and never move an automaton, so "name:type" and "name : type" match alike.
func IsInputSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Condex is one compiled pattern plus its live matching state.
//
// A Condex is not safe for concurrent use and must not be copied after the first
// call to Test. Runes must be fed in input order with strictly increasing offsets.
type Condex struct {
	pat    *pattern.Pattern
	cursor pattern.Cursor

	state   State
	pending int // start offset of the next span

	lit      rune
	inClass  bool // the target is class rather than lit
	resolved bool // the target is the element under the cursor
	fresh    bool // the target is the pattern's trigger
	class    pattern.Class

	current Group
	groups  []Group
}

// New creates an automaton for a compiled pattern.
func New(p *pattern.Pattern) *Condex {
	return &Condex{
		pat:     p,
		cursor:  *p.Cursor(),
		current: make(Group, 0, p.Captures()),
	}
}

// Compile compiles src and creates an automaton for it.
func Compile(src string) (*Condex, error) {
	p, err := pattern.Compile(src)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// Test feeds one input rune at the given byte offset. After a target matches, the
// next span starts at the byte following its UTF-8 encoding.
func (c *Condex) Test(r rune, offset int) {
	if IsInputSpace(r) {
		return
	}

	c.resolve()

	if !c.matches(r) {
		// Inside a capture the rune is content; outside it the attempt is over.
		if c.state == Awaiting {
			c.rewind()
		}
		return
	}

	if c.state == Recording {
		c.current = append(c.current, Span{Start: c.pending, End: offset})
		if len(c.current) == c.pat.Captures() {
			c.groups = append(c.groups, c.current)
			c.current = make(Group, 0, c.pat.Captures())
		}
	}

	c.pending = offset + runeWidth(r)
	c.state = Awaiting
	c.class.Reset()
	c.resolved = false
	c.cursor.Advance()
}

// resolve interprets the pattern up to the next target. Capture markers switch to
// Recording; a class is collected up to, but not including, its ']' so that
// consuming the target also consumes the bracket.
func (c *Condex) resolve() {
	if c.resolved {
		return
	}
	c.fresh = c.cursor.AtStart()

	if c.cursor.Peek() == pattern.CaptureMarker {
		c.state = Recording
		c.cursor.Advance()
	}

	if r := c.cursor.Peek(); r == pattern.ClassOpen {
		c.cursor.Advance()
		c.class.Reset()
		for c.cursor.Peek() != pattern.ClassClose {
			c.class.Add(c.cursor.Advance())
		}
		c.inClass = true
	} else {
		c.lit = r
		c.inClass = false
	}
	c.resolved = true
}

// runeWidth returns the number of bytes r occupies in UTF-8 text. Runes that have no
// encoding count as one byte, the width of the invalid byte they were decoded from.
func runeWidth(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func (c *Condex) matches(r rune) bool {
	if c.inClass {
		return c.class.Contains(r)
	}
	return r == c.lit
}

// rewind abandons the current attempt and re-arms the pattern from its first element.
// Completed groups and the pending span start are kept.
func (c *Condex) rewind() {
	c.cursor.Rewind()
	c.state = Awaiting
	c.current = c.current[:0]
	c.class.Reset()
	c.resolved = false
}

// AtRest reports whether the automaton is waiting for the pattern's trigger with no
// group in progress. While at rest any rune that does not satisfy the trigger leaves
// the automaton unchanged.
func (c *Condex) AtRest() bool {
	if len(c.current) != 0 {
		return false
	}
	if c.resolved {
		return c.fresh
	}
	return c.cursor.AtStart()
}

// Reset returns the automaton to its initial condition and drops all results.
func (c *Condex) Reset() {
	c.rewind()
	c.pending = 0
	c.groups = nil
}

// State returns the current recognizer state.
func (c *Condex) State() State {
	return c.state
}

// Groups returns the completed groups in completion order.
func (c *Condex) Groups() []Group {
	return c.groups
}

// Pending returns the spans of the group in progress.
func (c *Condex) Pending() Group {
	return c.current
}

// Pattern returns the pattern the automaton was built from.
func (c *Condex) Pattern() *pattern.Pattern {
	return c.pat
}

// String renders the automaton state for debugging.
func (c *Condex) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "condex %q\n", c.pat.String())
	fmt.Fprintf(&sb, "  state: %v\n", c.state)
	fmt.Fprintf(&sb, "  pending index: %d\n", c.pending)
	fmt.Fprintf(&sb, "  captures: %d\n", c.pat.Captures())
	fmt.Fprintf(&sb, "  in progress: %v\n", c.current)
	fmt.Fprintf(&sb, "  groups: %v\n", c.groups)
	if !c.class.IsEmpty() {
		fmt.Fprintf(&sb, "  class: %v\n", c.class.String())
	}
	return sb.String()
}
