// Package pattern implements the condex pattern mini-language.
//
// A condex pattern is a sequence of elements matched one input rune at a time:
//   - a literal rune must equal the input rune
//   - [abc] is a character class: any one of the enclosed runes
//   - '-' is a capture marker: record a span that ends where the next target matches
//   - whitespace is insignificant and may be used for readability
//
// Example:
//
//	p := pattern.MustCompile("[(,] - : - [,=]")
//	fmt.Println(p.Captures()) // 2
//
// Patterns are interpreted lazily through a Cursor, a cyclic view that wraps back to
// the first element after the last one. This is what lets an automaton re-arm itself
// and keep matching after a full set of captures.
package pattern

// Element runes with special meaning.
const (
	CaptureMarker = '-'
	ClassOpen     = '['
	ClassClose    = ']'
)

// IsPatternSpace reports whether r is insignificant whitespace inside a pattern.
func IsPatternSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Cursor is a read-only, infinitely cyclic view over a pattern's runes.
//
// The cursor is an index into the pattern plus its fixed length; every move is taken
// modulo the length. Whitespace is transparent: any lookup that would land on
// whitespace first skips the whole run.
type Cursor struct {
	runes []rune
	pos   int
	first int // index of the first significant rune
}

// NewCursor creates a cursor positioned on the first element of p.
// Returns a *SyntaxError wrapping ErrEmptyPattern if p holds no significant rune.
func NewCursor(p string) (*Cursor, error) {
	runes := []rune(p)
	first := -1
	for i, r := range runes {
		if !IsPatternSpace(r) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, &SyntaxError{Pattern: p, Offset: 0, Code: ErrEmptyPattern}
	}
	return &Cursor{runes: runes, pos: first, first: first}, nil
}

// Peek returns the next significant rune without consuming it.
func (c *Cursor) Peek() rune {
	c.skipSpace()
	return c.runes[c.pos]
}

// Advance consumes and returns the next significant rune.
func (c *Cursor) Advance() rune {
	r := c.Peek()
	c.pos = (c.pos + 1) % len(c.runes)
	return r
}

// Rewind repositions the cursor on the first element of the pattern.
func (c *Cursor) Rewind() {
	c.pos = c.first
}

// AtStart reports whether the next significant rune is the first element of the pattern.
func (c *Cursor) AtStart() bool {
	c.skipSpace()
	return c.pos == c.first
}

// Len returns the pattern length in runes, whitespace included.
func (c *Cursor) Len() int {
	return len(c.runes)
}

// skipSpace moves past any whitespace run. NewCursor guarantees at least one
// significant rune, so the loop always terminates.
func (c *Cursor) skipSpace() {
	for IsPatternSpace(c.runes[c.pos]) {
		c.pos = (c.pos + 1) % len(c.runes)
	}
}
