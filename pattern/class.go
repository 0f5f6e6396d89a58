package pattern

import "strings"

// Class is a character class: a set of runes any one of which satisfies a target.
//
// ASCII members live in a 128-bit bitmap, anything else in a short slice. Classes in
// condex patterns are a handful of punctuation runes, so the slice is scanned linearly.
type Class struct {
	ascii [2]uint64
	other []rune
	n     int
}

// Add inserts r into the class. Adding a present rune is a no-op.
func (c *Class) Add(r rune) {
	if c.Contains(r) {
		return
	}
	if r >= 0 && r < 128 {
		c.ascii[r>>6] |= 1 << (uint(r) & 63)
	} else {
		c.other = append(c.other, r)
	}
	c.n++
}

// Contains reports whether r is a member of the class.
func (c *Class) Contains(r rune) bool {
	if r >= 0 && r < 128 {
		return c.ascii[r>>6]&(1<<(uint(r)&63)) != 0
	}
	for _, o := range c.other {
		if o == r {
			return true
		}
	}
	return false
}

// Reset empties the class, keeping its storage for reuse.
func (c *Class) Reset() {
	c.ascii = [2]uint64{}
	c.other = c.other[:0]
	c.n = 0
}

// Len returns the number of members.
func (c *Class) Len() int {
	return c.n
}

// IsEmpty returns true if the class has no members.
func (c *Class) IsEmpty() bool {
	return c.n == 0
}

// Runes returns the members: ASCII in code point order, then the rest in insertion order.
func (c *Class) Runes() []rune {
	out := make([]rune, 0, c.n)
	for r := rune(0); r < 128; r++ {
		if c.ascii[r>>6]&(1<<(uint(r)&63)) != 0 {
			out = append(out, r)
		}
	}
	return append(out, c.other...)
}

// String renders the class in pattern syntax, e.g. "[(,]".
func (c *Class) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, r := range c.Runes() {
		sb.WriteRune(r)
	}
	sb.WriteByte(']')
	return sb.String()
}
