// Package prefilter finds the next input position an idle set of automata can react to.
//
// An automaton resting at the start of its pattern ignores every rune that does not
// satisfy the pattern's trigger. When every automaton of a matcher is at rest, the
// matcher can therefore jump straight to the next occurrence of any trigger rune
// instead of feeding the runes in between one at a time.
//
// The package selects a strategy from the trigger set:
//   - a single ASCII trigger → MemchrPrefilter (byte search)
//   - anything else → AhoCorasickPrefilter (multi-pattern automaton)
//
// Example usage:
//
//	b := prefilter.NewBuilder()
//	b.AddTarget(pattern.MustCompile("@-(").Trigger())
//	b.AddTarget(pattern.MustCompile("[(,]-:-[,=]").Trigger())
//	pf := b.Build()
//
//	pos := pf.Find([]byte("abc (x: y)"), 0)
//	// pos == 4 (position of "(")
package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/condex/pattern"
)

// Prefilter locates candidate trigger positions in a haystack.
type Prefilter interface {
	// Find returns the byte index of the first trigger rune starting at or after
	// 'start', or -1 if there is none. The index is always the first byte of a
	// UTF-8 encoded rune.
	Find(haystack []byte, start int) int

	// Len returns the number of distinct trigger runes.
	Len() int
}

// Builder collects trigger runes and builds the matching Prefilter.
//
// Example:
//
//	b := prefilter.NewBuilder()
//	b.AddRune('@')
//	pf := b.Build() // MemchrPrefilter
type Builder struct {
	runes   []rune
	seen    map[rune]struct{}
	invalid bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[rune]struct{})}
}

// AddRune adds one trigger rune. Duplicates are ignored.
func (b *Builder) AddRune(r rune) {
	if r == utf8.RuneError || !utf8.ValidRune(r) {
		// Invalid input bytes decode to RuneError, whose encoding never appears in
		// the haystack, so such a trigger cannot be searched for.
		b.invalid = true
		return
	}
	if _, ok := b.seen[r]; ok {
		return
	}
	b.seen[r] = struct{}{}
	b.runes = append(b.runes, r)
}

// AddTarget adds every rune that satisfies t.
func (b *Builder) AddTarget(t pattern.Target) {
	for _, r := range t.Runes() {
		b.AddRune(r)
	}
}

// Build returns the best prefilter for the collected triggers, or nil when no
// prefilter can be exact: no triggers were added, or a trigger cannot be searched.
func (b *Builder) Build() Prefilter {
	if b.invalid || len(b.runes) == 0 {
		return nil
	}
	if len(b.runes) == 1 && b.runes[0] < utf8.RuneSelf {
		return NewMemchr(byte(b.runes[0]))
	}
	pf, err := NewAhoCorasick(b.runes)
	if err != nil {
		return nil
	}
	return pf
}
