package prefilter

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// AhoCorasickPrefilter searches for any of several trigger runes, each added to the
// automaton as its UTF-8 encoding.
//
// A UTF-8 leading byte never equals a continuation byte, so a match always starts on
// a rune boundary of a well-formed haystack.
type AhoCorasickPrefilter struct {
	auto *ahocorasick.Automaton
	n    int
}

// NewAhoCorasick builds a prefilter for the given trigger runes.
func NewAhoCorasick(triggers []rune) (*AhoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	buf := make([]byte, utf8.UTFMax)
	for _, r := range triggers {
		n := utf8.EncodeRune(buf, r)
		builder.AddPattern(append([]byte(nil), buf[:n]...))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &AhoCorasickPrefilter{auto: auto, n: len(triggers)}, nil
}

// Find implements Prefilter.
func (p *AhoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// Len implements Prefilter.
func (p *AhoCorasickPrefilter) Len() int {
	return p.n
}
