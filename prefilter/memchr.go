package prefilter

import "bytes"

// MemchrPrefilter searches for a single ASCII trigger byte.
type MemchrPrefilter struct {
	needle byte
}

// NewMemchr creates a prefilter for one ASCII byte.
func NewMemchr(needle byte) *MemchrPrefilter {
	return &MemchrPrefilter{needle: needle}
}

// Find implements Prefilter.
func (p *MemchrPrefilter) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	if i := bytes.IndexByte(haystack[start:], p.needle); i >= 0 {
		return start + i
	}
	return -1
}

// Len implements Prefilter.
func (p *MemchrPrefilter) Len() int {
	return 1
}
