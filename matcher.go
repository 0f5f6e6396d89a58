package condex

import (
	"fmt"
	"unicode/utf8"

	"github.com/sourcegraph/conc/iter"
	"golang.org/x/sys/cpu"

	"github.com/coregx/condex/automaton"
	"github.com/coregx/condex/internal/conv"
	"github.com/coregx/condex/internal/sparse"
	"github.com/coregx/condex/pattern"
	"github.com/coregx/condex/prefilter"
)

// slot holds one automaton. The padding keeps neighbouring automata off each other's
// cache lines while goroutines update them side by side.
type slot struct {
	condex automaton.Condex
	_      cpu.CacheLinePad
}

// Matcher runs a table of patterns, grouped by category, over one input.
//
// A Matcher is built for exactly one scan: feed the input with Scan or Test, then
// call Finalize or FinalizeWithSource once. It is not safe for concurrent use.
type Matcher[K comparable] struct {
	config     Config
	categories []K
	slots      []slot
	byCategory map[K][]int // slot indices in pattern order

	prefilter prefilter.Prefilter
	awake     *sparse.SparseSet // slots that are not at rest

	last      int
	finalized bool
}

// NewMatcher builds a matcher with DefaultConfig.
//
// Every category may own several patterns; its results are the union of the groups
// produced by all of them.
//
// Example:
//
//	m, err := condex.NewMatcher(map[Token][]string{
//	    TagName:  {"@-("},
//	    AllInOne: {"@-(", "[(,] - : - [,=]", "=-[,)]"},
//	})
func NewMatcher[K comparable](table map[K][]string) (*Matcher[K], error) {
	return NewMatcherWithConfig(table, DefaultConfig())
}

// NewMatcherWithConfig builds a matcher with a custom configuration.
// Returns a *PatternError if any pattern is malformed, ErrNoPatterns if the table
// holds no pattern at all, or a *ConfigError.
func NewMatcherWithConfig[K comparable](table map[K][]string, config Config) (*Matcher[K], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	total := 0
	for _, patterns := range table {
		total += len(patterns)
	}
	if total == 0 {
		return nil, ErrNoPatterns
	}

	m := &Matcher[K]{
		config:     config,
		categories: make([]K, 0, len(table)),
		slots:      make([]slot, 0, total),
		byCategory: make(map[K][]int, len(table)),
		awake:      sparse.NewSparseSet(total),
		last:       -1,
	}

	pf := prefilter.NewBuilder()
	for category, patterns := range table {
		m.categories = append(m.categories, category)
		indices := make([]int, 0, len(patterns))
		for i, src := range patterns {
			p, err := pattern.Compile(src)
			if err != nil {
				return nil, &PatternError{Category: fmt.Sprint(category), Index: i, Err: err}
			}
			pf.AddTarget(p.Trigger())
			indices = append(indices, len(m.slots))
			m.slots = append(m.slots, slot{condex: *automaton.New(p)})
		}
		m.byCategory[category] = indices
	}

	if config.EnablePrefilter {
		m.prefilter = pf.Build()
	}
	return m, nil
}

// Test feeds one input rune at its byte offset to every automaton.
//
// Offsets must strictly increase from call to call. When the matcher holds at least
// Config.ParallelThreshold automata, they run on up to Config.Parallelism goroutines;
// Test returns once all of them have seen the rune.
func (m *Matcher[K]) Test(r rune, offset int) error {
	if m.finalized {
		return ErrFinalized
	}
	if offset <= m.last {
		return fmt.Errorf("%w: offset %d after %d", ErrOffsetOrder, offset, m.last)
	}
	m.last = offset

	if m.parallel() {
		iter.Iterator[slot]{MaxGoroutines: m.config.Parallelism}.ForEach(m.slots, func(s *slot) {
			s.condex.Test(r, offset)
		})
		return nil
	}
	for i := range m.slots {
		m.slots[i].condex.Test(r, offset)
	}
	return nil
}

func (m *Matcher[K]) parallel() bool {
	return m.config.Parallelism > 1 && len(m.slots) >= m.config.ParallelThreshold
}

// Scan feeds every rune of text with its byte offset, exactly like calling Test in
// a range loop over text.
//
// With the prefilter enabled, whenever every automaton is at rest Scan jumps to the
// next rune that satisfies some pattern's trigger. Runes in between could not have
// changed any automaton, so the results are the same.
func (m *Matcher[K]) Scan(text string) error {
	if m.finalized {
		return ErrFinalized
	}

	var haystack []byte
	if m.prefilter != nil {
		haystack = []byte(text)
		m.track()
	}

	for i := 0; i < len(text); {
		if m.prefilter != nil && m.awake.IsEmpty() {
			next := m.prefilter.Find(haystack, i)
			if next < 0 {
				break
			}
			i = next
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if err := m.Test(r, i); err != nil {
			return err
		}
		if m.prefilter != nil {
			m.track()
		}
		i += size
	}
	return nil
}

// track records which automata are in the middle of a match.
func (m *Matcher[K]) track() {
	for i := range m.slots {
		m.awake.Set(conv.IntToUint32(i), !m.slots[i].condex.AtRest())
	}
}

// Finalize returns, per category, the completed groups of all its patterns: pattern
// by pattern in table order, each pattern's groups in completion order.
//
// The matcher cannot be used afterwards.
func (m *Matcher[K]) Finalize() (map[K][]Group, error) {
	if m.finalized {
		return nil, ErrFinalized
	}
	m.finalized = true

	mapper := iter.Mapper[K, []Group]{MaxGoroutines: m.config.Parallelism}
	collected := mapper.Map(m.categories, func(category *K) []Group {
		var groups []Group
		for _, idx := range m.byCategory[*category] {
			groups = append(groups, m.slots[idx].condex.Groups()...)
		}
		return groups
	})

	out := make(map[K][]Group, len(m.categories))
	for i, category := range m.categories {
		out[category] = collected[i]
	}
	return out, nil
}

// FinalizeWithSource is like Finalize but resolves every span to the trimmed text it
// covers in src. src must be the scanned text; a span that does not fit it yields an
// error matching ErrOffset.
func (m *Matcher[K]) FinalizeWithSource(src string) (map[K][][]string, error) {
	groups, err := m.Finalize()
	if err != nil {
		return nil, err
	}

	mapper := iter.Mapper[K, [][]string]{MaxGoroutines: m.config.Parallelism}
	resolved, err := mapper.MapErr(m.categories, func(category *K) ([][]string, error) {
		var out [][]string
		for _, g := range groups[*category] {
			strs, err := g.Resolve(src)
			if err != nil {
				return nil, err
			}
			out = append(out, strs)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[K][][]string, len(m.categories))
	for i, category := range m.categories {
		out[category] = resolved[i]
	}
	return out, nil
}

// Categories returns the categories of the table, in no particular order.
func (m *Matcher[K]) Categories() []K {
	return append([]K(nil), m.categories...)
}

// Len returns the number of automata, one per pattern.
func (m *Matcher[K]) Len() int {
	return len(m.slots)
}
