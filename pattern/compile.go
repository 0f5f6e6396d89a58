package pattern

import "strconv"

// Target is one resolved pattern element: a literal rune or a character class.
type Target struct {
	lit   rune
	class *Class
}

// LiteralTarget returns a target satisfied only by r.
func LiteralTarget(r rune) Target {
	return Target{lit: r}
}

// ClassTarget returns a target satisfied by any member of c.
func ClassTarget(c *Class) Target {
	return Target{class: c}
}

// Matches reports whether r satisfies the target.
func (t Target) Matches(r rune) bool {
	if t.class != nil {
		return t.class.Contains(r)
	}
	return r == t.lit
}

// IsClass returns true if the target is a character class.
func (t Target) IsClass() bool {
	return t.class != nil
}

// Runes returns every rune that satisfies the target.
func (t Target) Runes() []rune {
	if t.class != nil {
		return t.class.Runes()
	}
	return []rune{t.lit}
}

// String renders the target in pattern syntax.
func (t Target) String() string {
	if t.class != nil {
		return t.class.String()
	}
	return strconv.QuoteRune(t.lit)
}

// Pattern is a validated condex pattern.
//
// A Pattern is immutable and safe to share between automata.
type Pattern struct {
	src      string
	captures int
	targets  int
	trigger  Target
}

// Compile validates a condex pattern.
//
// The whole pattern is checked up front so that an automaton never meets a malformed
// element mid-scan. Returns a *SyntaxError (matching ErrMalformedPattern) for:
//   - a pattern with no targets
//   - '[' without ']'
//   - "[]"
//   - '-' not followed by a target before the end of the pattern
func Compile(src string) (*Pattern, error) {
	p := &Pattern{src: src}

	var (
		inClass      bool
		classOffset  int
		class        *Class
		marked       bool
		markerOffset int
		haveTrigger  bool
	)

	for i, r := range src {
		if IsPatternSpace(r) {
			continue
		}

		if inClass {
			if r != ClassClose {
				class.Add(r)
				continue
			}
			if class.IsEmpty() {
				return nil, &SyntaxError{Pattern: src, Offset: classOffset, Code: ErrEmptyClass}
			}
			inClass = false
			if !haveTrigger {
				p.trigger = ClassTarget(class)
				haveTrigger = true
			}
			p.targets++
			marked = false
			continue
		}

		switch r {
		case CaptureMarker:
			if marked {
				return nil, &SyntaxError{Pattern: src, Offset: markerOffset, Code: ErrDanglingCapture}
			}
			marked = true
			markerOffset = i
			p.captures++
		case ClassOpen:
			inClass = true
			classOffset = i
			class = &Class{}
		default:
			if !haveTrigger {
				p.trigger = LiteralTarget(r)
				haveTrigger = true
			}
			p.targets++
			marked = false
		}
	}

	switch {
	case inClass:
		return nil, &SyntaxError{Pattern: src, Offset: classOffset, Code: ErrUnterminatedClass}
	case marked:
		return nil, &SyntaxError{Pattern: src, Offset: markerOffset, Code: ErrDanglingCapture}
	case p.targets == 0:
		return nil, &SyntaxError{Pattern: src, Offset: 0, Code: ErrEmptyPattern}
	}
	return p, nil
}

// MustCompile is like Compile but panics if the pattern is malformed.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic("condex: Compile(`" + src + "`): " + err.Error())
	}
	return p
}

// Captures returns the number of capture markers, which is the number of spans in
// every group the pattern produces.
func (p *Pattern) Captures() int {
	return p.captures
}

// Targets returns the number of literal and class elements.
func (p *Pattern) Targets() int {
	return p.targets
}

// Trigger returns the first target. An automaton resting at the start of the pattern
// reacts only to runes that satisfy it.
func (p *Pattern) Trigger() Target {
	return p.trigger
}

// Cursor returns a fresh cursor over the pattern.
func (p *Pattern) Cursor() *Cursor {
	c, err := NewCursor(p.src)
	if err != nil {
		// Compile already rejected patterns without targets.
		panic(err)
	}
	return c
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.src
}
