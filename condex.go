// Package condex provides an incremental, multi-pattern capture engine for Go.
//
// A condex pattern is a tiny matching language fed one rune at a time:
//   - a literal rune must equal the input rune
//   - [abc] matches any one of the enclosed runes
//   - '-' opens a capture that closes where the next target matches
//   - whitespace is insignificant, in patterns and in input alike
//
// Patterns are cyclic: once every capture marker of a pattern has been closed, the
// spans are stored as one group and the pattern re-arms, so a single pattern keeps
// matching along the whole input.
//
// Basic usage:
//
//	m, err := condex.NewMatcher(map[string][]string{
//	    "tag":  {"@-("},
//	    "args": {"[(,] - : - [,=]"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := "@hello-man(name: type = value)"
//	if err := m.Scan(src); err != nil {
//	    log.Fatal(err)
//	}
//	res, _ := m.FinalizeWithSource(src)
//	fmt.Println(res["tag"])  // [[hello-man]]
//	fmt.Println(res["args"]) // [[name type]]
//
// Input may also be fed by hand with Matcher.Test, one rune and its byte offset per
// call, which is what Scan does under the hood.
//
// Concurrency: every pattern runs its own automaton. Matcher.Test fans a rune out to
// all of them, in parallel when there are enough automata to pay for it (see Config).
// A Matcher itself is not safe for concurrent use.
package condex

import (
	"github.com/coregx/condex/automaton"
	"github.com/coregx/condex/pattern"
)

// Span is a half-open byte range [Start, End) into the scanned text.
type Span = automaton.Span

// Group is one complete set of spans, one per capture marker of the pattern.
type Group = automaton.Group

// Compile validates a single pattern.
//
// Example:
//
//	p, err := condex.Compile("[(,] - : - [,=]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Captures()) // 2
func Compile(src string) (*pattern.Pattern, error) {
	return pattern.Compile(src)
}

// MustCompile compiles a pattern and panics if it is malformed.
//
//	var tagName = condex.MustCompile("@-(")
func MustCompile(src string) *pattern.Pattern {
	return pattern.MustCompile(src)
}
