package automaton

import (
	"reflect"
	"strings"
	"testing"
)

// feed runs src through c with byte offsets.
func feed(c *Condex, src string) {
	for i, r := range src {
		c.Test(r, i)
	}
}

// resolved returns the groups of c resolved against src.
func resolved(t *testing.T, c *Condex, src string) [][]string {
	t.Helper()
	var out [][]string
	for _, g := range c.Groups() {
		strs, err := g.Resolve(src)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		out = append(out, strs)
	}
	return out
}

func mustCompile(t *testing.T, src string) *Condex {
	t.Helper()
	c, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return c
}

func TestCondex_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    [][]string
	}{
		{
			name:    "tag name",
			pattern: "@-(",
			input:   "@hello-man(name: type = value)",
			want:    [][]string{{"hello-man"}},
		},
		{
			name:    "name and type",
			pattern: "[(,] - : - [,=]",
			input:   "(name: type = value)",
			want:    [][]string{{"name", "type"}},
		},
		{
			name:    "value",
			pattern: "=-[,)]",
			input:   "(name: type = value)",
			want:    [][]string{{"value"}},
		},
		{
			name:    "two occurrences",
			pattern: "@-(",
			input:   "@a(b) @cd(e)",
			want:    [][]string{{"a"}, {"cd"}},
		},
		{
			name:    "leading capture",
			pattern: "-:",
			input:   "ab:cd:ef",
			want:    [][]string{{"ab"}, {"cd"}},
		},
		{
			name:    "class accepts member",
			pattern: "x[abc]-;",
			input:   "xb1;",
			want:    [][]string{{"1"}},
		},
		{
			name:    "class rejects non-member",
			pattern: "x[abc]-;",
			input:   "xd1;",
			want:    nil,
		},
		{
			name:    "mismatch rewinds to trigger",
			pattern: "ab-;",
			input:   "ac;ab x;",
			want:    [][]string{{"x"}},
		},
		{
			name:    "mismatching rune is not retried as trigger",
			pattern: "ab-;",
			input:   "aab x;",
			want:    nil,
		},
		{
			name:    "input whitespace is ignored",
			pattern: "a:b-;",
			input:   "a \t: \nb  spaced out ;",
			want:    [][]string{{"spaced out"}},
		},
		{
			name:    "case sensitive",
			pattern: "A-;",
			input:   "a x; A y;",
			want:    [][]string{{"y"}},
		},
		{
			name:    "unicode",
			pattern: "«-»",
			input:   "« héllo » «wörld»",
			want:    [][]string{{"héllo"}, {"wörld"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCompile(t, tt.pattern)
			feed(c, tt.input)
			got := resolved(t, c, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCondex_Spans(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []Group
	}{
		{
			name:    "ascii",
			pattern: "[(,] - : - [,=]",
			input:   "(name: type = value)",
			want:    []Group{{{Start: 1, End: 5}, {Start: 6, End: 12}}},
		},
		{
			name:    "multibyte trigger and closer",
			pattern: "«-»",
			input:   "«wörld»",
			want:    []Group{{{Start: 2, End: 8}}},
		},
		{
			name:    "multibyte trigger",
			pattern: "é-;",
			input:   "éabc;",
			want:    []Group{{{Start: 2, End: 5}}},
		},
		{
			name:    "multibyte closer",
			pattern: "@-→",
			input:   "@x→y",
			want:    []Group{{{Start: 1, End: 2}}},
		},
		{
			name:    "multibyte class member",
			pattern: "[→⇒] - .",
			input:   "a ⇒ b. c → d.",
			want:    []Group{{{Start: 5, End: 7}}, {{Start: 14, End: 16}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCompile(t, tt.pattern)
			feed(c, tt.input)
			if !reflect.DeepEqual(c.Groups(), tt.want) {
				t.Errorf("Groups() = %v, want %v", c.Groups(), tt.want)
			}
			for _, g := range c.Groups() {
				if _, err := g.Resolve(tt.input); err != nil {
					t.Errorf("Resolve(%v): %v", g, err)
				}
			}
		})
	}
}

func TestCondex_GroupSizeEqualsCaptures(t *testing.T) {
	patterns := []string{"@-(", "[(,]-:-[,=]", "=-[,)]", "-:", "a-b-c-d"}
	input := "@hello-man(name: type = value, name2: type2, name3: type3 = value3) a1b2c3d a b c d"

	for _, p := range patterns {
		c := mustCompile(t, p)
		feed(c, input)
		for i, g := range c.Groups() {
			if len(g) != c.Pattern().Captures() {
				t.Errorf("%q group %d has %d spans, want %d", p, i, len(g), c.Pattern().Captures())
			}
			for j := 1; j < len(g); j++ {
				if g[j].Start <= g[j-1].Start || g[j].Start < g[j-1].End {
					t.Errorf("%q group %d spans overlap or are unordered: %v", p, i, g)
				}
			}
		}
	}
}

func TestCondex_NoCaptures(t *testing.T) {
	for _, p := range []string{"abc", "[abc]", "(", "[(,]:"} {
		c := mustCompile(t, p)
		feed(c, "abc (a,b): [abc] cab")
		if len(c.Groups()) != 0 {
			t.Errorf("%q produced groups %v, want none", p, c.Groups())
		}
	}
}

func TestCondex_PatternWhitespaceIsInsignificant(t *testing.T) {
	input := "@hello-man(name: type = value, name2: type2)"
	pairs := [][2]string{
		{"@-(", " @ -  ( "},
		{"[(,]-:-[,=]", "[(,]  -  :  - [,=]"},
		{"=-[,)]", "=\t-\n[, )]"},
	}

	for _, pair := range pairs {
		a := mustCompile(t, pair[0])
		b := mustCompile(t, pair[1])
		feed(a, input)
		feed(b, input)
		if !reflect.DeepEqual(a.Groups(), b.Groups()) {
			t.Errorf("%q and %q disagree: %v vs %v", pair[0], pair[1], a.Groups(), b.Groups())
		}
	}
}

func TestCondex_States(t *testing.T) {
	c := mustCompile(t, "@-(")
	if c.State() != Awaiting {
		t.Fatalf("initial state = %v, want Awaiting", c.State())
	}
	if !c.AtRest() {
		t.Error("new automaton should be at rest")
	}

	c.Test('@', 0)
	if c.AtRest() {
		t.Error("automaton after trigger should not be at rest")
	}

	c.Test('x', 1)
	if c.State() != Recording {
		t.Errorf("state inside capture = %v, want Recording", c.State())
	}
	if len(c.Pending()) != 0 {
		t.Errorf("Pending() = %v, want empty until the capture closes", c.Pending())
	}

	c.Test('(', 2)
	if c.State() != Awaiting {
		t.Errorf("state after capture = %v, want Awaiting", c.State())
	}
	if !c.AtRest() {
		t.Error("automaton should be at rest after a complete cycle")
	}
	if len(c.Groups()) != 1 {
		t.Errorf("got %d groups, want 1", len(c.Groups()))
	}
}

func TestCondex_PendingAcrossCaptures(t *testing.T) {
	c := mustCompile(t, "[(,]-:-[,=]")
	feed(c, "(name: ty")

	want := Group{{Start: 1, End: 5}}
	if !reflect.DeepEqual(c.Pending(), want) {
		t.Errorf("Pending() = %v, want %v", c.Pending(), want)
	}
	if c.AtRest() {
		t.Error("automaton with a group in progress is not at rest")
	}
}

func TestCondex_AtRestIgnoresNonTriggers(t *testing.T) {
	c := mustCompile(t, "x[abc]-;")
	feed(c, "xd")
	if !c.AtRest() {
		t.Error("rejected class should rewind the automaton to rest")
	}

	before := c.String()
	for i, r := range "qwerty;;" {
		c.Test(r, 10+i)
	}
	if c.String() != before {
		t.Errorf("non-trigger runes changed a resting automaton:\n%s\nvs\n%s", before, c.String())
	}
}

func TestCondex_Reset(t *testing.T) {
	c := mustCompile(t, "@-(")
	feed(c, "@a(@b")
	c.Reset()

	if len(c.Groups()) != 0 || len(c.Pending()) != 0 {
		t.Error("Reset should drop results")
	}
	if c.State() != Awaiting || !c.AtRest() {
		t.Error("Reset should return to the initial condition")
	}

	feed(c, "@z(")
	if got := resolved(t, c, "@z("); !reflect.DeepEqual(got, [][]string{{"z"}}) {
		t.Errorf("after Reset got %q", got)
	}
}

func TestCondex_String(t *testing.T) {
	c := mustCompile(t, "[(,]-:")
	c.Test('(', 0)
	c.Test('n', 1)

	s := c.String()
	for _, want := range []string{`condex "[(,]-:"`, "state: Recording", "pending index: 1", "captures: 1"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestState_String(t *testing.T) {
	if Awaiting.String() != "Awaiting" || Recording.String() != "Recording" {
		t.Error("unexpected state names")
	}
	if got := State(7).String(); got != "State(7)" {
		t.Errorf("State(7).String() = %q", got)
	}
}

func BenchmarkCondex_Test(b *testing.B) {
	src := strings.Repeat("@hello-man(name: type = value, name2: type2) ", 64)
	p := "[(,]  -  :  - [,=]"
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := Compile(p)
		feed(c, src)
	}
}
