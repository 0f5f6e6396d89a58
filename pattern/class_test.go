package pattern

import "testing"

func TestClass_Basic(t *testing.T) {
	var c Class

	if !c.IsEmpty() {
		t.Error("zero class should be empty")
	}

	c.Add('c')
	c.Add('a')
	c.Add('b')
	c.Add('a')
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	for _, r := range "abc" {
		if !c.Contains(r) {
			t.Errorf("class should contain %q", r)
		}
	}
	for _, r := range "dA ]" {
		if c.Contains(r) {
			t.Errorf("class should not contain %q", r)
		}
	}
	if got := string(c.Runes()); got != "abc" {
		t.Errorf("Runes() = %q, want \"abc\"", got)
	}
}

func TestClass_NonASCII(t *testing.T) {
	var c Class
	c.Add('→')
	c.Add('x')
	c.Add('é')
	c.Add('→')

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if !c.Contains('→') || !c.Contains('é') || !c.Contains('x') {
		t.Error("missing member")
	}
	if c.Contains('ü') {
		t.Error("unexpected member 'ü'")
	}
	if got := c.String(); got != "[x→é]" {
		t.Errorf("String() = %q, want [x→é]", got)
	}
}

func TestClass_Reset(t *testing.T) {
	var c Class
	c.Add('(')
	c.Add('é')
	c.Reset()

	if !c.IsEmpty() {
		t.Error("class should be empty after Reset")
	}
	if c.Contains('(') || c.Contains('é') {
		t.Error("reset class should not contain old members")
	}

	c.Add(',')
	if !c.Contains(',') || c.Len() != 1 {
		t.Error("class should be reusable after Reset")
	}
}

func BenchmarkClass_Contains(b *testing.B) {
	var c Class
	for _, r := range "(,=)" {
		c.Add(r)
	}
	input := []rune("name: type = value, other")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range input {
			_ = c.Contains(r)
		}
	}
}
