package comb

import "testing"

func TestAnyRune(t *testing.T) {
	tests := []struct {
		input   string
		pos     int
		ok      bool
		value   rune
		nextPos int
	}{
		{"", 0, false, 0, 0},
		{"a", 0, true, 'a', 1},
		{"abc", 1, true, 'b', 2},
		{"abc", 3, false, 0, 0},
		{"abc", 99, false, 0, 0},
		{"héllo", 1, true, 'é', 3},
	}

	p := AnyRune()
	for _, tt := range tests {
		r := p(tt.input, tt.pos)
		if r.OK != tt.ok {
			t.Errorf("AnyRune(%q, %d): ok = %v, want %v", tt.input, tt.pos, r.OK, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		if r.Value != tt.value {
			t.Errorf("AnyRune(%q, %d): value = %q, want %q", tt.input, tt.pos, r.Value, tt.value)
		}
		if r.Pos != tt.nextPos {
			t.Errorf("AnyRune(%q, %d): pos = %d, want %d", tt.input, tt.pos, r.Pos, tt.nextPos)
		}
	}
}

func TestSucceed(t *testing.T) {
	p := Succeed(42)
	r := p("anything", 3)
	if !r.OK {
		t.Fatal("Succeed failed")
	}
	if r.Value != 42 {
		t.Errorf("value = %d, want 42", r.Value)
	}
	if r.Pos != 3 {
		t.Errorf("pos = %d, want 3 (must consume nothing)", r.Pos)
	}
}

func TestFail(t *testing.T) {
	p := Fail[int]()
	if r := p("anything", 0); r.OK {
		t.Error("Fail succeeded on non-empty input")
	}
	if r := p("", 0); r.OK {
		t.Error("Fail succeeded on empty input")
	}
}

func TestSatisfy(t *testing.T) {
	isDigit := func(r rune) bool { return '0' <= r && r <= '9' }
	p := Satisfy(isDigit)

	tests := []struct {
		input string
		ok    bool
	}{
		{"7", true},
		{"a", false},
		{"", false},
	}
	for _, tt := range tests {
		r := p(tt.input, 0)
		if r.OK != tt.ok {
			t.Errorf("Satisfy(isDigit)(%q): ok = %v, want %v", tt.input, r.OK, tt.ok)
		}
		if r.OK && (r.Value != rune(tt.input[0]) || r.Pos != 1) {
			t.Errorf("Satisfy(isDigit)(%q): got (%q, %d), want (%q, 1)", tt.input, r.Value, r.Pos, rune(tt.input[0]))
		}
	}
}

func TestRune(t *testing.T) {
	p := Rune('(')
	if r := p("(x", 0); !r.OK || r.Value != '(' || r.Pos != 1 {
		t.Errorf("Rune('(')(\"(x\") = %+v, want ('(', 1, true)", r)
	}
	if r := p("x(", 0); r.OK {
		t.Error("Rune('(') matched 'x'")
	}
}

func TestRunTrailingInput(t *testing.T) {
	p := Rune('a')
	value, pos, ok := Run(p, "abc")
	if !ok || value != 'a' || pos != 1 {
		t.Fatalf("Run = (%q, %d, %v), want ('a', 1, true)", value, pos, ok)
	}
	// Trailing "bc" is not an error; the caller sees pos < len(input).
	if pos >= len("abc") {
		t.Error("expected unconsumed trailing input")
	}
}
