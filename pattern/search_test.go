package pattern

import (
	"slices"
	"testing"
)

func TestPrefixMatchIsAnchored(t *testing.T) {
	if _, ok := PrefixMatch(Digit, "a1", 0, Whole("a1")); ok {
		t.Error("PrefixMatch() searched past the start position")
	}
	if m, ok := PrefixMatch(Digit, "a1", 1, Whole("a1")); !ok || m.Start != 1 || m.End != 2 {
		t.Errorf("PrefixMatch() = %+v, %v", m, ok)
	}
}

func TestPrefixMatchInvalidBounds(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		bounds Bounds
	}{
		{"start before lower", 0, Bounds{Lower: 1, Upper: 3}},
		{"start after upper", 3, Bounds{Lower: 0, Upper: 2}},
		{"upper past input", 0, Bounds{Lower: 0, Upper: 10}},
		{"inverted", 1, Bounds{Lower: 2, Upper: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := PrefixMatch(ZeroOrMore(Any), "abc", tt.start, tt.bounds); ok {
				t.Error("PrefixMatch() succeeded on invalid bounds")
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name   string
		p      Pattern[string]
		input  string
		bounds Bounds
		want   []string
	}{
		{"digits", Digit, "1, 2, 3, 4", Bounds{0, 10}, []string{"1", "2", "3", "4"}},
		{"window", Digit, "1, 2, 3, 4", Bounds{2, 7}, []string{"2", "3"}},
		{"runs", Capture(OneOrMore(Digit)), "12 345 6", Bounds{0, 8}, []string{"12", "345", "6"}},
		{"none", Letter, "123", Bounds{0, 3}, nil},
		{"empty input", Digit, "", Bounds{0, 0}, nil},
		{"multibyte skip", Digit, "日1本2", Bounds{0, 8}, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, m := range FindAll(tt.p, tt.input, tt.bounds) {
				got = append(got, m.Output)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindAll() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFindAllEmptyMatches follows regexp: `x*` over "axb" matches at 0, 2 and 3
// but not at 1 directly after the "x".
func TestFindAllEmptyMatches(t *testing.T) {
	var spans [][2]int
	for _, m := range FindAll(Capture(ZeroOrMore(Literal("x"))), "axb", Whole("axb")) {
		spans = append(spans, [2]int{m.Start, m.End})
	}
	want := [][2]int{{0, 0}, {1, 2}, {3, 3}}
	if !slices.Equal(spans, want) {
		t.Errorf("FindAll() spans = %v, want %v", spans, want)
	}
}

func TestFirstMatch(t *testing.T) {
	m, ok := FirstMatch(Capture(OneOrMore(Digit)), "order 42, 7")
	if !ok || m.Output != "42" || m.Start != 6 || m.End != 8 {
		t.Errorf("FirstMatch() = %+v, %v", m, ok)
	}
	if _, ok := FirstMatch(Digit, "none"); ok {
		t.Error("FirstMatch() matched without digits")
	}
}

func TestWholeMatch(t *testing.T) {
	if _, ok := WholeMatch(Digit, "12"); ok {
		t.Error("WholeMatch() accepted a partial match")
	}
	if out, ok := WholeMatch(Capture(OneOrMore(Digit)), "12"); !ok || out != "12" {
		t.Errorf("WholeMatch() = %q, %v", out, ok)
	}
}
