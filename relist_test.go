package relist

import (
	"slices"
	"strconv"
	"testing"

	"github.com/coregx/relist/pattern"
)

// atoiAll converts every part to an int, rejecting the match on failure.
func atoiAll(parts []string) ([]int, bool) {
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func digit() pattern.Pattern[string]     { return pattern.Digit }
func separator() pattern.Pattern[string] { return pattern.Literal(", ") }

func TestDigitListWithSingleComponent(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 0)
	got, ok := l.WholeMatch("1, 2, 3, 4")
	if !ok || !slices.Equal(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("WholeMatch() = %q, %v", got, ok)
	}
}

func TestDigitListWithSingleComponentTransform(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 0)
	got, ok := pattern.WholeMatch(pattern.TryMap[[]string](l, atoiAll), "1, 2, 3, 4")
	if !ok || !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("WholeMatch() = %v, %v", got, ok)
	}
}

func TestDigitListWithComponentBuilder(t *testing.T) {
	l := SeparatedFunc(0, digit, separator)
	got, ok := l.WholeMatch("1, 2, 3, 4")
	if !ok || !slices.Equal(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("WholeMatch() = %q, %v", got, ok)
	}
}

func TestDigitListWithComponentBuilderTransform(t *testing.T) {
	l := SeparatedFunc(0, digit, separator)
	got, ok := pattern.WholeMatch(pattern.TryMap[[]string](l, atoiAll), "1, 2, 3, 4")
	if !ok || !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("WholeMatch() = %v, %v", got, ok)
	}
}

func TestDigitListRemainder(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 0)
	p := pattern.Right[[]string](l, pattern.Capture(pattern.OneOrMore(pattern.Any)))
	got, ok := pattern.WholeMatch(p, "1, 2, 3, 4 - 5, 6, 7, 8")
	if !ok || got != " - 5, 6, 7, 8" {
		t.Errorf("WholeMatch() = %q, %v", got, ok)
	}
}

func TestDigitListWithSingleComponentWithCount(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 2)
	got, ok := l.FirstMatch("1, 2, 3, 4")
	if !ok || !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("FirstMatch() = %q, %v", got, ok)
	}
}

func TestDigitListWithComponentBuilderWithCount(t *testing.T) {
	l := SeparatedFunc(2, digit, separator)
	got, ok := l.FirstMatch("1, 2, 3, 4")
	if !ok || !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("FirstMatch() = %q, %v", got, ok)
	}
}

func TestDigitListWithCountRemainder(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 2)
	p := pattern.Right[[]string](l, pattern.Capture(pattern.OneOrMore(pattern.Any)))
	got, ok := pattern.WholeMatch(p, "1, 2, 3, 4")
	if !ok || got != "3, 4" {
		t.Errorf("WholeMatch() = %q, %v", got, ok)
	}
}

func TestOf(t *testing.T) {
	withSeparator := pattern.Capture(pattern.Seq(pattern.Digit, pattern.Optional(pattern.Literal(", "))))

	tests := []struct {
		name  string
		l     *List[string]
		input string
		want  []string
		ok    bool
	}{
		{"component carries separator", Of(withSeparator, 0), "1, 2, 3, 4", []string{"1, ", "2, ", "3, ", "4"}, true},
		{"adjacent digits", Of(pattern.Digit, 0), "123", []string{"1", "2", "3"}, true},
		{"count", Of(pattern.Digit, 2), "a123", []string{"1", "2"}, true},
		{"negative count is unbounded", Of(pattern.Digit, -3), "123", []string{"1", "2", "3"}, true},
		{"no occurrence", Of(pattern.Letter, 0), "123", nil, false},
		{"builder", OfFunc(0, digit), "12", []string{"1", "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.l.FirstMatch(tt.input)
			if ok != tt.ok || !slices.Equal(got, tt.want) {
				t.Errorf("FirstMatch(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSplitBefore(t *testing.T) {
	l := SplitBefore(", ", " - ")
	got, ok := l.FirstMatch("1, 2, 3, 4 - 5, 6, 7, 8")
	if !ok || !slices.Equal(got, []string{"1", "2", "3", "4"}) {
		t.Errorf("FirstMatch() = %q, %v", got, ok)
	}

	end, _, ok := l.Consume("1, 2, 3, 4 - 5, 6, 7, 8", 0, pattern.Whole("1, 2, 3, 4 - 5, 6, 7, 8"))
	if !ok || end != 10 {
		t.Errorf("Consume() end = %d, %v, want 10", end, ok)
	}
}

func TestSplitRunsToEnd(t *testing.T) {
	got, ok := Split(";").WholeMatch("a;b;c")
	if !ok || !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("WholeMatch() = %q, %v", got, ok)
	}
}

func TestSplitThenRemainder(t *testing.T) {
	// The lookahead is left for the next element of the sequence.
	p := pattern.Seq[[]string](SplitBefore(", ", " - "), pattern.Right[string, []string](pattern.Literal(" - "), SplitBefore(", ")))
	got, ok := pattern.WholeMatch(p, "1, 2 - 3, 4")
	if !ok {
		t.Fatal("WholeMatch() failed")
	}
	if !slices.Equal(got.First, []string{"1", "2"}) || !slices.Equal(got.Second, []string{"3", "4"}) {
		t.Errorf("WholeMatch() = %q", got)
	}
}

func TestMatchString(t *testing.T) {
	l := SeparatedString(pattern.Digit, ", ", 3)
	if !l.MatchString("x 1, 2, 3") {
		t.Error("MatchString() = false, want true")
	}
	if l.MatchString("x 1, 2") {
		t.Error("MatchString() = true with two occurrences, want false")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		l    interface{ String() string }
		want string
	}{
		{Of(pattern.Digit, 0), "list(unbounded)"},
		{SeparatedString(pattern.Digit, ", ", 2), `list(2, separated by ", ")`},
		{Separated(pattern.Digit, pattern.Space, 0), "list(unbounded, separated by pattern)"},
		{Split(","), `split(",")`},
		{SplitBefore(",", " - "), `split("," before [" - "])`},
	}
	for _, tt := range tests {
		if got := tt.l.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	l := SeparatedString(pattern.MustRegexp(`\d+`), ", ", 0)
	input := "10, 20, 30, 40"

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, ok := l.WholeMatch(input)
				if !ok || len(got) != 4 {
					done <- false
					return
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		if !<-done {
			t.Error("concurrent WholeMatch() failed")
		}
	}
}
