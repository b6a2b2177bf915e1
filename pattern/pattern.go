// Package pattern implements the combinator engine that list matchers plug
// into.
//
// A Pattern matches at a fixed position of an input string and produces a
// typed output. Patterns are composed with ordinary functions (Seq, Optional,
// Repeat, Alt, Map) and searched with PrefixMatch, FindAll, WholeMatch and
// FirstMatch. Composition is backtracking: a pattern yields every way it can
// match, most preferred first, and the enclosing pattern moves on to the next
// alternative when a later element fails.
//
// Leaves are literals, single-rune classes, literal sets (Aho-Corasick) and
// regular expressions (coregex). Custom consuming nodes are plugged in through
// the Consumer interface.
//
// All patterns are immutable after construction and safe for concurrent use.
//
// Basic usage:
//
//	digits := pattern.Capture(pattern.OneOrMore(pattern.Digit))
//	m, ok := pattern.FirstMatch(digits, "order 42")
//	// m.Output == "42", ok == true
package pattern

import "iter"

// Pattern is a matchable unit producing an output of type T.
type Pattern[T any] interface {
	// Matches yields every way the pattern can match input starting exactly
	// at pos, reading nothing at or beyond bounds.Upper. Each alternative is
	// yielded as its end position and output, most preferred first.
	Matches(input string, pos int, bounds Bounds) iter.Seq2[int, T]
}

// Func adapts an ordinary function to the Pattern interface.
type Func[T any] func(input string, pos int, bounds Bounds) iter.Seq2[int, T]

// Matches calls f(input, pos, bounds).
func (f Func[T]) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, T] {
	return f(input, pos, bounds)
}

// Bounds is the half-open byte range [Lower, Upper) of the input that a match
// attempt may examine.
type Bounds struct {
	Lower int
	Upper int
}

// Whole returns the bounds spanning all of input.
func Whole(input string) Bounds {
	return Bounds{Lower: 0, Upper: len(input)}
}

// Contains reports whether pos is a valid match position within b. The upper
// bound itself is valid: an empty match may start there.
func (b Bounds) Contains(pos int) bool {
	return pos >= b.Lower && pos <= b.Upper
}

// Len returns the number of bytes covered by b.
func (b Bounds) Len() int {
	return b.Upper - b.Lower
}

// valid reports whether b is a well-formed window of input.
func (b Bounds) valid(input string) bool {
	return b.Lower >= 0 && b.Lower <= b.Upper && b.Upper <= len(input)
}

// Match is a successful match of a pattern.
type Match[T any] struct {
	Start  int
	End    int
	Output T
}

// Text returns the span of input covered by the match.
func (m Match[T]) Text(input string) string {
	return input[m.Start:m.End]
}

// Len returns the number of bytes consumed by the match.
func (m Match[T]) Len() int {
	return m.End - m.Start
}

// none is the empty sequence of alternatives.
func none[T any](yield func(int, T) bool) {}

// one returns a sequence holding the single alternative (end, out).
func one[T any](end int, out T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		yield(end, out)
	}
}
