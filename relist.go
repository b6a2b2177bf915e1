// Package relist provides list components for the pattern engine: a sequence
// of one or more occurrences of a sub-pattern, optionally joined by a
// separator, whose output is the ordered list of occurrence outputs.
//
// A pattern engine's own repetition collapses repeated captures into a single
// result. A List instead keeps every occurrence:
//
//	l := relist.SeparatedString(pattern.Digit, ", ", 0)
//	out, ok := l.WholeMatch("1, 2, 3, 4")
//	// out == []string{"1", "2", "3", "4"}, ok == true
//
// Lists come in two forms:
//   - Component lists (Of, Separated, New) repeat a component as many times
//     as possible or an exact number of times. Anything after the list is
//     left for the next element of an enclosing pattern.
//   - Split lists (Split, SplitBefore, NewSplit) cut the input at a literal
//     separator, stopping before an optional lookahead literal.
//
// A List is a pattern.Pattern, so it composes with sequencing, captures and
// transforms:
//
//	ints := pattern.TryMap[[]string](l, func(parts []string) ([]int, bool) {
//	    ...
//	})
//
// A List never matches zero occurrences. All lists are immutable and safe to
// use concurrently from multiple goroutines.
package relist

import (
	"fmt"
	"iter"

	"github.com/coregx/relist/list"
	"github.com/coregx/relist/pattern"
)

// List is a list component whose output is the ordered slice of occurrence
// outputs.
type List[T any] struct {
	consumer pattern.Consumer[[]T]
	desc     string
}

// Of returns a list of component repeated count times. If count isn't
// greater than zero, component is repeated as many times as possible.
func Of[T any](component pattern.Pattern[T], count int) *List[T] {
	return &List[T]{
		consumer: list.NewComponentList(component, countOf(count)),
		desc:     describe(count, ""),
	}
}

// OfFunc is like Of with the component produced by build.
//
// Example:
//
//	l := relist.OfFunc(0, func() pattern.Pattern[string] {
//	    return pattern.Concat(pattern.Digit, pattern.Literal(";"))
//	})
func OfFunc[T any](count int, build func() pattern.Pattern[T]) *List[T] {
	return Of(build(), count)
}

// Separated returns a list of component joined by separator, repeated count
// times, or as many times as possible if count isn't greater than zero. The
// separator is dropped from the output.
func Separated[T, S any](component pattern.Pattern[T], separator pattern.Pattern[S], count int) *List[T] {
	return &List[T]{
		consumer: list.NewSeparatedList(component, separator, countOf(count)),
		desc:     describe(count, "pattern"),
	}
}

// SeparatedString is like Separated with a literal separator.
func SeparatedString[T any](component pattern.Pattern[T], separator string, count int) *List[T] {
	l := Separated(component, pattern.Literal(separator), count)
	l.desc = describe(count, fmt.Sprintf("%q", separator))
	return l
}

// SeparatedFunc is like Separated with the component and separator produced
// by build and separator.
//
// Example:
//
//	l := relist.SeparatedFunc(2,
//	    func() pattern.Pattern[string] { return pattern.Digit },
//	    func() pattern.Pattern[string] { return pattern.Literal(", ") },
//	)
func SeparatedFunc[T, S any](count int, build func() pattern.Pattern[T], separator func() pattern.Pattern[S]) *List[T] {
	return Separated(build(), separator(), count)
}

// Split returns a list of the substrings between occurrences of separator,
// running to the end of the enclosing match bounds.
func Split(separator string) *List[string] {
	return SplitBefore(separator)
}

// SplitBefore returns a list of the substrings between occurrences of
// separator, stopping before the first occurrence of any lookahead literal.
// The lookahead is neither consumed nor part of the output.
//
// Example:
//
//	l := relist.SplitBefore(", ", " - ")
//	out, _ := l.FirstMatch("1, 2, 3, 4 - 5, 6, 7, 8")
//	// out == []string{"1", "2", "3", "4"}
func SplitBefore(separator string, lookahead ...string) *List[string] {
	desc := fmt.Sprintf("split(%q)", separator)
	if len(lookahead) > 0 {
		desc = fmt.Sprintf("split(%q before %q)", separator, lookahead)
	}
	return &List[string]{
		consumer: list.NewSeparatorList(separator, lookahead...),
		desc:     desc,
	}
}

// New returns a component list shaped by config. config.Separator, if not
// empty, is a literal separator.
func New[T any](component pattern.Pattern[T], config Config) (*List[T], error) {
	if err := config.validateComponent(); err != nil {
		return nil, err
	}
	if config.Separator == "" {
		return Of(component, config.Count), nil
	}
	return SeparatedString(component, config.Separator, config.Count), nil
}

// MustNew is like New but panics if config is invalid.
func MustNew[T any](component pattern.Pattern[T], config Config) *List[T] {
	l, err := New(component, config)
	if err != nil {
		panic(err)
	}
	return l
}

// NewSplit returns a split list shaped by config.
func NewSplit(config Config) (*List[string], error) {
	if err := config.validateSplit(); err != nil {
		return nil, err
	}
	return SplitBefore(config.Separator, config.Lookahead...), nil
}

// Consume matches the list at start within bounds, returning the end of the
// consumed span and the outputs.
func (l *List[T]) Consume(input string, start int, bounds pattern.Bounds) (int, []T, bool) {
	return l.consumer.Consume(input, start, bounds)
}

// Matches implements pattern.Pattern. A list yields at most one alternative.
func (l *List[T]) Matches(input string, pos int, bounds pattern.Bounds) iter.Seq2[int, []T] {
	return pattern.Consuming(l.consumer).Matches(input, pos, bounds)
}

// WholeMatch returns the outputs if the list matches all of s.
func (l *List[T]) WholeMatch(s string) ([]T, bool) {
	return pattern.WholeMatch[[]T](l, s)
}

// FirstMatch returns the outputs of the leftmost match of the list in s.
func (l *List[T]) FirstMatch(s string) ([]T, bool) {
	m, ok := pattern.FirstMatch[[]T](l, s)
	return m.Output, ok
}

// MatchString reports whether the list matches anywhere in s.
func (l *List[T]) MatchString(s string) bool {
	_, ok := pattern.FirstMatch[[]T](l, s)
	return ok
}

// String returns a short description of the list's shape.
func (l *List[T]) String() string {
	return l.desc
}

// countOf maps a facade count to a list.Count: anything not greater than
// zero is unbounded.
func countOf(n int) list.Count {
	if n <= 0 {
		return list.Unbounded
	}
	return list.Exactly(n)
}

func describe(count int, separator string) string {
	n := countOf(count).String()
	if separator == "" {
		return "list(" + n + ")"
	}
	return "list(" + n + ", separated by " + separator + ")"
}
