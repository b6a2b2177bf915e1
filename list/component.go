package list

import (
	"iter"

	"github.com/coregx/relist/pattern"
)

// ComponentList matches occurrences of a component, optionally joined by a
// separator, and outputs each occurrence's output in order.
//
// Matching runs in two passes. The repetition pattern built from the
// occurrence unit is matched greedily at the start position to fix the span
// of the list; the repetition does not expose per-iteration outputs, so the
// span is then rescanned for non-overlapping matches of the component alone.
//
// A list never matches zero occurrences, even though the unbounded repetition
// can; and a list with an exact count only matches with that many outputs.
type ComponentList[T any] struct {
	component  pattern.Pattern[T]
	separator  pattern.Pattern[struct{}]
	count      Count
	repetition pattern.Pattern[[]struct{}]
}

// NewComponentList returns a list of component without separator.
func NewComponentList[T any](component pattern.Pattern[T], count Count) *ComponentList[T] {
	return newComponentList(component, nil, count)
}

// NewSeparatedList returns a list of component joined by separator. A
// separator after the last occurrence is consumed but not required. A nil
// separator gives the same list as NewComponentList.
func NewSeparatedList[T, S any](component pattern.Pattern[T], separator pattern.Pattern[S], count Count) *ComponentList[T] {
	if separator == nil {
		return newComponentList(component, nil, count)
	}
	return newComponentList(component, pattern.Skip(separator), count)
}

func newComponentList[T any](component pattern.Pattern[T], separator pattern.Pattern[struct{}], count Count) *ComponentList[T] {
	unit := pattern.Skip(component)
	if separator != nil {
		unit = pattern.Skip(pattern.Seq(component, pattern.Optional(separator)))
	}

	repetition := pattern.ZeroOrMore(unit)
	if n, ok := count.Exact(); ok {
		repetition = pattern.Exactly(unit, n)
	}

	return &ComponentList[T]{
		component:  component,
		separator:  separator,
		count:      count,
		repetition: repetition,
	}
}

// Count returns the configured occurrence count.
func (l *ComponentList[T]) Count() Count {
	return l.count
}

// Separated reports whether the list has a separator.
func (l *ComponentList[T]) Separated() bool {
	return l.separator != nil
}

// Consume matches the list at start within bounds. It returns the end of the
// consumed span and the occurrence outputs in match order.
func (l *ComponentList[T]) Consume(input string, start int, bounds pattern.Bounds) (int, []T, bool) {
	span, ok := pattern.PrefixMatch(l.repetition, input, start, bounds)
	if !ok {
		return start, nil, false
	}

	found := pattern.FindAll(l.component, input, pattern.Bounds{Lower: start, Upper: span.End})
	if len(found) == 0 {
		return start, nil, false
	}
	if n, exact := l.count.Exact(); exact && len(found) != n {
		return start, nil, false
	}

	outputs := make([]T, len(found))
	for i, m := range found {
		outputs[i] = m.Output
	}
	return span.End, outputs, true
}

// Matches yields the list's single match at pos, if any, so that a
// ComponentList composes with other patterns.
func (l *ComponentList[T]) Matches(input string, pos int, bounds pattern.Bounds) iter.Seq2[int, []T] {
	return pattern.Consuming[[]T](l).Matches(input, pos, bounds)
}
