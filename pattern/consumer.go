package pattern

import "iter"

// Consumer is a custom consuming node: a matcher that is handed the whole
// input, the position to match at and the bounds of the enclosing attempt,
// and either consumes a prefix of input[start:bounds.Upper] or reports no
// match.
//
// A Consumer is atomic. The engine calls it once per position and never asks
// it for a second alternative; backtracking happens in the nodes around it.
type Consumer[T any] interface {
	Consume(input string, start int, bounds Bounds) (end int, output T, ok bool)
}

// ConsumerFunc adapts an ordinary function to the Consumer interface.
type ConsumerFunc[T any] func(input string, start int, bounds Bounds) (int, T, bool)

// Consume calls f(input, start, bounds).
func (f ConsumerFunc[T]) Consume(input string, start int, bounds Bounds) (int, T, bool) {
	return f(input, start, bounds)
}

// Consuming returns a pattern that delegates to c. A result whose end lies
// outside [start, bounds.Upper] is treated as no match.
func Consuming[T any](c Consumer[T]) Pattern[T] {
	return consuming[T]{c: c}
}

type consuming[T any] struct {
	c Consumer[T]
}

func (p consuming[T]) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, T] {
	if !bounds.Contains(pos) {
		return none[T]
	}
	end, out, ok := p.c.Consume(input, pos, bounds)
	if !ok || end < pos || end > bounds.Upper {
		return none[T]
	}
	return one(end, out)
}
