package pattern

import "iter"

// Pair is the output of a two-element sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe is the output of an optional pattern.
type Maybe[T any] struct {
	Value T
	Valid bool
}

// Seq returns a pattern matching a followed by b. Alternatives are tried in
// order: every alternative of b after the first alternative of a, then the
// next alternative of a, and so on.
func Seq[A, B any](a Pattern[A], b Pattern[B]) Pattern[Pair[A, B]] {
	return Func[Pair[A, B]](func(input string, pos int, bounds Bounds) iter.Seq2[int, Pair[A, B]] {
		return func(yield func(int, Pair[A, B]) bool) {
			for mid, av := range a.Matches(input, pos, bounds) {
				for end, bv := range b.Matches(input, mid, bounds) {
					if !yield(end, Pair[A, B]{First: av, Second: bv}) {
						return
					}
				}
			}
		}
	})
}

// Left returns a pattern matching a followed by b that keeps a's output.
func Left[A, B any](a Pattern[A], b Pattern[B]) Pattern[A] {
	return Map(Seq(a, b), func(p Pair[A, B]) A { return p.First })
}

// Right returns a pattern matching a followed by b that keeps b's output.
func Right[A, B any](a Pattern[A], b Pattern[B]) Pattern[B] {
	return Map(Seq(a, b), func(p Pair[A, B]) B { return p.Second })
}

// Concat returns a pattern matching each of ps in sequence. Its output is the
// matched text.
func Concat(ps ...Pattern[string]) Pattern[string] {
	return Capture(concat(ps))
}

type concat []Pattern[string]

func (c concat) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		c.walk(input, pos, bounds, yield)
	}
}

// walk matches c[0] at pos and the rest after it. It returns false once
// yield has asked to stop.
func (c concat) walk(input string, pos int, bounds Bounds, yield func(int, string) bool) bool {
	if len(c) == 0 {
		return yield(pos, "")
	}
	for end := range c[0].Matches(input, pos, bounds) {
		if !c[1:].walk(input, end, bounds, yield) {
			return false
		}
	}
	return true
}

// Alt returns a pattern matching any of ps, preferring earlier ones.
func Alt[T any](ps ...Pattern[T]) Pattern[T] {
	return Func[T](func(input string, pos int, bounds Bounds) iter.Seq2[int, T] {
		return func(yield func(int, T) bool) {
			for _, p := range ps {
				for end, v := range p.Matches(input, pos, bounds) {
					if !yield(end, v) {
						return
					}
				}
			}
		}
	})
}

// Optional returns a pattern matching p or nothing, preferring p.
func Optional[T any](p Pattern[T]) Pattern[Maybe[T]] {
	return Func[Maybe[T]](func(input string, pos int, bounds Bounds) iter.Seq2[int, Maybe[T]] {
		return func(yield func(int, Maybe[T]) bool) {
			for end, v := range p.Matches(input, pos, bounds) {
				if !yield(end, Maybe[T]{Value: v, Valid: true}) {
					return
				}
			}
			if bounds.Contains(pos) {
				yield(pos, Maybe[T]{})
			}
		}
	})
}

// Map returns a pattern matching p whose output is f applied to p's output.
func Map[T, U any](p Pattern[T], f func(T) U) Pattern[U] {
	return TryMap(p, func(v T) (U, bool) { return f(v), true })
}

// TryMap returns a pattern matching p whose output is f applied to p's
// output. An alternative for which f reports false is rejected, and matching
// continues with p's next alternative.
func TryMap[T, U any](p Pattern[T], f func(T) (U, bool)) Pattern[U] {
	return Func[U](func(input string, pos int, bounds Bounds) iter.Seq2[int, U] {
		return func(yield func(int, U) bool) {
			for end, v := range p.Matches(input, pos, bounds) {
				u, ok := f(v)
				if ok && !yield(end, u) {
					return
				}
			}
		}
	})
}

// Capture returns a pattern matching p whose output is the matched text.
func Capture[T any](p Pattern[T]) Pattern[string] {
	return Func[string](func(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
		return func(yield func(int, string) bool) {
			for end := range p.Matches(input, pos, bounds) {
				if !yield(end, input[pos:end]) {
					return
				}
			}
		}
	})
}

// Skip returns a pattern matching p that discards its output.
func Skip[T any](p Pattern[T]) Pattern[struct{}] {
	return Func[struct{}](func(input string, pos int, bounds Bounds) iter.Seq2[int, struct{}] {
		return func(yield func(int, struct{}) bool) {
			for end := range p.Matches(input, pos, bounds) {
				if !yield(end, struct{}{}) {
					return
				}
			}
		}
	})
}
