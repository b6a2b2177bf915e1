package pattern

import (
	"fmt"
	"iter"
	"slices"
)

// Unbounded is the atMost argument to Repeat for "no upper limit".
const Unbounded = -1

// Repeat returns a greedy pattern matching p at least atLeast and at most
// atMost times (atMost == Unbounded for no limit). Its output holds the
// output of each iteration in order.
//
// Alternatives with more iterations are preferred. An iteration that consumes
// nothing is only taken while fewer than atLeast iterations have matched; past
// the minimum, a zero-width iteration ends the loop, so repetition of a
// pattern that can match the empty string always terminates.
//
// Iterations are tracked on the heap, so long repetitions do not exhaust the
// goroutine stack. Each (position, iteration count) pair is expanded to
// completion at most once without producing a match, which keeps a failing
// repetition of an ambiguous pattern (such as Exactly(OneOrMore(Digit), n) on
// too few digits) polynomial. Enumerating every alternative of a repetition
// that does match can still take time exponential in the input, as with any
// backtracking engine.
//
// Repeat panics if atLeast < 0 or atMost is neither Unbounded nor >= atLeast.
func Repeat[T any](p Pattern[T], atLeast, atMost int) Pattern[[]T] {
	if atLeast < 0 || (atMost != Unbounded && atMost < atLeast) {
		panic(fmt.Sprintf("pattern: invalid repeat range {%d,%d}", atLeast, atMost))
	}
	return repeat[T]{p: p, min: atLeast, max: atMost}
}

// Exactly returns a pattern matching p exactly n times.
func Exactly[T any](p Pattern[T], n int) Pattern[[]T] {
	return Repeat(p, n, n)
}

// ZeroOrMore returns a greedy pattern matching p any number of times.
func ZeroOrMore[T any](p Pattern[T]) Pattern[[]T] {
	return Repeat(p, 0, Unbounded)
}

// OneOrMore returns a greedy pattern matching p at least once.
func OneOrMore[T any](p Pattern[T]) Pattern[[]T] {
	return Repeat(p, 1, Unbounded)
}

type repeat[T any] struct {
	p   Pattern[T]
	min int
	max int
}

// frame is one iteration of the backtracking search: the position the next
// iteration starts at and how many alternatives of p were tried there.
type frame struct {
	pos    int
	tried  int
	done   bool
	yields int
}

// state identifies a frame by what decides its outcome. Whether any
// alternative can be completed from a frame depends only on its position and
// on how many iterations precede it.
type state struct {
	pos   int
	depth int
}

// Matches walks the iterations depth first on an explicit stack, so the
// goroutine stack does not grow with the number of iterations. A frame whose
// subtree yielded nothing is recorded as dead and never expanded again.
func (r repeat[T]) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if !bounds.Contains(pos) {
			return
		}

		var (
			acc    []T
			dead   map[state]struct{}
			yields int
		)
		stack := []frame{{pos: pos}}
		for len(stack) > 0 {
			depth := len(stack) - 1
			top := &stack[depth]

			if !top.done && (r.max == Unbounded || depth < r.max) {
				end, v, ok := r.alternative(input, top.pos, bounds, top.tried)
				top.tried++
				if !ok {
					top.done = true
					continue
				}
				if end == top.pos && depth >= r.min {
					continue
				}
				if _, ok := dead[state{end, depth + 1}]; ok {
					continue
				}
				acc = append(acc[:depth], v)
				stack = append(stack, frame{pos: end, yields: yields})
				continue
			}

			f := *top
			stack = stack[:depth]
			if depth >= r.min {
				yields++
				if !yield(f.pos, slices.Clone(acc[:depth])) {
					return
				}
			}
			if yields == f.yields {
				if dead == nil {
					dead = make(map[state]struct{})
				}
				dead[state{f.pos, depth}] = struct{}{}
			}
		}
	}
}

// alternative returns the alternative of p at pos that follows the first
// skip ones. Patterns yield the same alternatives on every call, so a frame
// resumes by enumerating again instead of holding a suspended iterator.
func (r repeat[T]) alternative(input string, pos int, bounds Bounds, skip int) (int, T, bool) {
	i := 0
	for end, v := range r.p.Matches(input, pos, bounds) {
		if i == skip {
			return end, v, true
		}
		i++
	}
	var zero T
	return pos, zero, false
}
