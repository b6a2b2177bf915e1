package pattern

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// PrefixMatch returns the preferred match of p anchored at start within
// bounds. The match must begin at start but need not reach bounds.Upper.
// For greedy repetition the preferred match is the longest one.
func PrefixMatch[T any](p Pattern[T], input string, start int, bounds Bounds) (Match[T], bool) {
	if !bounds.valid(input) || !bounds.Contains(start) {
		return Match[T]{}, false
	}
	for end, out := range p.Matches(input, start, bounds) {
		return Match[T]{Start: start, End: end, Output: out}, true
	}
	return Match[T]{}, false
}

// WholeMatch returns the output of the preferred match of p that spans all
// of input, backtracking through p's alternatives until one ends at
// len(input).
func WholeMatch[T any](p Pattern[T], input string) (T, bool) {
	for end, out := range p.Matches(input, 0, Whole(input)) {
		if end == len(input) {
			return out, true
		}
	}
	var zero T
	return zero, false
}

// FirstMatch returns the leftmost match of p in input.
func FirstMatch[T any](p Pattern[T], input string) (Match[T], bool) {
	for m := range All(p, input, Whole(input)) {
		return m, true
	}
	return Match[T]{}, false
}

// All returns an iterator over successive non-overlapping matches of p within
// bounds, left to right. As with regexp's "All" functions, the scan moves one
// rune forward after an empty match, and an empty match abutting the previous
// match is skipped.
func All[T any](p Pattern[T], input string, bounds Bounds) iter.Seq[Match[T]] {
	return func(yield func(Match[T]) bool) {
		if !bounds.valid(input) {
			return
		}
		prevEnd := -1
		for pos := bounds.Lower; pos <= bounds.Upper; {
			m, ok := PrefixMatch(p, input, pos, bounds)
			if ok && (m.End > m.Start || m.Start != prevEnd) {
				if !yield(m) {
					return
				}
				prevEnd = m.End
				if m.End > pos {
					pos = m.End
					continue
				}
			}
			if pos == bounds.Upper {
				return
			}
			_, size := utf8.DecodeRuneInString(input[pos:bounds.Upper])
			pos += size
		}
	}
}

// FindAll returns all successive non-overlapping matches of p within bounds.
// See All for the treatment of empty matches.
func FindAll[T any](p Pattern[T], input string, bounds Bounds) []Match[T] {
	return slices.Collect(All(p, input, bounds))
}
