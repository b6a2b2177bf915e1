package pattern

import (
	"iter"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/relist/simd"
)

// LiteralSet is an immutable set of literal strings that can be searched for
// as a group and matched as an alternation.
//
// A set of one literal is searched with simd.Index. Larger sets are compiled
// into an Aho-Corasick automaton with leftmost-first semantics: among the
// literals occurring at the leftmost position, the one added first wins.
type LiteralSet struct {
	literals []string
	auto     *ahocorasick.Automaton
}

// NewLiteralSet builds a set from literals, in preference order. Empty
// literals are dropped; a set left with no literal is an error.
func NewLiteralSet(literals ...string) (*LiteralSet, error) {
	s := &LiteralSet{}
	for _, lit := range literals {
		if lit != "" {
			s.literals = append(s.literals, lit)
		}
	}
	if len(s.literals) == 0 {
		return nil, ErrEmptyLiteralSet
	}
	if len(s.literals) == 1 {
		return s, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range s.literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, &CompileError{Pattern: strings.Join(s.literals, "|"), Err: err}
	}
	s.auto = auto
	return s, nil
}

// MustLiteralSet is like NewLiteralSet but panics on error.
func MustLiteralSet(literals ...string) *LiteralSet {
	s, err := NewLiteralSet(literals...)
	if err != nil {
		panic(err)
	}
	return s
}

// Literals returns a copy of the literals in preference order.
func (s *LiteralSet) Literals() []string {
	return append([]string(nil), s.literals...)
}

// Index returns the span of the first occurrence of any literal within
// input[bounds.Lower:bounds.Upper], the one with the leftmost start. Of
// several literals starting there, the earliest in preference order is
// reported.
func (s *LiteralSet) Index(input string, bounds Bounds) (start, end int, ok bool) {
	if !bounds.valid(input) {
		return -1, -1, false
	}
	window := input[bounds.Lower:bounds.Upper]

	if s.auto == nil {
		i := simd.Index(window, s.literals[0])
		if i < 0 {
			return -1, -1, false
		}
		return bounds.Lower + i, bounds.Lower + i + len(s.literals[0]), true
	}

	m := s.auto.Find([]byte(window), 0)
	if m == nil {
		return -1, -1, false
	}
	start, end = s.leftmost(window, m.Start, m.End)
	return bounds.Lower + start, bounds.Lower + end, true
}

// leftmost narrows the automaton hit [start, end) in window to the occurrence
// with the leftmost start. The automaton reports the match that ends first,
// so a longer literal may start before it and end after it. Only the prefix of
// window in which such a literal could start is searched again. On equal
// starts the earlier literal in preference order wins.
func (s *LiteralSet) leftmost(window string, start, end int) (int, int) {
	rank := len(s.literals)
	for i, lit := range s.literals {
		hi := min(len(window), start+len(lit))
		j := simd.Index(window[:hi], lit)
		if j < 0 {
			continue
		}
		if j < start || (j == start && i < rank) {
			start, end, rank = j, j+len(lit), i
		}
	}
	return start, end
}

// Matches yields every literal of the set that occurs at pos, in preference
// order, so a LiteralSet is itself a Pattern.
func (s *LiteralSet) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if !bounds.Contains(pos) || !bounds.valid(input) {
			return
		}
		rest := input[pos:bounds.Upper]
		for _, lit := range s.literals {
			if strings.HasPrefix(rest, lit) && !yield(pos+len(lit), lit) {
				return
			}
		}
	}
}

// OneOf returns a pattern matching any of literals, preferring earlier ones.
// It panics if no literal is non-empty.
func OneOf(literals ...string) Pattern[string] {
	return MustLiteralSet(literals...)
}

// Index returns the start of the first occurrence of literal within
// input[bounds.Lower:bounds.Upper].
func Index(input, literal string, bounds Bounds) (int, bool) {
	if !bounds.valid(input) {
		return -1, false
	}
	i := simd.Index(input[bounds.Lower:bounds.Upper], literal)
	if i < 0 {
		return -1, false
	}
	return bounds.Lower + i, true
}

// SplitLiteral partitions s around every occurrence of sep. The separator is
// a plain string, never a pattern. The result has at least one element and
// joining it with sep gives back s.
func SplitLiteral(s, sep string) []string {
	return simd.Split(s, sep)
}
