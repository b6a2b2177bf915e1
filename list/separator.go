package list

import (
	"iter"

	"github.com/coregx/relist/pattern"
)

// SeparatorList splits the input around a literal separator, outputting the
// raw substrings between separators.
//
// Without a lookahead the list consumes everything up to the upper bound.
// With one, it stops at the first occurrence of any lookahead literal; the
// lookahead text is neither consumed nor split. The separator is always a
// plain string and never interpreted as a pattern.
type SeparatorList struct {
	separator string
	lookahead *pattern.LiteralSet
}

// NewSeparatorList returns a list split by separator that stops before the
// first of the lookahead literals. Empty lookahead literals are ignored; with
// none left the list runs to the upper bound.
func NewSeparatorList(separator string, lookahead ...string) *SeparatorList {
	l := &SeparatorList{separator: separator}
	if set, err := pattern.NewLiteralSet(lookahead...); err == nil {
		l.lookahead = set
	}
	return l
}

// Separator returns the separator literal.
func (l *SeparatorList) Separator() string {
	return l.separator
}

// Lookahead returns the lookahead literals, if any.
func (l *SeparatorList) Lookahead() []string {
	if l.lookahead == nil {
		return nil
	}
	return l.lookahead.Literals()
}

// Consume splits input from start up to the lookahead boundary, or up to
// bounds.Upper when there is none. It returns the end of the consumed region
// and the parts in order.
func (l *SeparatorList) Consume(input string, start int, bounds pattern.Bounds) (int, []string, bool) {
	if bounds.Lower < 0 || bounds.Upper > len(input) || !bounds.Contains(start) {
		return start, nil, false
	}

	end := bounds.Upper
	if l.lookahead != nil {
		if at, _, ok := l.lookahead.Index(input, pattern.Bounds{Lower: start, Upper: bounds.Upper}); ok {
			end = at
		}
	}

	parts := pattern.SplitLiteral(input[start:end], l.separator)
	if len(parts) == 0 {
		return start, nil, false
	}
	return end, parts, true
}

// Matches yields the list's single match at pos, if any, so that a
// SeparatorList composes with other patterns.
func (l *SeparatorList) Matches(input string, pos int, bounds pattern.Bounds) iter.Seq2[int, []string] {
	return pattern.Consuming[[]string](l).Matches(input, pos, bounds)
}
