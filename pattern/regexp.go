package pattern

import (
	"iter"

	"github.com/coregx/coregex"
)

// Regexp compiles expr with coregex and returns an atomic leaf matching it at
// a fixed position. Syntax is the same as Go's regexp package.
//
// The leaf is anchored at the match position and sees only
// input[pos:bounds.Upper], so `$` matches at the upper bound. It yields only
// the leftmost-first match at the position; use the combinators when
// backtracking into the leaf is required.
func Regexp(expr string) (Pattern[string], error) {
	// expr is compiled on its own first so that unbalanced groups cannot
	// escape the anchoring wrapper.
	if _, err := coregex.Compile(expr); err != nil {
		return nil, &CompileError{Pattern: expr, Err: err}
	}
	re, err := coregex.Compile(`^(?:` + expr + `)`)
	if err != nil {
		return nil, &CompileError{Pattern: expr, Err: err}
	}
	return regexpLeaf{expr: expr, re: re}, nil
}

// MustRegexp is like Regexp but panics if expr cannot be compiled.
func MustRegexp(expr string) Pattern[string] {
	p, err := Regexp(expr)
	if err != nil {
		panic(err)
	}
	return p
}

type regexpLeaf struct {
	expr string
	re   *coregex.Regex
}

func (l regexpLeaf) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
	if !bounds.Contains(pos) {
		return none[string]
	}
	loc := l.re.FindStringIndex(input[pos:bounds.Upper])
	if loc == nil || loc[0] != 0 {
		return none[string]
	}
	end := pos + loc[1]
	return one(end, input[pos:end])
}

// String returns the expression the leaf was compiled from.
func (l regexpLeaf) String() string {
	return l.expr
}
