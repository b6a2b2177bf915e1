package pattern

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Literal returns a pattern matching exactly s. Its output is s.
func Literal(s string) Pattern[string] {
	return literal(s)
}

type literal string

func (l literal) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
	s := string(l)
	if !bounds.Contains(pos) || len(s) > bounds.Upper-pos || !strings.HasPrefix(input[pos:], s) {
		return none[string]
	}
	return one(pos+len(s), s)
}

// Class returns a pattern matching one rune for which pred reports true. Its
// output is the matched rune as a string. Invalid UTF-8 is presented to pred
// as utf8.RuneError, one byte at a time.
func Class(pred func(rune) bool) Pattern[string] {
	return class(pred)
}

type class func(rune) bool

func (c class) Matches(input string, pos int, bounds Bounds) iter.Seq2[int, string] {
	if !bounds.Contains(pos) || pos == bounds.Upper {
		return none[string]
	}
	r, size := utf8.DecodeRuneInString(input[pos:bounds.Upper])
	if !c(r) {
		return none[string]
	}
	return one(pos+size, input[pos:pos+size])
}

// Predefined single-rune classes.
var (
	// Digit matches one Unicode decimal digit.
	Digit = Class(unicode.IsDigit)

	// Letter matches one Unicode letter.
	Letter = Class(unicode.IsLetter)

	// Space matches one Unicode white space rune.
	Space = Class(unicode.IsSpace)

	// Word matches one letter, digit or underscore.
	Word = Class(func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})

	// Any matches any one rune.
	Any = Class(func(rune) bool { return true })
)
