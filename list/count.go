// Package list implements list matchers: custom consuming nodes that match a
// sequence of one or more occurrences and return the ordered per-occurrence
// outputs.
//
// ComponentList repeats a component, optionally joined by a separator, either
// as many times as possible or an exact number of times. SeparatorList splits
// a region of the input around a literal separator and stops at an optional
// lookahead literal.
//
// Both are immutable after construction, hold no mutable state and are safe
// for concurrent use.
package list

import (
	"fmt"
	"strconv"
)

// Count selects how many occurrences a ComponentList matches. The zero value
// is Unbounded.
type Count struct {
	n int
}

// Unbounded matches as many occurrences as possible, at least one.
var Unbounded = Count{}

// Exactly matches precisely n occurrences. It panics if n < 1.
func Exactly(n int) Count {
	if n < 1 {
		panic(fmt.Sprintf("list: occurrence count must be positive, got %d", n))
	}
	return Count{n: n}
}

// Exact returns the required number of occurrences, if any.
func (c Count) Exact() (int, bool) {
	return c.n, c.n > 0
}

// String returns "unbounded" or the exact count.
func (c Count) String() string {
	if c.n == 0 {
		return "unbounded"
	}
	return strconv.Itoa(c.n)
}
