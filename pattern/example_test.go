package pattern_test

import (
	"fmt"
	"strconv"

	"github.com/coregx/relist/pattern"
)

func ExamplePrefixMatch() {
	p := pattern.Capture(pattern.OneOrMore(pattern.Digit))
	m, ok := pattern.PrefixMatch(p, "42 apples", 0, pattern.Whole("42 apples"))
	fmt.Println(m.Output, m.End, ok)
	// Output: 42 2 true
}

func ExampleFindAll() {
	number := pattern.TryMap(pattern.MustRegexp(`\d+`), func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	input := "a1 b22 c333"
	for _, m := range pattern.FindAll(number, input, pattern.Whole(input)) {
		fmt.Print(m.Output, " ")
	}
	fmt.Println()
	// Output: 1 22 333
}

func ExampleConsuming() {
	// A consumer taking everything up to the next semicolon.
	field := pattern.Consuming[string](pattern.ConsumerFunc[string](
		func(input string, start int, b pattern.Bounds) (int, string, bool) {
			end, ok := pattern.Index(input, ";", pattern.Bounds{Lower: start, Upper: b.Upper})
			if !ok {
				end = b.Upper
			}
			return end, input[start:end], true
		}))
	record := pattern.Seq(field, pattern.Right(pattern.Literal(";"), field))
	out, ok := pattern.WholeMatch(record, "key;value")
	fmt.Println(out.First, out.Second, ok)
	// Output: key value true
}
