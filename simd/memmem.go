package simd

import "unicode/utf8"

// Index returns the index of the first instance of needle in haystack, or -1
// if needle is not present. An empty needle matches at 0, as in strings.Index.
//
// Algorithm:
//  1. Pick the rarest byte of needle using the byte rank table
//  2. Use IndexByte to find candidates for that byte in haystack
//  3. Verify the full needle around each candidate
//
// Example:
//
//	pos := simd.Index("aaaaaabaaaa", "aab")
//	// pos == 4
func Index(haystack, needle string) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return IndexByte(haystack, needle[0])
	}

	rb, ri := rareByte(needle)
	last := len(haystack) - n // last valid needle start

	from := ri
	for from < len(haystack) {
		p := IndexByte(haystack[from:], rb)
		if p < 0 {
			return -1
		}
		start := from + p - ri
		if start > last {
			return -1
		}
		if haystack[start:start+n] == needle {
			return start
		}
		from += p + 1
	}
	return -1
}

// Count returns the number of non-overlapping instances of needle in haystack.
// If needle is empty, Count returns 1 + the number of runes in haystack, as
// strings.Count does.
func Count(haystack, needle string) int {
	if needle == "" {
		return utf8.RuneCountInString(haystack) + 1
	}
	c := 0
	for {
		i := Index(haystack, needle)
		if i < 0 {
			return c
		}
		c++
		haystack = haystack[i+len(needle):]
	}
}
