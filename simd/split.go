package simd

// Split slices s into all substrings separated by sep and returns them in
// order. Joining the result with sep reproduces s exactly.
//
// The result always has at least one element. Unlike strings.Split, an empty
// sep does not explode s into runes: s is returned whole.
//
// Example:
//
//	parts := simd.Split("1, 2, 3", ", ")
//	// parts == []string{"1", "2", "3"}
func Split(s, sep string) []string {
	if sep == "" {
		return []string{s}
	}

	parts := make([]string, 0, Count(s, sep)+1)
	for {
		i := Index(s, sep)
		if i < 0 {
			break
		}
		parts = append(parts, s[:i])
		s = s[i+len(sep):]
	}
	return append(parts, s)
}
