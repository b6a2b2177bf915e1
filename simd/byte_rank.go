package simd

// byteRanks holds an approximate frequency rank for every byte value in
// English text and source code. Lower rank means rarer, which makes the byte a
// better anchor for candidate search.
var byteRanks = func() [256]byte {
	var t [256]byte
	for b := 0x80; b <= 0xFF; b++ {
		t[b] = 5
	}
	for b := 'a'; b <= 'z'; b++ {
		t[b] = 150
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] = 80
	}
	for b := '0'; b <= '9'; b++ {
		t[b] = 140
	}
	for _, b := range "etaoinsrh" {
		t[b] = 210
	}
	for _, b := range "jqxz" {
		t[b] = 20
	}
	for _, b := range "!#$%&*+<>?@^`|~" {
		t[b] = 40
	}
	for _, b := range "\"'()-/:;=[]_{}" {
		t[b] = 120
	}
	t[' '] = 255
	t[','] = 200
	t['.'] = 210
	t['\n'] = 130
	t['\t'] = 60
	return t
}()

// rareByte returns the rarest byte of needle and its index. Ties keep the
// rightmost candidate, whose verification window is least likely to be cut
// short at the start of the haystack.
func rareByte(needle string) (byte, int) {
	idx := len(needle) - 1
	rank := byteRanks[needle[idx]]
	for i := idx - 1; i >= 0; i-- {
		if r := byteRanks[needle[i]]; r < rank {
			idx, rank = i, r
		}
	}
	return needle[idx], idx
}
