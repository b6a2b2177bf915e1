package simd

import "math/bits"

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// indexByteGeneric implements byte search using SWAR: the needle is broadcast
// to every byte of a uint64 and each 8-byte chunk is XORed against it, so that
// matching bytes become zero and are located with the zero-byte test
// (v - 0x01..01) & ^v & 0x80..80.
func indexByteGeneric(s string, c byte) int {
	n := len(s)
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] == c {
				return i
			}
		}
		return -1
	}

	mask := uint64(c) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		x := load64(s, i) ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < n; i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// load64 reads 8 bytes of s starting at i as a little-endian uint64.
// The compiler merges the byte loads into a single load.
func load64(s string, i int) uint64 {
	_ = s[i+7]
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}
