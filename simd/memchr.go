// Package simd provides the literal search kernels used by the pattern engine:
// byte search, substring search and literal splitting over strings.
//
// Kernels dispatch on CPU features detected at package initialization. On CPUs
// with wide vector units (AVX2 on x86-64, ASIMD on arm64) byte search of long
// inputs is handed to the runtime's vectorised strings.IndexByte; elsewhere a
// pure Go SWAR (SIMD Within A Register) loop processes 8 bytes per step. The
// kernels return identical results, the dispatch only affects speed.
package simd

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPU feature detection flags set at package initialization.
var (
	// hasVector indicates a CPU with 128-bit or wider vector units that the
	// runtime byte search kernels use.
	hasVector = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
)

// vectorThreshold is the minimum haystack length for which the vector path is
// taken. Below it the setup cost dominates and the SWAR loop wins.
const vectorThreshold = 32

// IndexByte returns the index of the first instance of c in s, or -1 if c is
// not present in s.
//
// Inputs shorter than vectorThreshold, and all inputs on CPUs without wide
// vector units, go through the SWAR loop. The choice is for performance only.
//
// Example:
//
//	pos := simd.IndexByte("hello world", 'w')
//	// pos == 6
func IndexByte(s string, c byte) int {
	if hasVector && len(s) >= vectorThreshold {
		return strings.IndexByte(s, c)
	}
	return indexByteGeneric(s, c)
}
