// File: textq/chars.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-length line elements. Each size instantiates its own element type,
// the way the engine instantiates per element type: no runtime tag, no
// shared state, size known to the compiler.

package textq

import "unsafe"

// Chars is the set of byte-array types usable as line elements. The array
// length is the element size S; the last byte is always reserved for the
// NUL terminator, so a line carries at most S-1 content bytes.
//
// The tilde admits named types, e.g. `type Line [64]byte`.
type Chars interface {
	~[16]byte | ~[32]byte | ~[64]byte | ~[128]byte | ~[256]byte
}

// Convenience element sizes.
type (
	Line16  = [16]byte
	Line32  = [32]byte
	Line64  = [64]byte
	Line128 = [128]byte
	Line256 = [256]byte
)

// bytesOf reinterprets the element's storage as a byte slice. The union
// constraint has no core type, so indexing is not available on S directly;
// the reslice is the supported way to address the array bytes and costs
// nothing at runtime.
func bytesOf[S Chars](s *S) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), unsafe.Sizeof(*s))
}

// MakeLine builds an element from text, copying at most S-1 bytes and
// guaranteeing a NUL terminator at index S-1. Longer input is truncated
// silently; truncation is not an error.
func MakeLine[S Chars](text string) S {
	var s S
	b := bytesOf(&s)
	copy(b[:len(b)-1], text)
	b[len(b)-1] = 0
	return s
}

// LineString returns the element's content up to the first NUL.
func LineString[S Chars](s S) string {
	b := bytesOf(&s)
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	// Unreachable for elements built by MakeLine; cap defensively.
	return string(b[:len(b)-1])
}
