// Package wordcodec contains small, allocation-conscious helpers for
// converting between 32-bit word records and the byte strings used to hash
// and serialize them. It plays the same role for the hashcons/rxast
// packages that internal/buf's endian-safe decode helpers play for a
// binary file format: isolated, independently testable primitives with no
// knowledge of the callers' domain.
package wordcodec

import "encoding/binary"

// EncodeWords appends the little-endian byte encoding of words to dst and
// returns the extended slice. dst may be nil or have spare capacity from
// a caller-owned scratch buffer; EncodeWords never retains a reference to
// words itself.
func EncodeWords(words []uint32, dst []byte) []byte {
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}
	return dst
}

// DecodeWords is the inverse of EncodeWords: it decodes n little-endian
// uint32s starting at offset off in b. It panics if b is too short, since
// callers only ever invoke it against records this package already wrote.
func DecodeWords(b []byte, off, n int) []uint32 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(b[off+i*4 : off+i*4+4])
	}
	return out
}
