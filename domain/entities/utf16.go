package entities

import (
	"slices"
	"unicode/utf16"
)

// UTF16 is an owned sequence of UTF-16 code units without a terminating NUL.
// It is the native string form of the host and is kept as code units so that
// strings the host sends (including unpaired surrogates) survive a round trip.
type UTF16 []uint16

// NewUTF16 encodes s as UTF-16.
func NewUTF16(s string) UTF16 {
	return UTF16(utf16.Encode([]rune(s)))
}

// String decodes the code units, replacing invalid surrogates with U+FFFD.
func (u UTF16) String() string {
	return string(utf16.Decode(u))
}

// Equal reports whether u and other hold the same code units.
func (u UTF16) Equal(other UTF16) bool {
	return slices.Equal(u, other)
}

// Clone returns an independent copy of u. A nil input clones to nil.
func (u UTF16) Clone() UTF16 {
	return slices.Clone(u)
}
