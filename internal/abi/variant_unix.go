//go:build unix && (amd64 || arm64)

package abi

// Tm mirrors struct tm as laid out by the host's C library on 64-bit unix.
type Tm struct {
	Sec    int32
	Min    int32
	Hour   int32
	Mday   int32
	Mon    int32 // months since January
	Year   int32 // years since 1900
	Wday   int32
	Yday   int32
	Isdst  int32
	Gmtoff int64
	Zone   uintptr
}

const (
	// variantValueWords is the size of the value union in 8-byte words.
	// struct tm (56 bytes) is its largest member.
	variantValueWords = 7

	// VariantSize is sizeof(tVariant) on this platform.
	VariantSize = 64

	// DestructorSlots is the number of reserved destructor entries at the
	// start of every vtable (Itanium C++ ABI: complete and deleting dtor).
	DestructorSlots = 2
)
