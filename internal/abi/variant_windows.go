//go:build windows && (amd64 || arm64)

package abi

// Tm mirrors struct tm as laid out by the MSVC runtime.
type Tm struct {
	Sec   int32
	Min   int32
	Hour  int32
	Mday  int32
	Mon   int32 // months since January
	Year  int32 // years since 1900
	Wday  int32
	Yday  int32
	Isdst int32
}

const (
	// variantValueWords is the size of the value union in 8-byte words.
	// struct tm (36 bytes) padded to pointer alignment is its largest member.
	variantValueWords = 5

	// VariantSize is sizeof(tVariant) on this platform.
	VariantSize = 48

	// DestructorSlots is the number of reserved destructor entries at the
	// start of every vtable (MSVC: one scalar deleting dtor).
	DestructorSlots = 1
)
