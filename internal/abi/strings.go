package abi

import (
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// CStr copies a NUL-terminated UTF-16 string out of host memory.
// A nil pointer reads as an empty string.
func CStr(p unsafe.Pointer) entities.UTF16 {
	if p == nil {
		return entities.UTF16{}
	}
	n := 0
	for *(*uint16)(unsafe.Add(p, n*2)) != 0 {
		n++
	}
	return entities.UTF16(unsafe.Slice((*uint16)(p), n)).Clone()
}

// AllocCStr copies s with a terminating NUL into host memory and returns the
// host pointer. The host owns the result.
func AllocCStr(mem ports.Allocator, s entities.UTF16) (unsafe.Pointer, error) {
	return allocUnits(mem, s)
}
