package ports

import "unsafe"

// Allocator hands out memory owned by the host. Everything the bridge
// returns to the host (strings, blobs, names) must come from here; the host
// frees it later.
type Allocator interface {
	// Alloc returns size bytes of host memory. size is always > 0.
	Alloc(size int) (unsafe.Pointer, error)
	// Free returns memory obtained from Alloc that was never handed to the host.
	Free(p unsafe.Pointer)
}
