package testutil

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// ErrMemoryLimit is returned by Memory.Alloc when the configured limit would be exceeded.
var ErrMemoryLimit = errors.New("testutil: memory limit exceeded")

// Memory is an in-process stand-in for the host memory manager.
// It keeps a reference to every buffer it hands out so the Go GC cannot
// collect memory that is only reachable through raw pointers.
type Memory struct {
	mu             sync.Mutex
	ptrs           map[unsafe.Pointer][]uint64 // ptr -> backing words
	sizes          map[unsafe.Pointer]int
	totalAllocated int
	limit          int
	failAfter      int // remaining successful allocations, -1 = unlimited
	frees          int
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithLimit caps the total number of bytes that may be live at once.
func WithLimit(bytes int) MemoryOption {
	return func(m *Memory) {
		if bytes > 0 {
			m.limit = bytes
		}
	}
}

// WithFailAfter makes every allocation after the first n fail.
func WithFailAfter(n int) MemoryOption {
	return func(m *Memory) {
		m.failAfter = n
	}
}

var _ ports.Allocator = (*Memory)(nil)

// NewMemory returns an empty Memory.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		ptrs:      make(map[unsafe.Pointer][]uint64),
		sizes:     make(map[unsafe.Pointer]int),
		failAfter: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Alloc implements ports.Allocator.
func (m *Memory) Alloc(size int) (unsafe.Pointer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if size <= 0 {
		return nil, errors.New("testutil: non-positive allocation size")
	}
	if m.failAfter == 0 {
		return nil, ErrMemoryLimit
	}
	if m.limit > 0 && m.totalAllocated+size > m.limit {
		return nil, ErrMemoryLimit
	}
	if m.failAfter > 0 {
		m.failAfter--
	}

	// Word-sized backing keeps every buffer aligned for uint16 and pointer access.
	words := make([]uint64, (size+7)/8)
	p := unsafe.Pointer(&words[0])
	m.ptrs[p] = words
	m.sizes[p] = size
	m.totalAllocated += size
	return p, nil
}

// Free implements ports.Allocator. Unknown pointers are ignored.
func (m *Memory) Free(p unsafe.Pointer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	size, ok := m.sizes[p]
	if !ok {
		return
	}
	delete(m.ptrs, p)
	delete(m.sizes, p)
	m.totalAllocated -= size
	m.frees++
}

// Owns reports whether p was returned by Alloc and not freed.
func (m *Memory) Owns(p unsafe.Pointer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sizes[p]
	return ok
}

// Stats returns the number of live allocations and their total size.
func (m *Memory) Stats() (count, bytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ptrs), m.totalAllocated
}

// Frees returns how many buffers were released through Free.
func (m *Memory) Frees() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frees
}

// FreeAll drops every tracked allocation.
func (m *Memory) FreeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.ptrs)
	clear(m.sizes)
	m.totalAllocated = 0
}
