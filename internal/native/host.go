package native

/*
#include "addin.h"
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

var errAllocRefused = errors.New("host memory manager refused the request")

// memoryManager forwards to the host's IMemoryManager.
type memoryManager struct {
	ptr unsafe.Pointer
}

var _ ports.Allocator = (*memoryManager)(nil)

func (m *memoryManager) Alloc(size int) (unsafe.Pointer, error) {
	p := C.addin_mem_alloc(m.ptr, C.ulong(size))
	if p == nil {
		return nil, errAllocRefused
	}
	return p, nil
}

func (m *memoryManager) Free(p unsafe.Pointer) {
	C.addin_mem_free(m.ptr, p)
}

// connection forwards to the host's IAddInDefBase.
type connection struct {
	ptr unsafe.Pointer
}

var _ ports.Connection = (*connection)(nil)

func (c *connection) AddError(code ports.MessageCode, source, description entities.UTF16, scode int32) bool {
	return bool(C.addin_conn_add_error(c.ptr, C.ushort(code), wstr(source), wstr(description), C.long(scode)))
}

func (c *connection) ExternalEvent(source, message, data entities.UTF16) bool {
	return bool(C.addin_conn_external_event(c.ptr, wstr(source), wstr(message), wstr(data)))
}

func (c *connection) SetEventBufferDepth(depth int) bool {
	return bool(C.addin_conn_set_event_buffer_depth(c.ptr, C.long(depth)))
}

func (c *connection) EventBufferDepth() int {
	return int(C.addin_conn_get_event_buffer_depth(c.ptr))
}

func (c *connection) CleanEventBuffer() {
	C.addin_conn_clean_event_buffer(c.ptr)
}

func (c *connection) SetStatusLine(status entities.UTF16) bool {
	return bool(C.addin_conn_set_status_line(c.ptr, wstr(status)))
}

func (c *connection) ResetStatusLine() {
	C.addin_conn_reset_status_line(c.ptr)
}

// wstr returns a NUL-terminated copy of s in Go memory. The host only reads
// it for the duration of the call.
func wstr(s entities.UTF16) *C.addin_wchar {
	buf := make([]uint16, len(s)+1)
	copy(buf, s)
	return (*C.addin_wchar)(unsafe.Pointer(&buf[0]))
}
