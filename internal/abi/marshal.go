package abi

import (
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Value converts v into an owned value. String and blob payloads are copied,
// so the result does not reference host memory. Tags without a matching kind
// read as Empty.
func (v *Variant) Value() entities.Value {
	switch v.vt {
	case TypeEmpty:
		return entities.Empty()
	case TypeBool:
		return entities.BoolValue(*v.boolByte() != 0)
	case TypeI4:
		return entities.Int32Value(*v.int32Val())
	case TypeR8:
		return entities.Float64Value(*v.float64Val())
	case TypeTM:
		return entities.DateValue(v.tm().Date())
	case TypePWSTR:
		d := v.data()
		if d.ptr == nil || d.len == 0 {
			return entities.UTF16Value(nil)
		}
		return entities.UTF16Value(unsafe.Slice((*uint16)(d.ptr), d.len))
	case TypeBlob:
		d := v.data()
		if d.ptr == nil || d.len == 0 {
			return entities.BlobValue(nil)
		}
		return entities.BlobValue(unsafe.Slice((*byte)(d.ptr), d.len))
	default:
		return entities.Empty()
	}
}

// convertible reports whether v's tag maps to a kind. Other tags read as
// Empty.
func (v *Variant) convertible() bool {
	switch v.vt {
	case TypeEmpty, TypeBool, TypeI4, TypeR8, TypeTM, TypePWSTR, TypeBlob:
		return true
	default:
		return false
	}
}

// SetValue writes val into v. String and blob payloads are copied into memory
// obtained from mem. If the allocation fails v is left untouched.
func (v *Variant) SetValue(mem ports.Allocator, val entities.Value) error {
	s, err := stage(mem, val)
	if err != nil {
		return err
	}
	s.commit(v)
	return nil
}

// staged is a value whose host buffer (if any) is already allocated and
// filled, waiting to be stored into a Variant.
type staged struct {
	val entities.Value
	buf unsafe.Pointer
	n   uint32
}

func stage(mem ports.Allocator, val entities.Value) (staged, error) {
	s := staged{val: val}
	switch val.Kind() {
	case entities.KindString:
		units, _ := val.UTF16()
		buf, err := allocUnits(mem, units)
		if err != nil {
			return staged{}, err
		}
		s.buf, s.n = buf, uint32(len(units))
	case entities.KindBlob:
		b, _ := val.Blob()
		if len(b) == 0 {
			return s, nil
		}
		buf, err := alloc(mem, len(b))
		if err != nil {
			return staged{}, err
		}
		copy(unsafe.Slice((*byte)(buf), len(b)), b)
		s.buf, s.n = buf, uint32(len(b))
	}
	return s, nil
}

func (s staged) commit(v *Variant) {
	switch s.val.Kind() {
	case entities.KindBool:
		b, _ := s.val.Bool()
		v.reset(TypeBool)
		if b {
			*v.boolByte() = 1
		}
	case entities.KindInt32:
		i, _ := s.val.Int32()
		v.reset(TypeI4)
		*v.int32Val() = i
	case entities.KindFloat64:
		f, _ := s.val.Float64()
		v.reset(TypeR8)
		*v.float64Val() = f
	case entities.KindDate:
		d, _ := s.val.Date()
		v.reset(TypeTM)
		*v.tm() = tmFromDate(d)
	case entities.KindString:
		v.reset(TypePWSTR)
		*v.data() = dataStr{ptr: s.buf, len: s.n}
	case entities.KindBlob:
		v.reset(TypeBlob)
		*v.data() = dataStr{ptr: s.buf, len: s.n}
	default:
		v.reset(TypeEmpty)
	}
}

func (s staged) discard(mem ports.Allocator) {
	if s.buf != nil {
		mem.Free(s.buf)
	}
}

// Batch writes several values into host slots as one unit: every host buffer
// is allocated before any slot is modified, so a failed allocation leaves all
// slots untouched.
type Batch struct {
	mem   ports.Allocator
	dsts  []*Variant
	items []staged
}

// NewBatch returns an empty batch allocating through mem.
func NewBatch(mem ports.Allocator) *Batch {
	return &Batch{mem: mem}
}

// Add stages val for dst. On error the batch is discarded.
func (b *Batch) Add(dst *Variant, val entities.Value) error {
	s, err := stage(b.mem, val)
	if err != nil {
		b.Discard()
		return err
	}
	b.dsts = append(b.dsts, dst)
	b.items = append(b.items, s)
	return nil
}

// Commit stores every staged value in the order it was added.
func (b *Batch) Commit() {
	for i, s := range b.items {
		s.commit(b.dsts[i])
	}
	b.dsts, b.items = nil, nil
}

// Discard frees the buffers of every staged value.
func (b *Batch) Discard() {
	for _, s := range b.items {
		s.discard(b.mem)
	}
	b.dsts, b.items = nil, nil
}

// alloc requests size bytes from mem, turning a nil allocator or a failed
// request into an error.
func alloc(mem ports.Allocator, size int) (unsafe.Pointer, error) {
	if mem == nil {
		return nil, sdkerrors.ErrNoMemoryManager
	}
	p, err := mem.Alloc(size)
	if err != nil {
		return nil, &sdkerrors.AllocationError{Size: size, Err: err}
	}
	if p == nil {
		return nil, &sdkerrors.AllocationError{Size: size}
	}
	return p, nil
}

// allocUnits copies units plus a terminating NUL into host memory.
func allocUnits(mem ports.Allocator, units []uint16) (unsafe.Pointer, error) {
	n := len(units) + 1
	p, err := alloc(mem, n*2)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*uint16)(p), n)
	copy(dst, units)
	dst[n-1] = 0
	return p, nil
}
