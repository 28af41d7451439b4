package abi

import "unsafe"

// Interface is the header of one interface sub-object: the pointer to its
// function table. The table itself starts with DestructorSlots reserved entries.
type Interface struct {
	vtable unsafe.Pointer
}

// Object is the composite object handed to the host. The host addresses it
// through the pointer to InitDone (the component base) and reaches the other
// interfaces at fixed offsets, so the header fields must stay first and in
// this order. Plugin state follows the headers and is never read by the host.
type Object struct {
	InitDone     Interface
	LangExtender Interface
	Locale       Interface
	UserLanguage Interface

	// Handle identifies the Go-side component (a cgo.Handle value). The
	// component keeps the host memory manager and connection itself.
	Handle uintptr
}

// Byte offsets of each interface inside Object. Derived from the field order
// above, which is the single source of truth for the host-visible layout.
const (
	OffsetInitDone     = unsafe.Offsetof(Object{}.InitDone)
	OffsetLangExtender = unsafe.Offsetof(Object{}.LangExtender)
	OffsetLocale       = unsafe.Offsetof(Object{}.Locale)
	OffsetUserLanguage = unsafe.Offsetof(Object{}.UserLanguage)
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// The host's C++ layout puts one vptr per base class, back to back.
var (
	_ = [1]struct{}{}[OffsetInitDone]
	_ = [1]struct{}{}[OffsetLangExtender-ptrSize]
	_ = [1]struct{}{}[OffsetLocale-2*ptrSize]
	_ = [1]struct{}{}[OffsetUserLanguage-3*ptrSize]
	_ = [1]struct{}{}[unsafe.Sizeof(Interface{})-ptrSize]
)

// OwnerOf recovers the object from a pointer to one of its interface
// headers. offset must be the Offset constant of that interface; nothing is
// validated.
func OwnerOf(sub unsafe.Pointer, offset uintptr) *Object {
	return (*Object)(unsafe.Add(sub, -int(offset)))
}

// SubObject returns the address of the interface header at offset.
func (o *Object) SubObject(offset uintptr) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(o), offset)
}

// SetVTables installs the function tables of the four interfaces.
func (o *Object) SetVTables(initDone, langExtender, locale, userLanguage unsafe.Pointer) {
	o.InitDone.vtable = initDone
	o.LangExtender.vtable = langExtender
	o.Locale.vtable = locale
	o.UserLanguage.vtable = userLanguage
}

// VTable returns the function table installed for the interface at offset.
func (o *Object) VTable(offset uintptr) unsafe.Pointer {
	return (*Interface)(o.SubObject(offset)).vtable
}
