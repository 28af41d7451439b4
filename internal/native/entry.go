package native

/*
#include "addin.h"
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/application/registry"
	"github.com/reglet-dev/addin-sdk/go/config"
	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

var lib = NewLibrary(registry.NewRegistry(),
	WithVTables(
		C.addin_vtable(C.ADDIN_TABLE_INIT_DONE),
		C.addin_vtable(C.ADDIN_TABLE_LANG_EXTENDER),
		C.addin_vtable(C.ADDIN_TABLE_LOCALE),
		C.addin_vtable(C.ADDIN_TABLE_USER_LANGUAGE),
	),
	WithObjectMemory(allocObject, releaseObject),
	WithConfigLoader(config.LoadFromEnv),
)

// Default returns the library behind the exported entry points.
func Default() *Library { return lib }

// Objects live in C memory: the host keeps pointers to them across calls.
func allocObject() *abi.Object {
	return (*abi.Object)(C.calloc(1, C.size_t(unsafe.Sizeof(abi.Object{}))))
}

func releaseObject(obj *abi.Object) {
	C.free(unsafe.Pointer(obj))
}

//export GetClassObject
func GetClassObject(name unsafe.Pointer, out *unsafe.Pointer) C.long {
	if out == nil {
		return 0
	}
	className := abi.CStr(name)
	obj, err := lib.Create(className)
	if err != nil {
		lib.logger.Error("GetClassObject failed", "class", className.String(), "error", err)
		return 0
	}
	*out = obj.SubObject(abi.OffsetInitDone)
	return 1
}

//export DestroyObject
func DestroyObject(intf *unsafe.Pointer) C.long {
	if intf == nil || *intf == nil {
		return -1
	}
	if err := lib.Destroy(abi.OwnerOf(*intf, abi.OffsetInitDone)); err != nil {
		lib.logger.Error("DestroyObject failed", "error", err)
		return -1
	}
	*intf = nil
	return 0
}

var (
	classNamesOnce sync.Once
	classNames     unsafe.Pointer
)

// GetClassNames returns a string the host never frees, so it is built once
// in C memory and kept for the life of the process.
//
//export GetClassNames
func GetClassNames() unsafe.Pointer {
	classNamesOnce.Do(func() {
		names := lib.ClassNames()
		p := C.calloc(C.size_t(len(names)+1), 2)
		copy(unsafe.Slice((*uint16)(p), len(names)), names)
		classNames = p
	})
	return classNames
}

//export SetPlatformCapabilities
func SetPlatformCapabilities(capabilities C.int) C.int {
	return C.int(lib.SetPlatformCapabilities(int(capabilities)))
}

//export GetAttachType
func GetAttachType() C.int {
	return AttachAny
}
