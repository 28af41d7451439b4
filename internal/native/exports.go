package native

/*
#include "addin.h"
*/
import "C"

import (
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/application/component"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

// The functions below fill the C function tables. self is the address of
// the sub-object header the host called through.

//export goInit
func goInit(self, disp unsafe.Pointer) C.bool {
	var conn ports.Connection
	if disp != nil {
		conn = &connection{ptr: disp}
	}
	return C.bool(componentOf(abi.OwnerOf(self, abi.OffsetInitDone)).Init(conn))
}

//export goSetMemManager
func goSetMemManager(self, mem unsafe.Pointer) C.bool {
	var alloc ports.Allocator
	if mem != nil {
		alloc = &memoryManager{ptr: mem}
	}
	return C.bool(componentOf(abi.OwnerOf(self, abi.OffsetInitDone)).SetMemoryManager(alloc))
}

//export goGetInfo
func goGetInfo(self unsafe.Pointer) C.long {
	return C.long(componentOf(abi.OwnerOf(self, abi.OffsetInitDone)).Info())
}

//export goDone
func goDone(self unsafe.Pointer) {
	componentOf(abi.OwnerOf(self, abi.OffsetInitDone)).Done()
}

func extender(self unsafe.Pointer) *component.Component {
	return componentOf(abi.OwnerOf(self, abi.OffsetLangExtender))
}

//export goRegisterExtensionAs
func goRegisterExtensionAs(self unsafe.Pointer, out *unsafe.Pointer) C.bool {
	return C.bool(extender(self).RegisterExtensionAs(out))
}

//export goGetNProps
func goGetNProps(self unsafe.Pointer) C.long {
	return C.long(extender(self).NProps())
}

//export goFindProp
func goFindProp(self, name unsafe.Pointer) C.long {
	return C.long(extender(self).FindProp(name))
}

//export goGetPropName
func goGetPropName(self unsafe.Pointer, num, alias C.long) unsafe.Pointer {
	return extender(self).PropName(int(num), int(alias))
}

//export goGetPropVal
func goGetPropVal(self unsafe.Pointer, num C.long, val unsafe.Pointer) C.bool {
	return C.bool(extender(self).PropVal(int(num), (*abi.Variant)(val)))
}

//export goSetPropVal
func goSetPropVal(self unsafe.Pointer, num C.long, val unsafe.Pointer) C.bool {
	return C.bool(extender(self).SetPropVal(int(num), (*abi.Variant)(val)))
}

//export goIsPropReadable
func goIsPropReadable(self unsafe.Pointer, num C.long) C.bool {
	return C.bool(extender(self).IsPropReadable(int(num)))
}

//export goIsPropWritable
func goIsPropWritable(self unsafe.Pointer, num C.long) C.bool {
	return C.bool(extender(self).IsPropWritable(int(num)))
}

//export goGetNMethods
func goGetNMethods(self unsafe.Pointer) C.long {
	return C.long(extender(self).NMethods())
}

//export goFindMethod
func goFindMethod(self, name unsafe.Pointer) C.long {
	return C.long(extender(self).FindMethod(name))
}

//export goGetMethodName
func goGetMethodName(self unsafe.Pointer, num, alias C.long) unsafe.Pointer {
	return extender(self).MethodName(int(num), int(alias))
}

//export goGetNParams
func goGetNParams(self unsafe.Pointer, num C.long) C.long {
	return C.long(extender(self).NParams(int(num)))
}

//export goGetParamDefValue
func goGetParamDefValue(self unsafe.Pointer, method, param C.long, val unsafe.Pointer) C.bool {
	return C.bool(extender(self).ParamDefValue(int(method), int(param), (*abi.Variant)(val)))
}

//export goHasRetVal
func goHasRetVal(self unsafe.Pointer, num C.long) C.bool {
	return C.bool(extender(self).HasRetVal(int(num)))
}

//export goCallAsProc
func goCallAsProc(self unsafe.Pointer, num C.long, params unsafe.Pointer, n C.long) C.bool {
	return C.bool(extender(self).CallAsProc(int(num), params, int(n)))
}

//export goCallAsFunc
func goCallAsFunc(self unsafe.Pointer, num C.long, ret, params unsafe.Pointer, n C.long) C.bool {
	return C.bool(extender(self).CallAsFunc(int(num), (*abi.Variant)(ret), params, int(n)))
}

//export goSetLocale
func goSetLocale(self, loc unsafe.Pointer) {
	componentOf(abi.OwnerOf(self, abi.OffsetLocale)).SetLocale(loc)
}

//export goSetUserInterfaceLanguageCode
func goSetUserInterfaceLanguageCode(self, lang unsafe.Pointer) {
	componentOf(abi.OwnerOf(self, abi.OffsetUserLanguage)).SetUserInterfaceLanguageCode(lang)
}
