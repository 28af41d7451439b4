package component

import (
	"errors"
	"unsafe"

	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

var errNilOutput = errors.New("host passed a nil output slot")

// RegisterExtensionAs writes the extension name into *out.
func (c *Component) RegisterExtensionAs(out *unsafe.Pointer) bool {
	return guard(c, "RegisterExtensionAs", false, func() (bool, error) {
		if err := requireMemory(c.mem); err != nil {
			return false, err
		}
		if out == nil {
			return false, errNilOutput
		}
		p, err := abi.AllocCStr(c.mem, c.addin.ExtensionName())
		if err != nil {
			return false, err
		}
		*out = p
		return true, nil
	})
}

// NProps returns the number of properties.
func (c *Component) NProps() int {
	return guard(c, "GetNProps", 0, func() (int, error) {
		return c.addin.NProps(), nil
	})
}

// FindProp returns the index of the property called name, or -1.
func (c *Component) FindProp(name unsafe.Pointer) int {
	return guard(c, "FindProp", -1, func() (int, error) {
		if i, ok := c.addin.FindProp(abi.CStr(name)); ok {
			return i, nil
		}
		return -1, nil
	})
}

// PropName returns a host-owned copy of a property name, or nil.
func (c *Component) PropName(num, alias int) unsafe.Pointer {
	return guard(c, "GetPropName", nil, func() (unsafe.Pointer, error) {
		if err := requireMemory(c.mem); err != nil {
			return nil, err
		}
		name, ok := c.addin.PropName(num, alias)
		if !ok {
			return nil, indexErr("property", num, c.addin.NProps())
		}
		return abi.AllocCStr(c.mem, name)
	})
}

// PropVal reads a property into out.
func (c *Component) PropVal(num int, out *abi.Variant) bool {
	return guard(c, "GetPropVal", false, func() (bool, error) {
		if err := requireMemory(c.mem); err != nil {
			return false, err
		}
		if out == nil {
			return false, errNilOutput
		}
		val, err := c.addin.PropVal(num)
		if err != nil {
			return false, err
		}
		if err := out.SetValue(c.mem, val); err != nil {
			return false, err
		}
		return true, nil
	})
}

// SetPropVal assigns the value in in to a property.
func (c *Component) SetPropVal(num int, in *abi.Variant) bool {
	return guard(c, "SetPropVal", false, func() (bool, error) {
		if in == nil {
			return false, errNilOutput
		}
		if err := c.addin.SetPropVal(num, in.Value()); err != nil {
			return false, err
		}
		return true, nil
	})
}

// IsPropReadable reports whether a property can be read.
func (c *Component) IsPropReadable(num int) bool {
	return guard(c, "IsPropReadable", false, func() (bool, error) {
		return c.addin.IsPropReadable(num), nil
	})
}

// IsPropWritable reports whether a property can be assigned.
func (c *Component) IsPropWritable(num int) bool {
	return guard(c, "IsPropWritable", false, func() (bool, error) {
		return c.addin.IsPropWritable(num), nil
	})
}

// NMethods returns the number of methods.
func (c *Component) NMethods() int {
	return guard(c, "GetNMethods", 0, func() (int, error) {
		return c.addin.NMethods(), nil
	})
}

// FindMethod returns the index of the method called name, or -1.
func (c *Component) FindMethod(name unsafe.Pointer) int {
	return guard(c, "FindMethod", -1, func() (int, error) {
		if i, ok := c.addin.FindMethod(abi.CStr(name)); ok {
			return i, nil
		}
		return -1, nil
	})
}

// MethodName returns a host-owned copy of a method name, or nil.
func (c *Component) MethodName(num, alias int) unsafe.Pointer {
	return guard(c, "GetMethodName", nil, func() (unsafe.Pointer, error) {
		if err := requireMemory(c.mem); err != nil {
			return nil, err
		}
		name, ok := c.addin.MethodName(num, alias)
		if !ok {
			return nil, indexErr("method", num, c.addin.NMethods())
		}
		return abi.AllocCStr(c.mem, name)
	})
}

// NParams returns the parameter count of a method.
func (c *Component) NParams(num int) int {
	return guard(c, "GetNParams", 0, func() (int, error) {
		return c.addin.NParams(num), nil
	})
}

// ParamDefValue writes the default of an omitted parameter into out. It
// reports false when the parameter has no default.
func (c *Component) ParamDefValue(method, param int, out *abi.Variant) bool {
	return guard(c, "GetParamDefValue", false, func() (bool, error) {
		if err := requireMemory(c.mem); err != nil {
			return false, err
		}
		if out == nil {
			return false, errNilOutput
		}
		val, ok := c.addin.ParamDefValue(method, param)
		if !ok {
			return false, nil
		}
		if err := out.SetValue(c.mem, val); err != nil {
			return false, err
		}
		return true, nil
	})
}

// HasRetVal reports whether a method returns a value.
func (c *Component) HasRetVal(num int) bool {
	return guard(c, "HasRetVal", false, func() (bool, error) {
		return c.addin.HasRetVal(num), nil
	})
}

// CallAsProc runs a method with the n argument slots at params. On success
// every argument is written back to its own slot; on failure no slot is
// modified. Without a memory manager the method is not run.
func (c *Component) CallAsProc(num int, params unsafe.Pointer, n int) bool {
	return guard(c, "CallAsProc", false, func() (bool, error) {
		if err := requireMemory(c.mem); err != nil {
			return false, err
		}
		view := abi.ViewParams(params, n)
		args := view.Values()
		if err := c.addin.CallAsProc(num, args); err != nil {
			return false, c.callErr(num, err)
		}

		b := abi.NewBatch(c.mem)
		if err := view.Stage(b, args); err != nil {
			return false, err
		}
		b.Commit()
		return true, nil
	})
}

// CallAsFunc runs a method and writes its result into ret, followed by the
// argument writeback of CallAsProc. On failure neither ret nor any argument
// slot is modified.
func (c *Component) CallAsFunc(num int, ret *abi.Variant, params unsafe.Pointer, n int) bool {
	return guard(c, "CallAsFunc", false, func() (bool, error) {
		if err := requireMemory(c.mem); err != nil {
			return false, err
		}
		if ret == nil {
			return false, errNilOutput
		}
		view := abi.ViewParams(params, n)
		args := view.Values()
		val, err := c.addin.CallAsFunc(num, args)
		if err != nil {
			return false, c.callErr(num, err)
		}

		b := abi.NewBatch(c.mem)
		if err := b.Add(ret, val); err != nil {
			return false, err
		}
		if err := view.Stage(b, args); err != nil {
			return false, err
		}
		b.Commit()
		return true, nil
	})
}

func (c *Component) callErr(num int, err error) error {
	name, _ := c.addin.MethodName(num, 0)
	return &sdkerrors.CallError{Method: name.String(), Err: err}
}
