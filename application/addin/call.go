package addin

import (
	"fmt"
	"reflect"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
)

// call converts the host arguments, runs the bound method and stores the
// final value of every pointer parameter back into params. Missing
// arguments read as Empty.
func (a *AddIn) call(num int, params *entities.Params) (entities.Value, error) {
	m, ok := a.method(num)
	if !ok {
		return entities.Value{}, &sdkerrors.IndexError{Table: "method", Index: num, Len: len(a.def.Methods)}
	}

	args := make([]reflect.Value, len(m.params))
	for i := range m.params {
		arg, err := m.params[i].read(params.Get(i))
		if err != nil {
			return entities.Value{}, fmt.Errorf("param %d of %s: %w", i, m.Name, err)
		}
		args[i] = arg
	}

	out := m.fn.Call(args)

	if m.retErr {
		if errV := out[len(out)-1]; !errV.IsNil() {
			return entities.Value{}, errV.Interface().(error)
		}
	}

	for i, p := range m.params {
		if p.out {
			params.Set(i, p.codec.to(args[i].Elem()))
		}
	}

	if m.ret == nil {
		return entities.Empty(), nil
	}
	return m.ret.to(out[0]), nil
}

// read converts one host argument to the Go value passed to the method.
func (p *paramDef) read(v entities.Value) (reflect.Value, error) {
	if p.optional {
		return p.readOptional(v)
	}

	rv, ok := p.codec.from(v)
	if !ok {
		return reflect.Value{}, &sdkerrors.ConversionError{Want: p.codec.name, Got: v.Kind()}
	}
	if p.out {
		ptr := reflect.New(p.codec.typ)
		ptr.Elem().Set(rv)
		return ptr, nil
	}
	return rv, nil
}

// readOptional builds an entities.Optional[T] following the sentinel
// convention: the sentinel reads as absent, a convertible value as present.
func (p *paramDef) readOptional(v entities.Value) (reflect.Value, error) {
	opt := reflect.New(p.optType).Elem()
	if v.Equal(p.none) {
		return opt, nil
	}
	rv, ok := p.codec.from(v)
	if !ok {
		return reflect.Value{}, &sdkerrors.ConversionError{Want: "optional " + p.codec.name, Got: v.Kind()}
	}
	opt.Field(0).Set(rv)
	opt.Field(1).SetBool(true)
	return opt, nil
}
