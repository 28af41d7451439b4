// Package addin builds a ports.AddIn from a declarative component definition:
// a struct whose tags name its properties and methods.
//
//	type Calculator struct {
//		addin.Component `name:"Calculator"`
//
//		Total int32 `prop:"Total" alias:"Итог" access:"r"`
//
//		AddOp addin.Method `name:"Add" alias:"Сложить" defaults:"1=1"`
//	}
//
//	func (c *Calculator) Add(a, b int32) int32 { ... }
package addin

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Initializer is implemented by definitions that need the host connection.
type Initializer interface {
	Init(conn ports.Connection) error
}

// Finalizer is implemented by definitions with a teardown hook.
type Finalizer interface {
	Done()
}

// LocaleReceiver is implemented by definitions that react to locale changes.
type LocaleReceiver interface {
	SetLocale(loc string)
}

// LanguageReceiver is implemented by definitions that react to interface
// language changes.
type LanguageReceiver interface {
	SetUserInterfaceLanguageCode(lang string)
}

// AddIn adapts a parsed definition to ports.AddIn. It adds no locking: the
// definition's methods and fields are accessed on the calling thread.
type AddIn struct {
	def    *definition
	target any
	root   reflect.Value
	ext    entities.UTF16
	locale string
	lang   string
}

var (
	_ ports.AddIn     = (*AddIn)(nil)
	_ ports.Lifecycle = (*AddIn)(nil)
)

// Define parses the definition behind target, a pointer to a struct
// embedding Component, and binds it.
func Define(target any) (*AddIn, error) {
	d, err := parse(target)
	if err != nil {
		return nil, err
	}
	return &AddIn{
		def:    d,
		target: target,
		root:   reflect.ValueOf(target).Elem(),
		ext:    entities.NewUTF16(d.Name),
	}, nil
}

// MustDefine is Define that panics on an invalid definition.
// Use this in init() functions or factories.
func MustDefine(target any) *AddIn {
	a, err := Define(target)
	if err != nil {
		panic(fmt.Sprintf("failed to define component: %v", err))
	}
	return a
}

// Factory returns a ports.Factory building a fresh definition per object.
// newTarget must return a new pointer on every call.
func Factory[T any](newTarget func() *T) ports.Factory {
	return func() ports.AddIn {
		return MustDefine(newTarget())
	}
}

// Name returns the component name declared on the embedded Component.
func (a *AddIn) Name() string { return a.def.Name }

// Target returns the definition the AddIn was built from.
func (a *AddIn) Target() any { return a.target }

// Locale returns the last locale set by the host.
func (a *AddIn) Locale() string { return a.locale }

// Language returns the last interface language code set by the host.
func (a *AddIn) Language() string { return a.lang }

func (a *AddIn) ExtensionName() entities.UTF16 { return a.ext.Clone() }

func (a *AddIn) NProps() int { return len(a.def.Props) }

func (a *AddIn) FindProp(name entities.UTF16) (int, bool) {
	s := name.String()
	i := slices.IndexFunc(a.def.Props, func(p propDef) bool {
		return p.Name == s || (p.Alias != "" && p.Alias == s)
	})
	return i, i >= 0
}

func (a *AddIn) PropName(num, alias int) (entities.UTF16, bool) {
	p, ok := a.prop(num)
	if !ok {
		return nil, false
	}
	return entities.NewUTF16(pickName(p.Name, p.Alias, alias)), true
}

func (a *AddIn) PropVal(num int) (entities.Value, error) {
	p, ok := a.prop(num)
	if !ok {
		return entities.Value{}, &sdkerrors.IndexError{Table: "property", Index: num, Len: len(a.def.Props)}
	}
	if !p.Readable {
		return entities.Value{}, &sdkerrors.AccessError{Property: p.Name, Op: "read"}
	}
	return p.codec.to(a.root.FieldByIndex(p.field)), nil
}

func (a *AddIn) SetPropVal(num int, val entities.Value) error {
	p, ok := a.prop(num)
	if !ok {
		return &sdkerrors.IndexError{Table: "property", Index: num, Len: len(a.def.Props)}
	}
	if !p.Writable {
		return &sdkerrors.AccessError{Property: p.Name, Op: "write"}
	}
	rv, ok := p.codec.from(val)
	if !ok {
		return &sdkerrors.ConversionError{Target: "property " + p.Name, Want: p.codec.name, Got: val.Kind()}
	}
	a.root.FieldByIndex(p.field).Set(rv)
	return nil
}

func (a *AddIn) IsPropReadable(num int) bool {
	p, ok := a.prop(num)
	return ok && p.Readable
}

func (a *AddIn) IsPropWritable(num int) bool {
	p, ok := a.prop(num)
	return ok && p.Writable
}

func (a *AddIn) NMethods() int { return len(a.def.Methods) }

func (a *AddIn) FindMethod(name entities.UTF16) (int, bool) {
	s := name.String()
	i := slices.IndexFunc(a.def.Methods, func(m methodDef) bool {
		return m.Name == s || (m.Alias != "" && m.Alias == s)
	})
	return i, i >= 0
}

func (a *AddIn) MethodName(num, alias int) (entities.UTF16, bool) {
	m, ok := a.method(num)
	if !ok {
		return nil, false
	}
	return entities.NewUTF16(pickName(m.Name, m.Alias, alias)), true
}

func (a *AddIn) NParams(num int) int {
	m, ok := a.method(num)
	if !ok {
		return 0
	}
	return len(m.params)
}

func (a *AddIn) ParamDefValue(method, param int) (entities.Value, bool) {
	m, ok := a.method(method)
	if !ok || param < 0 || param >= len(m.params) || m.params[param].def == nil {
		return entities.Value{}, false
	}
	return *m.params[param].def, true
}

func (a *AddIn) HasRetVal(num int) bool {
	m, ok := a.method(num)
	return ok && m.ret != nil
}

func (a *AddIn) CallAsProc(num int, params *entities.Params) error {
	_, err := a.call(num, params)
	return err
}

func (a *AddIn) CallAsFunc(num int, params *entities.Params) (entities.Value, error) {
	return a.call(num, params)
}

func (a *AddIn) SetLocale(loc entities.UTF16) {
	a.locale = loc.String()
	if r, ok := a.target.(LocaleReceiver); ok {
		r.SetLocale(a.locale)
	}
}

func (a *AddIn) SetUserInterfaceLanguageCode(lang entities.UTF16) {
	a.lang = lang.String()
	if r, ok := a.target.(LanguageReceiver); ok {
		r.SetUserInterfaceLanguageCode(a.lang)
	}
}

// Init stores conn in the definition's ports.Connection field, if it has
// one, then runs its Init hook.
func (a *AddIn) Init(conn ports.Connection) error {
	if a.def.conn != nil {
		a.root.FieldByIndex(a.def.conn).Set(reflect.ValueOf(&conn).Elem())
	}
	if i, ok := a.target.(Initializer); ok {
		return i.Init(conn)
	}
	return nil
}

// Done runs the definition's Done hook.
func (a *AddIn) Done() {
	if f, ok := a.target.(Finalizer); ok {
		f.Done()
	}
}

func (a *AddIn) prop(num int) (*propDef, bool) {
	if num < 0 || num >= len(a.def.Props) {
		return nil, false
	}
	return &a.def.Props[num], true
}

func (a *AddIn) method(num int) (*methodDef, bool) {
	if num < 0 || num >= len(a.def.Methods) {
		return nil, false
	}
	return &a.def.Methods[num], true
}

// pickName returns the alias for any non-zero selector, falling back to the
// primary name when no alias is declared.
func pickName(name, aliasName string, alias int) string {
	if alias != 0 && aliasName != "" {
		return aliasName
	}
	return name
}
