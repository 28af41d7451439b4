package component

import (
	"errors"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

type fakeProp struct {
	name, alias string
	value       entities.Value
	readable    bool
	writable    bool
}

type fakeMethod struct {
	name, alias string
	nParams     int
	defaults    map[int]entities.Value
	proc        func(*entities.Params) error
	fn          func(*entities.Params) (entities.Value, error)
}

// fakeAddIn is a hand-written ports.AddIn with Lifecycle hooks.
type fakeAddIn struct {
	props   []fakeProp
	methods []fakeMethod

	locale, lang string
	conn         ports.Connection
	initErr      error
	done         bool
	calls        int
}

var errFake = errors.New("fake failure")

func newFakeAddIn() *fakeAddIn {
	return &fakeAddIn{
		props: []fakeProp{
			{name: "Total", alias: "Итого", value: entities.Int32Value(10), readable: true},
			{name: "Label", alias: "Метка", value: entities.StringValue("hi"), readable: true, writable: true},
		},
		methods: []fakeMethod{
			{
				name: "Bump", alias: "Увеличить", nParams: 3,
				proc: func(p *entities.Params) error {
					i, ok := p.Get(1).Int32()
					if !ok {
						return errFake
					}
					p.Ref(1).SetInt32(i + 1)
					return nil
				},
			},
			{
				name: "Concat", alias: "Соединить", nParams: 2,
				defaults: map[int]entities.Value{1: entities.StringValue("!")},
				fn: func(p *entities.Params) (entities.Value, error) {
					a, _ := p.Get(0).Str()
					b, _ := p.Get(1).Str()
					p.Set(0, entities.StringValue(""))
					return entities.StringValue(a + b), nil
				},
			},
			{
				name: "Fail", alias: "Сбой",
				proc: func(p *entities.Params) error {
					p.Set(0, entities.Int32Value(99))
					return errFake
				},
				fn: func(p *entities.Params) (entities.Value, error) {
					p.Set(0, entities.Int32Value(99))
					return entities.Int32Value(1), errFake
				},
			},
			{
				name: "Panic", alias: "Паника",
				proc: func(*entities.Params) error { panic("boom") },
				fn:   func(*entities.Params) (entities.Value, error) { panic("boom") },
			},
		},
	}
}

func (f *fakeAddIn) ExtensionName() entities.UTF16 { return entities.NewUTF16("Fake") }

func (f *fakeAddIn) NProps() int { return len(f.props) }

func (f *fakeAddIn) FindProp(name entities.UTF16) (int, bool) {
	for i, p := range f.props {
		if s := name.String(); s == p.name || s == p.alias {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeAddIn) PropName(num, alias int) (entities.UTF16, bool) {
	if num < 0 || num >= len(f.props) {
		return nil, false
	}
	if alias == 0 {
		return entities.NewUTF16(f.props[num].name), true
	}
	return entities.NewUTF16(f.props[num].alias), true
}

func (f *fakeAddIn) PropVal(num int) (entities.Value, error) {
	if num < 0 || num >= len(f.props) || !f.props[num].readable {
		return entities.Value{}, errFake
	}
	return f.props[num].value, nil
}

func (f *fakeAddIn) SetPropVal(num int, val entities.Value) error {
	if num < 0 || num >= len(f.props) || !f.props[num].writable {
		return errFake
	}
	f.props[num].value = val
	return nil
}

func (f *fakeAddIn) IsPropReadable(num int) bool {
	return num >= 0 && num < len(f.props) && f.props[num].readable
}

func (f *fakeAddIn) IsPropWritable(num int) bool {
	return num >= 0 && num < len(f.props) && f.props[num].writable
}

func (f *fakeAddIn) NMethods() int { return len(f.methods) }

func (f *fakeAddIn) FindMethod(name entities.UTF16) (int, bool) {
	for i, m := range f.methods {
		if s := name.String(); s == m.name || s == m.alias {
			return i, true
		}
	}
	return 0, false
}

func (f *fakeAddIn) MethodName(num, alias int) (entities.UTF16, bool) {
	if num < 0 || num >= len(f.methods) {
		return nil, false
	}
	if alias == 0 {
		return entities.NewUTF16(f.methods[num].name), true
	}
	return entities.NewUTF16(f.methods[num].alias), true
}

func (f *fakeAddIn) NParams(num int) int {
	if num < 0 || num >= len(f.methods) {
		return 0
	}
	return f.methods[num].nParams
}

func (f *fakeAddIn) ParamDefValue(method, param int) (entities.Value, bool) {
	if method < 0 || method >= len(f.methods) {
		return entities.Value{}, false
	}
	v, ok := f.methods[method].defaults[param]
	return v, ok
}

func (f *fakeAddIn) HasRetVal(num int) bool {
	return num >= 0 && num < len(f.methods) && f.methods[num].fn != nil
}

func (f *fakeAddIn) CallAsProc(num int, params *entities.Params) error {
	f.calls++
	if num < 0 || num >= len(f.methods) || f.methods[num].proc == nil {
		return errFake
	}
	return f.methods[num].proc(params)
}

func (f *fakeAddIn) CallAsFunc(num int, params *entities.Params) (entities.Value, error) {
	f.calls++
	if num < 0 || num >= len(f.methods) || f.methods[num].fn == nil {
		return entities.Value{}, errFake
	}
	return f.methods[num].fn(params)
}

func (f *fakeAddIn) SetLocale(loc entities.UTF16) { f.locale = loc.String() }

func (f *fakeAddIn) SetUserInterfaceLanguageCode(lang entities.UTF16) { f.lang = lang.String() }

func (f *fakeAddIn) Init(conn ports.Connection) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.conn = conn
	return nil
}

func (f *fakeAddIn) Done() { f.done = true }

var (
	_ ports.AddIn     = (*fakeAddIn)(nil)
	_ ports.Lifecycle = (*fakeAddIn)(nil)
)
