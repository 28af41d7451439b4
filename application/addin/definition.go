package addin

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Component is embedded in a component struct to declare its extension name.
// Tag format: `name:"Calculator"`
type Component struct{}

// Method is a field type declaring a host-callable method.
// Tag format: `name:"Add" alias:"Сложить" method:"Add" defaults:"1=0;2=x" optional:"1=-1"`
//
// name defaults to the field name and method (the Go method to call) to name.
// defaults and optional take ";"-separated "index=literal" pairs with 0-based
// parameter indexes.
type Method struct{}

var (
	typeComponent  = reflect.TypeFor[Component]()
	typeMethod     = reflect.TypeFor[Method]()
	typeConnection = reflect.TypeFor[ports.Connection]()
)

// validate is a package-level singleton; it caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("identifier", isIdentifier)
	v.RegisterStructValidation(uniqueNames, definition{})
	return v
}

// isIdentifier accepts names the host language can call: letters, digits and
// underscores, not starting with a digit.
func isIdentifier(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

// uniqueNames rejects a primary name or alias used by two entries of the same
// table, since FindProp and FindMethod match both.
func uniqueNames(sl validator.StructLevel) {
	d := sl.Current().Interface().(definition)

	seen := map[string]bool{}
	for i, p := range d.Props {
		for _, n := range []string{p.Name, p.Alias} {
			if n == "" {
				continue
			}
			if seen[n] {
				sl.ReportError(p.Name, fmt.Sprintf("Props[%d]", i), "Name", "unique_name", n)
			}
			seen[n] = true
		}
	}

	clear(seen)
	for i, m := range d.Methods {
		for _, n := range []string{m.Name, m.Alias} {
			if n == "" {
				continue
			}
			if seen[n] {
				sl.ReportError(m.Name, fmt.Sprintf("Methods[%d]", i), "Name", "unique_name", n)
			}
			seen[n] = true
		}
	}
}

type definition struct {
	Name    string      `validate:"required,excludesall=0x7C"`
	Props   []propDef   `validate:"dive"`
	Methods []methodDef `validate:"dive"`

	conn []int // index of a ports.Connection field, if any
}

type propDef struct {
	Name     string `validate:"identifier"`
	Alias    string `validate:"omitempty,identifier"`
	Readable bool
	Writable bool `validate:"required_without=Readable"`

	field []int
	codec *codec
}

type paramDef struct {
	codec    *codec
	optType  reflect.Type // entities.Optional[T] when optional
	out      bool
	optional bool
	none     entities.Value
	def      *entities.Value
}

type methodDef struct {
	Name   string `validate:"identifier"`
	Alias  string `validate:"omitempty,identifier"`
	GoName string `validate:"required"`

	params []paramDef
	fn     reflect.Value
	ret    *codec
	retErr bool
}

// parse reads the tags of the struct behind def and binds its methods.
func parse(def any) (*definition, error) {
	rv := reflect.ValueOf(def)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("component must be a non-nil pointer to struct, got %T", def)
	}
	st := rv.Elem().Type()

	d := &definition{}
	found := false
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		var err error
		switch {
		case f.Type == typeComponent:
			d.Name = f.Tag.Get("name")
			found = true
		case f.Type == typeMethod:
			var m methodDef
			m, err = parseMethod(rv, f)
			d.Methods = append(d.Methods, m)
		case f.Tag.Get("prop") != "":
			var p propDef
			p, err = parseProp(f)
			d.Props = append(d.Props, p)
		case f.Type == typeConnection && f.IsExported():
			d.conn = f.Index
		}
		if err != nil {
			return nil, &sdkerrors.DefinitionError{Component: st.Name(), Field: f.Name, Err: err}
		}
	}
	if !found {
		return nil, &sdkerrors.DefinitionError{Component: st.Name(), Err: errors.New("struct must embed addin.Component")}
	}

	if err := validate.Struct(*d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, &sdkerrors.DefinitionError{
				Component: st.Name(),
				Field:     fe.Namespace(),
				Err:       fmt.Errorf("failed %q validation (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return nil, &sdkerrors.DefinitionError{Component: st.Name(), Err: err}
	}
	return d, nil
}

func parseProp(f reflect.StructField) (propDef, error) {
	p := propDef{
		Name:  f.Tag.Get("prop"),
		Alias: f.Tag.Get("alias"),
		field: f.Index,
	}
	if !f.IsExported() {
		return p, errors.New("property field must be exported")
	}
	switch access := f.Tag.Get("access"); access {
	case "", "rw":
		p.Readable, p.Writable = true, true
	case "r":
		p.Readable = true
	case "w":
		p.Writable = true
	default:
		return p, fmt.Errorf("invalid access %q (want r, w or rw)", access)
	}
	c, ok := codecFor(f.Type)
	if !ok {
		return p, fmt.Errorf("unsupported property type %s", f.Type)
	}
	p.codec = c
	return p, nil
}

func parseMethod(rv reflect.Value, f reflect.StructField) (methodDef, error) {
	m := methodDef{
		Name:  f.Tag.Get("name"),
		Alias: f.Tag.Get("alias"),
	}
	if m.Name == "" {
		m.Name = f.Name
	}
	m.GoName = f.Tag.Get("method")
	if m.GoName == "" {
		m.GoName = m.Name
	}

	m.fn = rv.MethodByName(m.GoName)
	if !m.fn.IsValid() {
		return m, fmt.Errorf("no exported method %s on %s", m.GoName, rv.Type())
	}
	mt := m.fn.Type()
	if mt.IsVariadic() {
		return m, fmt.Errorf("method %s is variadic", m.GoName)
	}

	for i := 0; i < mt.NumIn(); i++ {
		p, err := parseParam(mt.In(i))
		if err != nil {
			return m, fmt.Errorf("method %s, param %d: %w", m.GoName, i, err)
		}
		m.params = append(m.params, p)
	}
	if err := parseResults(&m, mt); err != nil {
		return m, fmt.Errorf("method %s: %w", m.GoName, err)
	}

	optional, err := parseLiterals(f.Tag.Get("optional"), len(m.params))
	if err != nil {
		return m, fmt.Errorf("optional tag: %w", err)
	}
	defaults, err := parseLiterals(f.Tag.Get("defaults"), len(m.params))
	if err != nil {
		return m, fmt.Errorf("defaults tag: %w", err)
	}

	for i := range m.params {
		p := &m.params[i]
		lit, hasNone := optional[i]
		if hasNone && !p.optional {
			return m, fmt.Errorf("param %d has a sentinel but is not entities.Optional", i)
		}
		if hasNone {
			none, err := p.codec.parse(lit)
			if err != nil {
				return m, fmt.Errorf("param %d sentinel: %w", i, err)
			}
			p.none = none
		}
		if p.optional {
			if _, ok := defaults[i]; ok {
				return m, fmt.Errorf("param %d is optional; its sentinel is its default", i)
			}
			def := p.none
			p.def = &def
			continue
		}
		if lit, ok := defaults[i]; ok {
			def, err := p.codec.parse(lit)
			if err != nil {
				return m, fmt.Errorf("param %d default: %w", i, err)
			}
			p.def = &def
		}
	}
	return m, nil
}

func parseParam(t reflect.Type) (paramDef, error) {
	if c, ok := codecFor(t); ok {
		return paramDef{codec: c}, nil
	}
	if t.Kind() == reflect.Pointer {
		if c, ok := codecFor(t.Elem()); ok {
			return paramDef{codec: c, out: true}, nil
		}
	}
	if isOptional(t) {
		if c, ok := codecFor(t.Field(0).Type); ok {
			return paramDef{codec: c, optType: t, optional: true}, nil
		}
	}
	return paramDef{}, fmt.Errorf("unsupported parameter type %s", t)
}

func parseResults(m *methodDef, mt reflect.Type) error {
	n := mt.NumOut()
	if n > 0 && mt.Out(n-1) == typeError {
		m.retErr = true
		n--
	}
	switch n {
	case 0:
		return nil
	case 1:
		c, ok := codecFor(mt.Out(0))
		if !ok {
			return fmt.Errorf("unsupported result type %s", mt.Out(0))
		}
		m.ret = c
		return nil
	default:
		return errors.New("results must be (), (error), (T) or (T, error)")
	}
}

// parseLiterals splits "0=a;2=b" into index -> literal.
func parseLiterals(tag string, n int) (map[int]string, error) {
	out := map[int]string{}
	if tag == "" {
		return out, nil
	}
	for _, pair := range strings.Split(tag, ";") {
		idx, lit, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("entry %q is not index=literal", pair)
		}
		i, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || i < 0 || i >= n {
			return nil, fmt.Errorf("entry %q: parameter index out of range [0, %d)", pair, n)
		}
		if _, dup := out[i]; dup {
			return nil, fmt.Errorf("parameter %d listed twice", i)
		}
		out[i] = lit
	}
	return out, nil
}
