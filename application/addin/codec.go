package addin

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// codec converts between one supported Go type and entities.Value.
type codec struct {
	typ   reflect.Type
	kind  entities.Kind // KindEmpty for entities.Value, which accepts any kind
	name  string
	from  func(entities.Value) (reflect.Value, bool)
	to    func(reflect.Value) entities.Value
	parse func(string) (entities.Value, error)
}

var (
	typeValue   = reflect.TypeFor[entities.Value]()
	typeDate    = reflect.TypeFor[entities.Date]()
	typeUTF16   = reflect.TypeFor[entities.UTF16]()
	typeBytes   = reflect.TypeFor[[]byte]()
	typeError   = reflect.TypeFor[error]()
	entitiesPkg = typeValue.PkgPath()
)

const optionalPrefix = "Optional["

// dateLayouts are accepted by date literals in tags.
var dateLayouts = []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

var codecs = map[reflect.Type]*codec{}

func register(c *codec) { codecs[c.typ] = c }

func init() {
	register(&codec{
		typ: reflect.TypeFor[bool](), kind: entities.KindBool, name: "bool",
		from: func(v entities.Value) (reflect.Value, bool) {
			b, ok := v.Bool()
			return reflect.ValueOf(b), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.BoolValue(rv.Bool()) },
		parse: func(s string) (entities.Value, error) {
			b, err := strconv.ParseBool(s)
			return entities.BoolValue(b), err
		},
	})
	register(&codec{
		typ: reflect.TypeFor[int32](), kind: entities.KindInt32, name: "int32",
		from: func(v entities.Value) (reflect.Value, bool) {
			i, ok := toInt32(v)
			return reflect.ValueOf(i), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.Int32Value(int32(rv.Int())) },
		parse: func(s string) (entities.Value, error) {
			i, err := strconv.ParseInt(s, 10, 32)
			return entities.Int32Value(int32(i)), err
		},
	})
	register(&codec{
		typ: reflect.TypeFor[float64](), kind: entities.KindFloat64, name: "float64",
		from: func(v entities.Value) (reflect.Value, bool) {
			f, ok := toFloat64(v)
			return reflect.ValueOf(f), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.Float64Value(rv.Float()) },
		parse: func(s string) (entities.Value, error) {
			f, err := strconv.ParseFloat(s, 64)
			return entities.Float64Value(f), err
		},
	})
	register(&codec{
		typ: reflect.TypeFor[string](), kind: entities.KindString, name: "string",
		from: func(v entities.Value) (reflect.Value, bool) {
			s, ok := v.Str()
			return reflect.ValueOf(s), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.StringValue(rv.String()) },
		parse: func(s string) (entities.Value, error) {
			return entities.StringValue(unquote(s)), nil
		},
	})
	register(&codec{
		typ: typeUTF16, kind: entities.KindString, name: "string",
		from: func(v entities.Value) (reflect.Value, bool) {
			u, ok := v.UTF16()
			return reflect.ValueOf(u), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.UTF16Value(rv.Interface().(entities.UTF16)) },
		parse: func(s string) (entities.Value, error) {
			return entities.StringValue(unquote(s)), nil
		},
	})
	register(&codec{
		typ: typeBytes, kind: entities.KindBlob, name: "blob",
		from: func(v entities.Value) (reflect.Value, bool) {
			b, ok := v.Blob()
			return reflect.ValueOf(b), ok
		},
		to: func(rv reflect.Value) entities.Value { return entities.BlobValue(rv.Bytes()) },
		parse: func(s string) (entities.Value, error) {
			return entities.BlobValue([]byte(unquote(s))), nil
		},
	})
	register(&codec{
		typ: typeDate, kind: entities.KindDate, name: "date",
		from: func(v entities.Value) (reflect.Value, bool) {
			d, ok := v.Date()
			return reflect.ValueOf(d), ok
		},
		to:    func(rv reflect.Value) entities.Value { return entities.DateValue(rv.Interface().(entities.Date)) },
		parse: parseDate,
	})
	register(&codec{
		typ: typeValue, kind: entities.KindEmpty, name: "any",
		from: func(v entities.Value) (reflect.Value, bool) {
			return reflect.ValueOf(v), true
		},
		to:    func(rv reflect.Value) entities.Value { return rv.Interface().(entities.Value) },
		parse: parseAny,
	})
}

// codecFor returns the codec of a plain supported type.
func codecFor(t reflect.Type) (*codec, bool) {
	c, ok := codecs[t]
	return c, ok
}

// isOptional reports whether t is an instantiation of entities.Optional.
func isOptional(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == entitiesPkg &&
		strings.HasPrefix(t.Name(), optionalPrefix) && t.NumField() == 2
}

// toInt32 accepts Int32 and integral Float64 values: the host sends whole
// numbers with either tag.
func toInt32(v entities.Value) (int32, bool) {
	if i, ok := v.Int32(); ok {
		return i, true
	}
	f, ok := v.Float64()
	if !ok || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}

func toFloat64(v entities.Value) (float64, bool) {
	if f, ok := v.Float64(); ok {
		return f, true
	}
	if i, ok := v.Int32(); ok {
		return float64(i), true
	}
	return 0, false
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return s
}

func parseDate(s string) (entities.Value, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return entities.DateValue(entities.DateFromTime(t)), nil
		}
	}
	return entities.Value{}, fmt.Errorf("invalid date literal %q", s)
}

// parseAny infers the kind of an untyped literal: empty, a boolean, an
// integer, a float, a date or, failing all of those, a string.
func parseAny(s string) (entities.Value, error) {
	switch {
	case s == "" || s == "empty":
		return entities.Empty(), nil
	case s == "true" || s == "false":
		return entities.BoolValue(s == "true"), nil
	}
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return entities.Int32Value(int32(i)), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return entities.Float64Value(f), nil
	}
	if d, err := parseDate(s); err == nil {
		return d, nil
	}
	return entities.StringValue(unquote(s)), nil
}
