package entities

import (
	"bytes"
	"fmt"
	"math"
	"slices"
)

// Kind identifies the variant held by a Value.
// The set is closed: it mirrors the value types the host can exchange.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBool
	KindInt32
	KindFloat64
	KindDate
	KindString
	KindBlob
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindBool:    "bool",
	KindInt32:   "int32",
	KindFloat64: "float64",
	KindDate:    "date",
	KindString:  "string",
	KindBlob:    "blob",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Value is an owned tagged value used by component logic for parameters,
// property values and return values.
//
// The zero Value is Empty. Constructors copy slice arguments and accessors
// return copies, so two Values never share a buffer.
type Value struct {
	kind Kind
	num  uint64 // bool, int32 and float64 payloads
	date Date
	str  UTF16
	blob []byte
}

// Empty returns the empty value.
func Empty() Value { return Value{} }

// BoolValue returns a Bool value.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int32Value returns an Int32 value.
func Int32Value(i int32) Value {
	return Value{kind: KindInt32, num: uint64(uint32(i))}
}

// Float64Value returns a Float64 value.
func Float64Value(f float64) Value {
	return Value{kind: KindFloat64, num: math.Float64bits(f)}
}

// DateValue returns a Date value.
func DateValue(d Date) Value {
	return Value{kind: KindDate, date: d}
}

// StringValue returns a String value holding s encoded as UTF-16.
func StringValue(s string) Value {
	return Value{kind: KindString, str: NewUTF16(s)}
}

// UTF16Value returns a String value holding a copy of u.
func UTF16Value(u UTF16) Value {
	return Value{kind: KindString, str: u.Clone()}
}

// BlobValue returns a Blob value holding a copy of b.
func BlobValue(b []byte) Value {
	return Value{kind: KindBlob, blob: bytes.Clone(b)}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the Empty variant.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Bool returns the payload of a Bool value.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num != 0, true
}

// Int32 returns the payload of an Int32 value.
func (v Value) Int32() (int32, bool) {
	if v.kind != KindInt32 {
		return 0, false
	}
	return int32(uint32(v.num)), true
}

// Float64 returns the payload of a Float64 value.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindFloat64 {
		return 0, false
	}
	return math.Float64frombits(v.num), true
}

// Date returns the payload of a Date value.
func (v Value) Date() (Date, bool) {
	if v.kind != KindDate {
		return Date{}, false
	}
	return v.date, true
}

// Str returns the payload of a String value decoded to a Go string.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str.String(), true
}

// UTF16 returns a copy of the code units of a String value.
func (v Value) UTF16() (UTF16, bool) {
	if v.kind != KindString {
		return nil, false
	}
	return v.str.Clone(), true
}

// Blob returns a copy of the payload of a Blob value.
func (v Value) Blob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return bytes.Clone(v.blob), true
}

// Len returns the payload length in code units (String) or bytes (Blob),
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindString:
		return len(v.str)
	case KindBlob:
		return len(v.blob)
	default:
		return 0
	}
}

// Equal reports whether v and other hold the same variant and payload.
// Values of different kinds are never equal. Float64 uses IEEE comparison,
// so NaN is not equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindBool, KindInt32:
		return v.num == other.num
	case KindFloat64:
		return math.Float64frombits(v.num) == math.Float64frombits(other.num)
	case KindDate:
		return v.date == other.date
	case KindString:
		return slices.Equal(v.str, other.str)
	case KindBlob:
		return bytes.Equal(v.blob, other.blob)
	default:
		return false
	}
}

// SetBool replaces v with a Bool value.
func (v *Value) SetBool(b bool) { *v = BoolValue(b) }

// SetInt32 replaces v with an Int32 value.
func (v *Value) SetInt32(i int32) { *v = Int32Value(i) }

// SetFloat64 replaces v with a Float64 value.
func (v *Value) SetFloat64(f float64) { *v = Float64Value(f) }

// SetDate replaces v with a Date value.
func (v *Value) SetDate(d Date) { *v = DateValue(d) }

// SetStr replaces v with a String value.
func (v *Value) SetStr(s string) { *v = StringValue(s) }

// SetUTF16 replaces v with a String value holding a copy of u.
func (v *Value) SetUTF16(u UTF16) { *v = UTF16Value(u) }

// SetBlob replaces v with a Blob value holding a copy of b.
func (v *Value) SetBlob(b []byte) { *v = BlobValue(b) }

func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return "Empty"
	case KindBool:
		b, _ := v.Bool()
		return fmt.Sprintf("Bool(%t)", b)
	case KindInt32:
		i, _ := v.Int32()
		return fmt.Sprintf("Int32(%d)", i)
	case KindFloat64:
		f, _ := v.Float64()
		return fmt.Sprintf("Float64(%g)", f)
	case KindDate:
		return fmt.Sprintf("Date(%s)", v.date)
	case KindString:
		return fmt.Sprintf("String(%q)", v.str.String())
	case KindBlob:
		return fmt.Sprintf("Blob(%d bytes)", len(v.blob))
	default:
		return v.kind.String()
	}
}
