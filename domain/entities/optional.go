package entities

// Optional is the result of reading a parameter that the caller may omit.
// Valid is false when the caller passed the "omitted" sentinel.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OrElse returns the held value, or def when o is absent.
func (o Optional[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

// ReadOptional applies the sentinel convention for omitted parameters.
// There is no null tag on the wire, so the host's "omitted" marker is a value
// chosen by the component (usually its declared default).
//
//   - v equal to none: (None, true)
//   - v convertible by conv: (Some(x), true)
//   - otherwise: (None, false), the value is not applicable
func ReadOptional[T any](v, none Value, conv func(Value) (T, bool)) (Optional[T], bool) {
	if v.Equal(none) {
		return None[T](), true
	}
	x, ok := conv(v)
	if !ok {
		return None[T](), false
	}
	return Some(x), true
}

// OptionalBool reads v as an optional Bool.
func (v Value) OptionalBool(none Value) (Optional[bool], bool) {
	return ReadOptional(v, none, Value.Bool)
}

// OptionalInt32 reads v as an optional Int32.
func (v Value) OptionalInt32(none Value) (Optional[int32], bool) {
	return ReadOptional(v, none, Value.Int32)
}

// OptionalFloat64 reads v as an optional Float64.
func (v Value) OptionalFloat64(none Value) (Optional[float64], bool) {
	return ReadOptional(v, none, Value.Float64)
}

// OptionalDate reads v as an optional Date.
func (v Value) OptionalDate(none Value) (Optional[Date], bool) {
	return ReadOptional(v, none, Value.Date)
}

// OptionalStr reads v as an optional String.
func (v Value) OptionalStr(none Value) (Optional[string], bool) {
	return ReadOptional(v, none, Value.Str)
}

// OptionalUTF16 reads v as an optional String kept as code units.
func (v Value) OptionalUTF16(none Value) (Optional[UTF16], bool) {
	return ReadOptional(v, none, Value.UTF16)
}

// OptionalBlob reads v as an optional Blob.
func (v Value) OptionalBlob(none Value) (Optional[[]byte], bool) {
	return ReadOptional(v, none, Value.Blob)
}
