package abi

import (
	"time"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// VariantType is the tag of a Variant (TYPEVAR in the host headers).
type VariantType uint16

// Tag values as declared by the host. Only the ones the bridge converts
// have a matching entities.Kind; the rest read as Empty.
const (
	TypeEmpty     VariantType = 0
	TypeNull      VariantType = 1
	TypeI2        VariantType = 2
	TypeI4        VariantType = 3
	TypeR4        VariantType = 4
	TypeR8        VariantType = 5
	TypeDate      VariantType = 6
	TypeTM        VariantType = 7
	TypePSTR      VariantType = 8
	TypeInterface VariantType = 9
	TypeError     VariantType = 10
	TypeBool      VariantType = 11
	TypeVariant   VariantType = 12
	TypeI1        VariantType = 13
	TypeUI1       VariantType = 14
	TypeUI2       VariantType = 15
	TypeUI4       VariantType = 16
	TypeI8        VariantType = 17
	TypeUI8       VariantType = 18
	TypeInt       VariantType = 19
	TypeUint      VariantType = 20
	TypeHResult   VariantType = 21
	TypePWSTR     VariantType = 22
	TypeBlob      VariantType = 23
	TypeCLSID     VariantType = 24
)

// Variant mirrors the host's tVariant: a value union followed by the
// element count and the type tag. It must only be handled by pointer when it
// lives in host memory.
type Variant struct {
	value    [variantValueWords]uint64
	elements uint32
	vt       VariantType
}

// dataStr overlays the pointer/length pair used by PWSTR and BLOB.
type dataStr struct {
	ptr unsafe.Pointer
	len uint32
}

// Layout checks: a mismatch here fails compilation instead of corrupting the host.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Variant{})-VariantSize]
	_ = [1]struct{}{}[unsafe.Offsetof(Variant{}.elements)-variantValueWords*8]
	_ = [1]struct{}{}[unsafe.Offsetof(Variant{}.vt)-variantValueWords*8-4]
	_ = [variantValueWords * 8]struct{}{}[unsafe.Sizeof(Tm{})-1]
)

// Type returns the variant's tag.
func (v *Variant) Type() VariantType { return v.vt }

// Elements returns the cbElements field.
func (v *Variant) Elements() uint32 { return v.elements }

func (v *Variant) union() unsafe.Pointer { return unsafe.Pointer(&v.value) }

func (v *Variant) boolByte() *byte { return (*byte)(v.union()) }
func (v *Variant) int32Val() *int32 { return (*int32)(v.union()) }
func (v *Variant) float64Val() *float64 { return (*float64)(v.union()) }
func (v *Variant) tm() *Tm { return (*Tm)(v.union()) }
func (v *Variant) data() *dataStr { return (*dataStr)(v.union()) }

// reset clears the union and the element count and sets the tag.
func (v *Variant) reset(vt VariantType) {
	v.value = [variantValueWords]uint64{}
	v.elements = 0
	v.vt = vt
}

// Date converts a broken-down host time. The host carries no sub-second
// part, so Millisecond is always 0.
func (t *Tm) Date() entities.Date {
	return entities.Date{
		Year:   int(t.Year) + 1900,
		Month:  int(t.Mon) + 1,
		Day:    int(t.Mday),
		Hour:   int(t.Hour),
		Minute: int(t.Min),
		Second: int(t.Sec),
	}
}

// tmFromDate fills the struct tm fields, including the derived weekday and
// day of year. Millisecond is dropped.
func tmFromDate(d entities.Date) Tm {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return Tm{
		Sec:  int32(d.Second),
		Min:  int32(d.Minute),
		Hour: int32(d.Hour),
		Mday: int32(d.Day),
		Mon:  int32(d.Month - 1),
		Year: int32(d.Year - 1900),
		Wday: int32(t.Weekday()),
		Yday: int32(t.YearDay() - 1),
	}
}
