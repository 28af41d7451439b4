package abi

import (
	"testing"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/internal/testutil"
)

func BenchmarkVariant_SetValueString(b *testing.B) {
	mem := testutil.NewMemory()
	val := entities.StringValue("The quick brown fox jumps over the lazy dog")

	for b.Loop() {
		var v Variant
		if err := v.SetValue(mem, val); err != nil {
			b.Fatal(err)
		}
		mem.Free(v.data().ptr)
	}
}

func BenchmarkParamsView_Values(b *testing.B) {
	mem := testutil.NewMemory()
	defer mem.FreeAll()

	slots := make([]Variant, 8)
	for i := range slots {
		_ = slots[i].SetValue(mem, entities.Int32Value(int32(i)))
	}
	view := ViewParams(unsafe.Pointer(&slots[0]), len(slots))

	for b.Loop() {
		_ = view.Values()
	}
}
