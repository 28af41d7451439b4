package abi

import (
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
)

// ParamsView is a non-owning view over the argument slots the host passed
// to one call. Its length is fixed by the host.
type ParamsView []Variant

// ViewParams wraps the host's argument run. A nil base or a non-positive
// count is the zero-argument call and is never dereferenced.
func ViewParams(base unsafe.Pointer, n int) ParamsView {
	if base == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*Variant)(base), n)
}

// Values converts every slot once into an owned parameter list.
func (p ParamsView) Values() *entities.Params {
	values := make([]entities.Value, len(p))
	for i := range p {
		values[i] = p[i].Value()
	}
	return entities.NewParams(values...)
}

// Stage adds a writeback of every parameter to its own slot to b.
// params must come from p.Values. A slot whose tag has no kind keeps its
// host value unless the method stored something other than Empty in it.
func (p ParamsView) Stage(b *Batch, params *entities.Params) error {
	for i := range p {
		if !p[i].convertible() && params.Get(i).IsEmpty() {
			continue
		}
		if err := b.Add(&p[i], params.Get(i)); err != nil {
			return err
		}
	}
	return nil
}
