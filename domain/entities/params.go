package entities

import "iter"

// Params is the argument list of one call. Its length is fixed by the caller;
// component code can read and replace elements (in/out parameters) but cannot
// add or remove them.
type Params struct {
	values []Value
}

// NewParams returns a Params holding values. The slice is taken over, not copied.
func NewParams(values ...Value) *Params {
	return &Params{values: values}
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// Get returns the i-th parameter, or Empty when i is out of range.
func (p *Params) Get(i int) Value {
	if i < 0 || i >= p.Len() {
		return Empty()
	}
	return p.values[i]
}

// Set replaces the i-th parameter. It reports false when i is out of range.
func (p *Params) Set(i int, v Value) bool {
	if i < 0 || i >= p.Len() {
		return false
	}
	p.values[i] = v
	return true
}

// Ref returns a pointer to the i-th parameter for in-place mutation,
// or nil when i is out of range.
func (p *Params) Ref(i int) *Value {
	if i < 0 || i >= p.Len() {
		return nil
	}
	return &p.values[i]
}

// All iterates over the parameters in order.
func (p *Params) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i := 0; i < p.Len(); i++ {
			if !yield(i, p.values[i]) {
				return
			}
		}
	}
}
