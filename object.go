package jdom

import (
	"iter"
	"sort"

	"github.com/jdom-format/go-jdom/container"
	"github.com/jdom-format/go-jdom/encode"
)

// Object is a string-keyed mapping of Values over the same shared
// container discipline as Array. The container holds alternating
// key/value slots with keys sorted ascending, so lookups are binary
// searches and iteration is deterministic.
//
// Get is total: a missing key yields the Undefined sentinel. Set with an
// Undefined value removes the key.
type Object struct {
	c *container.Container
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// Copy returns a new handle sharing o's container.
func (o *Object) Copy() *Object {
	if o == nil {
		return &Object{}
	}
	o.c.Ref()
	return &Object{c: o.c}
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.c.Len() / 2
}

func (o *Object) IsEmpty() bool {
	return o.Len() == 0
}

// find returns the slot index of key's key element and whether it is
// present; absent keys return the insertion slot.
func (o *Object) find(key string) (int, bool) {
	n := o.c.Len() / 2
	j := sort.Search(n, func(j int) bool {
		return o.c.At(2*j).String >= key
	})
	if j < n && o.c.At(2*j).String == key {
		return 2 * j, true
	}
	return 2 * j, false
}

// Get returns the value for key, or the Undefined sentinel when key is
// absent.
func (o *Object) Get(key string) Value {
	if o == nil || o.c == nil {
		return Undefined()
	}
	slot, ok := o.find(key)
	if !ok {
		return Undefined()
	}
	return fromElement(o.c.At(slot + 1))
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil || o.c == nil {
		return false
	}
	_, ok := o.find(key)
	return ok
}

// Set maps key to v, replacing any existing value. Setting an Undefined
// value removes the key.
func (o *Object) Set(key string, v Value) {
	if v.IsUndefined() {
		o.Delete(key)
		return
	}
	size := o.c.Len()
	o.detach(size + 2)
	slot, ok := o.find(key)
	if ok {
		o.c.ReplaceAt(slot+1, storedElement(v))
		return
	}
	o.c.InsertAt(slot, container.FromString(key))
	o.c.InsertAt(slot+1, storedElement(v))
}

// Delete removes key. Absent keys are a silent no-op.
func (o *Object) Delete(key string) {
	if o == nil || o.c == nil {
		return
	}
	slot, ok := o.find(key)
	if !ok {
		return
	}
	o.detach(0)
	o.c.RemoveAt(slot + 1)
	o.c.RemoveAt(slot)
}

// Take removes key and returns its value, or the Undefined sentinel when
// key is absent.
func (o *Object) Take(key string) Value {
	if o == nil || o.c == nil {
		return Undefined()
	}
	slot, ok := o.find(key)
	if !ok {
		return Undefined()
	}
	o.detach(0)
	v := fromElement(o.c.ExtractAt(slot + 1))
	o.c.RemoveAt(slot + 1)
	o.c.RemoveAt(slot)
	return v
}

// Keys returns the keys in sorted order.
func (o *Object) Keys() []string {
	n := o.Len()
	res := make([]string, n)
	for j := range n {
		res[j] = o.c.At(2 * j).String
	}
	return res
}

// Equal reports whether o and p hold equal values under equal keys.
// Handles sharing one container are equal immediately; nil and empty
// objects are equal to each other. Key order is canonical, so pairwise
// comparison suffices.
func (o *Object) Equal(p *Object) bool {
	var oc, pc *container.Container
	if o != nil {
		oc = o.c
	}
	if p != nil {
		pc = p.c
	}
	return containerEqual(oc, pc)
}

// All iterates key/value pairs in key order, without detaching.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for j := range o.c.Len() / 2 {
			if !yield(o.c.At(2*j).String, fromElement(o.c.At(2*j+1))) {
				return
			}
		}
	}
}

// ToMap lowers the object to a map[string]any variant graph.
func (o *Object) ToMap() map[string]any {
	if o == nil || o.c == nil {
		return map[string]any{}
	}
	v, err := container.ToVariant(container.FromObject(o.c))
	if err != nil {
		panic("jdom: " + err.Error())
	}
	return v.(map[string]any)
}

func (o *Object) String() string {
	if o == nil || o.c == nil {
		return "{}"
	}
	return encode.MustString(container.FromObject(o.c))
}

func (o *Object) detach(reserve int) {
	o.c = container.Detach(o.c, reserve)
}
