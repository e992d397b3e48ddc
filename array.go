package jdom

import (
	"fmt"
	"iter"

	"github.com/jdom-format/go-jdom/container"
	"github.com/jdom-format/go-jdom/encode"
)

// Array is an ordered sequence of Values backed by a shared container.
// A nil container is the empty array. Copy is O(1): both handles share
// the container until one of them mutates, at which point the mutating
// handle detaches onto a private copy. Read operations never detach.
//
// Index handling is two-tier. Query-like operations (At, TakeAt,
// RemoveAt) are total: out-of-range indices yield the Undefined sentinel
// or do nothing. Insert, Replace and RefAt treat an out-of-range index
// as a programming error and panic.
type Array struct {
	c *container.Container
}

// NewArray returns an array holding the given values.
func NewArray(values ...Value) *Array {
	a := &Array{}
	if len(values) == 0 {
		return a
	}
	a.c = container.New(len(values))
	for i, v := range values {
		a.c.InsertAt(i, storedElement(v))
	}
	return a
}

// FromStrings returns an array of string values, in order.
func FromStrings(list []string) *Array {
	a := &Array{}
	if len(list) == 0 {
		return a
	}
	a.c = container.New(len(list))
	for i, s := range list {
		a.c.InsertAt(i, container.FromString(s))
	}
	return a
}

// Copy returns a new handle sharing a's container. The copy is O(1);
// storage is duplicated only when one of the handles mutates.
func (a *Array) Copy() *Array {
	if a == nil {
		return &Array{}
	}
	a.c.Ref()
	return &Array{c: a.c}
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return a.c.Len()
}

func (a *Array) IsEmpty() bool {
	return a.Len() == 0
}

// At returns the value at index i, or the Undefined sentinel when i is
// out of range. Indexing never fails.
func (a *Array) At(i int) Value {
	if a == nil || i < 0 || i >= a.c.Len() {
		return Undefined()
	}
	return fromElement(a.c.At(i))
}

// First is At(0).
func (a *Array) First() Value {
	return a.At(0)
}

// Last is At(Len()-1); Undefined on the empty array.
func (a *Array) Last() Value {
	return a.At(a.Len() - 1)
}

// Insert places v at index i, shifting elements at and after i one slot
// later. i must be in [0, Len()]; violating that panics. An Undefined
// value is stored as null.
func (a *Array) Insert(i int, v Value) {
	size := a.c.Len()
	if i < 0 || i > size {
		panic(fmt.Sprintf("jdom: Insert index %d out of range [0,%d]", i, size))
	}
	a.detach(size + 1)
	a.c.InsertAt(i, storedElement(v))
}

// Append is Insert(Len(), v).
func (a *Array) Append(v Value) {
	a.Insert(a.Len(), v)
}

// Prepend is Insert(0, v).
func (a *Array) Prepend(v Value) {
	a.Insert(0, v)
}

// RemoveAt removes the value at index i, shifting later elements one
// slot earlier. Out-of-range indices are a silent no-op.
func (a *Array) RemoveAt(i int) {
	if a == nil || a.c == nil || i < 0 || i >= a.c.Len() {
		return
	}
	a.detach(0)
	a.c.RemoveAt(i)
}

// RemoveFirst is RemoveAt(0). The array must not be empty.
func (a *Array) RemoveFirst() {
	a.RemoveAt(0)
}

// RemoveLast is RemoveAt(Len()-1). The array must not be empty.
func (a *Array) RemoveLast() {
	a.RemoveAt(a.Len() - 1)
}

// TakeAt removes and returns the value at index i. Out-of-range indices
// return the Undefined sentinel without mutating.
func (a *Array) TakeAt(i int) Value {
	if a == nil || a.c == nil || i < 0 || i >= a.c.Len() {
		return Undefined()
	}
	a.detach(0)
	v := fromElement(a.c.ExtractAt(i))
	a.c.RemoveAt(i)
	return v
}

// Replace overwrites the value at index i in place. i must be in
// [0, Len()); violating that panics. An Undefined value is stored as
// null.
func (a *Array) Replace(i int, v Value) {
	size := a.c.Len()
	if i < 0 || i >= size {
		panic(fmt.Sprintf("jdom: Replace index %d out of range [0,%d)", i, size))
	}
	a.detach(0)
	a.c.ReplaceAt(i, storedElement(v))
}

// Set is Replace; it exists so bracket-assignment call sites read
// naturally without the ValueRef proxy.
func (a *Array) Set(i int, v Value) {
	a.Replace(i, v)
}

// Contains reports whether any element compares equal to v. Linear scan,
// value equality.
func (a *Array) Contains(v Value) bool {
	if a == nil || a.c == nil || v.IsUndefined() {
		return false
	}
	e := v.toElement()
	for i := range a.c.Len() {
		if elementEqual(a.c.At(i), e) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold equal values in the same order.
// Handles sharing one container are equal immediately; nil and empty
// arrays are equal to each other.
func (a *Array) Equal(b *Array) bool {
	var ac, bc *container.Container
	if a != nil {
		ac = a.c
	}
	if b != nil {
		bc = b.c
	}
	return containerEqual(ac, bc)
}

// All iterates index/value pairs in order, without detaching.
func (a *Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if a == nil {
			return
		}
		for i := range a.c.Len() {
			if !yield(i, fromElement(a.c.At(i))) {
				return
			}
		}
	}
}

// Values iterates values in order, without detaching.
func (a *Array) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if a == nil {
			return
		}
		for i := range a.c.Len() {
			if !yield(fromElement(a.c.At(i))) {
				return
			}
		}
	}
}

// ToSlice lowers the array to a []any variant graph (nil, bool, int64,
// float64, string, []any, map[string]any). The inverse of FromSlice on
// that set.
func (a *Array) ToSlice() []any {
	if a == nil || a.c == nil {
		return []any{}
	}
	v, err := container.ToVariant(container.FromArray(a.c))
	if err != nil {
		// object containers are well-formed by construction
		panic("jdom: " + err.Error())
	}
	return v.([]any)
}

func (a *Array) String() string {
	if a == nil || a.c == nil {
		return "[]"
	}
	return encode.MustString(container.FromArray(a.c))
}

// detach ensures a.c is uniquely owned with capacity for at least
// reserve elements. Every mutator calls it before touching storage; no
// read path does.
func (a *Array) detach(reserve int) {
	a.c = container.Detach(a.c, reserve)
}

// ValueRef is a transient read-modify-write proxy bound to one index of
// an array. Any later mutation of the array through other means leaves
// the proxy pointing at whatever now occupies the index.
type ValueRef struct {
	a *Array
	i int
}

// RefAt returns a mutable reference to index i. i must be in [0, Len());
// violating that panics.
func (a *Array) RefAt(i int) ValueRef {
	if a == nil || i < 0 || i >= a.c.Len() {
		panic(fmt.Sprintf("jdom: RefAt index %d out of range [0,%d)", i, a.Len()))
	}
	return ValueRef{a: a, i: i}
}

// Value reads through the reference.
func (r ValueRef) Value() Value {
	return r.a.At(r.i)
}

// Set writes through the reference; it is Replace on the bound index.
func (r ValueRef) Set(v Value) {
	r.a.Replace(r.i, v)
}
