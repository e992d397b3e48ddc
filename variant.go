package jdom

import (
	"github.com/jdom-format/go-jdom/container"
	"github.com/jdom-format/go-jdom/gomap"
)

// FromSlice builds an array from a slice of Go values. Each element is
// normalized through the gomap bridge, so structs, maps and nested
// slices are accepted. Variant kinds with no JSON equivalent fail.
func FromSlice(list []any) (*Array, error) {
	norm, err := gomap.Normalize(list)
	if err != nil {
		return nil, err
	}
	if norm == nil {
		return &Array{}, nil
	}
	e, err := container.FromVariant(norm)
	if err != nil {
		return nil, err
	}
	return &Array{c: e.Sub}, nil
}

// FromMap builds an object from a Go map or struct-shaped value graph,
// normalized through the gomap bridge.
func FromMap(m map[string]any) (*Object, error) {
	norm, err := gomap.Normalize(m)
	if err != nil {
		return nil, err
	}
	if norm == nil {
		return &Object{}, nil
	}
	e, err := container.FromVariant(norm)
	if err != nil {
		return nil, err
	}
	return &Object{c: e.Sub}, nil
}

// FromGo builds a Value from any Go value accepted by the gomap bridge.
func FromGo(v any) (Value, error) {
	norm, err := gomap.Normalize(v)
	if err != nil {
		return Undefined(), err
	}
	e, err := container.FromVariant(norm)
	if err != nil {
		return Undefined(), err
	}
	return fromElementOwned(e), nil
}

// ToGo lowers a Value to the variant set. Undefined lowers to nil, like
// storage does.
func (v Value) ToGo() any {
	res, err := container.ToVariant(v.toElement())
	if err != nil {
		panic("jdom: " + err.Error())
	}
	return res
}

// fromElementOwned wraps a freshly-built element whose sub-container the
// caller already owns, so no extra reference is taken.
func fromElementOwned(e container.Element) Value {
	switch e.Kind {
	case container.ArrayKind:
		return Value{t: ArrayType, c: e.Sub}
	case container.ObjectKind:
		return Value{t: ObjectType, c: e.Sub}
	}
	return fromElement(e)
}
