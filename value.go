package jdom

import (
	"github.com/jdom-format/go-jdom/container"
	"github.com/jdom-format/go-jdom/encode"
)

// Value is the tagged union at the facade boundary: null, bool, double,
// string, array, object, or the undefined sentinel. Values are small and
// passed by value; array and object payloads share their container with
// the originating handle under the copy-on-write discipline.
//
// Numbers carry an exact int64 payload when built with FromInt and a
// float64 payload otherwise; both present as DoubleType and compare
// numerically.
type Value struct {
	t     Type
	b     bool
	isInt bool
	i     int64
	f     float64
	s     string
	c     *container.Container
}

func Null() Value {
	return Value{t: NullType}
}

// Undefined returns the sentinel value produced by out-of-range queries.
// Storing it in an array or object normalizes it to null.
func Undefined() Value {
	return Value{t: UndefinedType}
}

func FromBool(v bool) Value {
	return Value{t: BoolType, b: v}
}

func FromInt(v int64) Value {
	return Value{t: DoubleType, isInt: true, i: v}
}

func FromFloat(v float64) Value {
	return Value{t: DoubleType, f: v}
}

func FromString(v string) Value {
	return Value{t: StringType, s: v}
}

// FromArray returns a Value sharing a's container. Mutating a afterwards
// detaches it; the Value keeps the state it captured.
func FromArray(a *Array) Value {
	var c *container.Container
	if a != nil {
		c = a.c
	}
	c.Ref()
	return Value{t: ArrayType, c: c}
}

// FromObject returns a Value sharing o's container.
func FromObject(o *Object) Value {
	var c *container.Container
	if o != nil {
		c = o.c
	}
	c.Ref()
	return Value{t: ObjectType, c: c}
}

func (v Value) Type() Type        { return v.t }
func (v Value) IsNull() bool      { return v.t == NullType }
func (v Value) IsBool() bool      { return v.t == BoolType }
func (v Value) IsDouble() bool    { return v.t == DoubleType }
func (v Value) IsString() bool    { return v.t == StringType }
func (v Value) IsArray() bool     { return v.t == ArrayType }
func (v Value) IsObject() bool    { return v.t == ObjectType }
func (v Value) IsUndefined() bool { return v.t == UndefinedType }

// Bool returns the boolean payload, or def when the value is not a bool.
func (v Value) Bool(def bool) bool {
	if v.t != BoolType {
		return def
	}
	return v.b
}

// Float64 returns the numeric payload as a float64, or def when the
// value is not a number.
func (v Value) Float64(def float64) float64 {
	if v.t != DoubleType {
		return def
	}
	return v.asFloat()
}

// Int64 returns the numeric payload as an int64 when it is integral, or
// def otherwise.
func (v Value) Int64(def int64) int64 {
	if v.t != DoubleType {
		return def
	}
	if v.isInt {
		return v.i
	}
	if f := v.f; f == float64(int64(f)) {
		return int64(f)
	}
	return def
}

// Str returns the string payload, or def when the value is not a string.
func (v Value) Str(def string) string {
	if v.t != StringType {
		return def
	}
	return v.s
}

// Array returns the array payload as a new handle sharing the container,
// or an empty array when the value is not an array.
func (v Value) Array() *Array {
	if v.t != ArrayType {
		return NewArray()
	}
	v.c.Ref()
	return &Array{c: v.c}
}

// Object returns the object payload as a new handle sharing the
// container, or an empty object when the value is not an object.
func (v Value) Object() *Object {
	if v.t != ObjectType {
		return NewObject()
	}
	v.c.Ref()
	return &Object{c: v.c}
}

func (v Value) asFloat() float64 {
	if v.isInt {
		return float64(v.i)
	}
	return v.f
}

// Equal reports JSON value equality. Numbers compare numerically across
// int and float payloads; arrays and objects compare element-wise.
func (v Value) Equal(o Value) bool {
	if v.t != o.t {
		return false
	}
	switch v.t {
	case NullType, UndefinedType:
		return true
	case BoolType:
		return v.b == o.b
	case DoubleType:
		if v.isInt && o.isInt {
			return v.i == o.i
		}
		return v.asFloat() == o.asFloat()
	case StringType:
		return v.s == o.s
	case ArrayType, ObjectType:
		return containerEqual(v.c, o.c)
	}
	return false
}

func (v Value) String() string {
	if v.t == UndefinedType {
		return "undefined"
	}
	return encode.MustString(v.toElement())
}

// toElement lowers v to its stored representation. Undefined normalizes
// to a null element; the container has no undefined slot kind. The
// returned element aliases any sub-container without adding a reference;
// callers storing it into a container use storedElement.
func (v Value) toElement() container.Element {
	switch v.t {
	case NullType, UndefinedType:
		return container.Null()
	case BoolType:
		return container.FromBool(v.b)
	case DoubleType:
		if v.isInt {
			return container.FromInt(v.i)
		}
		return container.FromFloat(v.f)
	case StringType:
		return container.FromString(v.s)
	case ArrayType:
		return container.FromArray(v.c)
	case ObjectType:
		return container.FromObject(v.c)
	}
	return container.Null()
}

// storedElement is toElement plus a reference on any sub-container: the
// slot the caller is about to fill becomes one more sharer.
func storedElement(v Value) container.Element {
	e := v.toElement()
	e.Sub.Ref()
	return e
}

// fromElement raises a stored element to a Value, taking a reference on
// any sub-container since the Value is a new sharer.
func fromElement(e container.Element) Value {
	switch e.Kind {
	case container.NullKind:
		return Null()
	case container.FalseKind:
		return FromBool(false)
	case container.TrueKind:
		return FromBool(true)
	case container.IntKind:
		return FromInt(e.Int64)
	case container.DoubleKind:
		return FromFloat(e.Float64)
	case container.StringKind:
		return FromString(e.String)
	case container.ArrayKind:
		e.Sub.Ref()
		return Value{t: ArrayType, c: e.Sub}
	case container.ObjectKind:
		e.Sub.Ref()
		return Value{t: ObjectType, c: e.Sub}
	}
	return Undefined()
}

// elementEqual compares stored elements without materializing Values, so
// read paths never touch reference counts.
func elementEqual(x, y container.Element) bool {
	numeric := func(e container.Element) (float64, bool) {
		switch e.Kind {
		case container.IntKind:
			return float64(e.Int64), true
		case container.DoubleKind:
			return e.Float64, true
		}
		return 0, false
	}
	if xf, ok := numeric(x); ok {
		yf, ok := numeric(y)
		if !ok {
			return false
		}
		if x.Kind == container.IntKind && y.Kind == container.IntKind {
			return x.Int64 == y.Int64
		}
		return xf == yf
	}
	if x.Kind != y.Kind {
		return false
	}
	switch x.Kind {
	case container.NullKind, container.FalseKind, container.TrueKind:
		return true
	case container.StringKind:
		return x.String == y.String
	case container.ArrayKind, container.ObjectKind:
		return containerEqual(x.Sub, y.Sub)
	}
	return false
}

func containerEqual(x, y *container.Container) bool {
	if x == y {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	for i := range x.Len() {
		if !elementEqual(x.At(i), y.At(i)) {
			return false
		}
	}
	return true
}
