package container

import "fmt"

// Kind identifies the stored representation of an Element. There is no
// undefined kind: the jdom layer normalizes undefined values to null
// before storage and synthesizes the undefined sentinel on out-of-range
// reads.
type Kind uint8

const (
	NullKind Kind = iota
	FalseKind
	TrueKind
	IntKind
	DoubleKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case FalseKind:
		return "False"
	case TrueKind:
		return "True"
	case IntKind:
		return "Int"
	case DoubleKind:
		return "Double"
	case StringKind:
		return "String"
	case ArrayKind:
		return "Array"
	case ObjectKind:
		return "Object"
	}
	return fmt.Sprintf("<unknown kind %d>", uint8(k))
}

// Element is one slot of a Container. Which payload field is meaningful
// depends on Kind; the others are zero. Sub is shared, not owned: copying
// an Element aliases the nested container, and the reference count on Sub
// is managed by Container.Clone and the jdom handle operations.
type Element struct {
	Kind    Kind
	Int64   int64
	Float64 float64
	String  string
	Sub     *Container
}

func Null() Element {
	return Element{Kind: NullKind}
}

func FromBool(v bool) Element {
	if v {
		return Element{Kind: TrueKind}
	}
	return Element{Kind: FalseKind}
}

func FromInt(v int64) Element {
	return Element{Kind: IntKind, Int64: v}
}

func FromFloat(v float64) Element {
	return Element{Kind: DoubleKind, Float64: v}
}

func FromString(v string) Element {
	return Element{Kind: StringKind, String: v}
}

func FromArray(c *Container) Element {
	return Element{Kind: ArrayKind, Sub: c}
}

func FromObject(c *Container) Element {
	return Element{Kind: ObjectKind, Sub: c}
}

// Bool reports the boolean payload. Valid only for FalseKind and TrueKind.
func (e Element) Bool() bool {
	return e.Kind == TrueKind
}

// IsContainer reports whether the element nests a sub-container.
func (e Element) IsContainer() bool {
	return e.Kind == ArrayKind || e.Kind == ObjectKind
}
