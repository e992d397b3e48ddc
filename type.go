package jdom

import "fmt"

// Type is the public kind of a Value. UndefinedType marks the sentinel
// returned by total query operations; it is never stored in a container.
type Type int

const (
	NullType Type = iota
	BoolType
	DoubleType
	StringType
	ArrayType
	ObjectType
	UndefinedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		BoolType:      "Bool",
		DoubleType:    "Double",
		StringType:    "String",
		ArrayType:     "Array",
		ObjectType:    "Object",
		UndefinedType: "Undefined",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":      NullType,
		"Bool":      BoolType,
		"Double":    DoubleType,
		"String":    StringType,
		"Array":     ArrayType,
		"Object":    ObjectType,
		"Undefined": UndefinedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		DoubleType,
		StringType,
		ArrayType,
		ObjectType,
		UndefinedType,
	}
}
