package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BinaryType
	BoolType
	ObjectType
	ArrayType
	AnnotatedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		NumberType:    "Number",
		StringType:    "String",
		BinaryType:    "Binary",
		BoolType:      "Bool",
		ObjectType:    "Object",
		ArrayType:     "Array",
		AnnotatedType: "Annotated",
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
		"Number":    NumberType,
		"String":    StringType,
		"Binary":    BinaryType,
		"Bool":      BoolType,
		"Object":    ObjectType,
		"Array":     ArrayType,
		"Annotated": AnnotatedType,
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
		NumberType,
		StringType,
		BinaryType,
		BoolType,
		ObjectType,
		ArrayType,
		AnnotatedType,
	}
}

// IsLeaf reports whether nodes of this type never have children.
// Annotated nodes are leaves by construction: they replace a scalar
// value and are never descended into.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
