package sema

// TypeKind is the type of a mira value. The language is small enough that
// a flat enum covers it.
type TypeKind uint8

const (
	// TypeUnknown marks unresolved or erroneous expressions.
	TypeUnknown TypeKind = iota
	// TypeInt is a 64-bit signed integer.
	TypeInt
	// TypeFloat is a 64-bit float.
	TypeFloat
	// TypeString is an immutable string.
	TypeString
	// TypeBool is a boolean.
	TypeBool
	// TypeNothing is the unit type.
	TypeNothing
	// TypeFn is a function.
	TypeFn
	// TypeAny accepts any value; used by builtin signatures.
	TypeAny
)

func (t TypeKind) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeNothing:
		return "nothing"
	case TypeFn:
		return "fn"
	case TypeAny:
		return "any"
	}
	return "unknown"
}

// TypeByName resolves a type annotation name.
func TypeByName(name string) (TypeKind, bool) {
	switch name {
	case "int":
		return TypeInt, true
	case "float":
		return TypeFloat, true
	case "string":
		return TypeString, true
	case "bool":
		return TypeBool, true
	case "nothing":
		return TypeNothing, true
	case "any":
		return TypeAny, true
	}
	return TypeUnknown, false
}
