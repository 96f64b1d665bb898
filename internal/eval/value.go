// Package eval executes checked mira items against an interactive program:
// bindings get values, functions become callable, and bare expressions
// produce a printable result.
package eval

import (
	"fmt"
	"strconv"

	"mira/internal/ast"
	"mira/internal/sema"
)

// Value is a runtime value.
type Value struct {
	Type sema.TypeKind
	Int  int64
	Flt  float64
	Str  string
	Bool bool
	Fn   *FnValue
}

// FnValue is a user-defined function closed over nothing: mira functions
// only see their parameters and the global scope at call time.
type FnValue struct {
	Name   string
	Params []sema.ParamSig
	Body   ast.Expr
}

// Nothing is the unit value.
var Nothing = Value{Type: sema.TypeNothing}

// IntVal builds an int value.
func IntVal(v int64) Value { return Value{Type: sema.TypeInt, Int: v} }

// FloatVal builds a float value.
func FloatVal(v float64) Value { return Value{Type: sema.TypeFloat, Flt: v} }

// StrVal builds a string value.
func StrVal(v string) Value { return Value{Type: sema.TypeString, Str: v} }

// BoolVal builds a bool value.
func BoolVal(v bool) Value { return Value{Type: sema.TypeBool, Bool: v} }

// String renders the value the way the REPL echoes results.
func (v Value) String() string {
	switch v.Type {
	case sema.TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case sema.TypeFloat:
		return strconv.FormatFloat(v.Flt, 'g', -1, 64)
	case sema.TypeString:
		return strconv.Quote(v.Str)
	case sema.TypeBool:
		return strconv.FormatBool(v.Bool)
	case sema.TypeNothing:
		return "nothing"
	case sema.TypeFn:
		if v.Fn != nil {
			return fmt.Sprintf("fn %s/%d", v.Fn.Name, len(v.Fn.Params))
		}
	}
	return "<unknown>"
}
