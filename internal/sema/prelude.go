package sema

// Prelude returns the builtin scope every interactive program starts from.
// Order matters: completion candidates surface in binding order.
func Prelude() *Scope {
	s := NewScope(nil)

	for _, name := range []string{"int", "float", "string", "bool", "nothing"} {
		ty, _ := TypeByName(name)
		s.Bind(Symbol{Name: name, Kind: SymType, Type: ty})
	}

	fns := []Symbol{
		{Name: "print", Kind: SymFn, Type: TypeFn, Result: TypeNothing,
			Params: []ParamSig{{Name: "value", Type: TypeAny}}},
		{Name: "println", Kind: SymFn, Type: TypeFn, Result: TypeNothing,
			Params: []ParamSig{{Name: "value", Type: TypeAny}}},
		{Name: "len", Kind: SymFn, Type: TypeFn, Result: TypeInt,
			Params: []ParamSig{{Name: "value", Type: TypeString}}},
		{Name: "upper", Kind: SymFn, Type: TypeFn, Result: TypeString,
			Params: []ParamSig{{Name: "value", Type: TypeString}}},
		{Name: "lower", Kind: SymFn, Type: TypeFn, Result: TypeString,
			Params: []ParamSig{{Name: "value", Type: TypeString}}},
		{Name: "abs", Kind: SymFn, Type: TypeFn, Result: TypeFloat,
			Params: []ParamSig{{Name: "value", Type: TypeFloat}}},
	}
	for _, fn := range fns {
		s.Bind(fn)
	}
	return s
}
