package token

var keywords = map[string]Kind{
	"let":     KwLet,
	"fn":      KwFn,
	"return":  KwReturn,
	"if":      KwIf,
	"else":    KwElse,
	"while":   KwWhile,
	"for":     KwFor,
	"in":      KwIn,
	"import":  KwImport,
	"type":    KwType,
	"true":    KwTrue,
	"false":   KwFalse,
	"nothing": KwNothing,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
