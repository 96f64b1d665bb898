package sema

import (
	"fmt"

	"mira/internal/ast"
	"mira/internal/diag"
)

// CheckItem resolves an item's expressions against scope and binds the
// declarations it introduces. It returns the item's value type (TypeNothing
// for declarations).
func CheckItem(item ast.Item, scope *Scope, reporter diag.Reporter) TypeKind {
	switch it := item.(type) {
	case *ast.LetItem:
		ty := CheckExpr(it.Value, scope, reporter)
		scope.Bind(Symbol{Name: it.Name, Kind: SymLet, Type: ty})
		return TypeNothing

	case *ast.FnItem:
		params := make([]ParamSig, 0, len(it.Params))
		fnScope := NewScope(scope)
		for _, p := range it.Params {
			pty := TypeAny
			if p.TypeName != "" {
				resolved, ok := TypeByName(p.TypeName)
				if !ok {
					diag.ReportError(reporter, diag.SemUnresolvedName, p.NameSpan,
						fmt.Sprintf("unknown type '%s'", p.TypeName))
					resolved = TypeAny
				}
				pty = resolved
			}
			params = append(params, ParamSig{Name: p.Name, Type: pty})
			fnScope.Bind(Symbol{Name: p.Name, Kind: SymParam, Type: pty})
		}
		result := CheckExpr(it.Body, fnScope, reporter)
		scope.Bind(Symbol{Name: it.Name, Kind: SymFn, Type: TypeFn, Params: params, Result: result})
		return TypeNothing

	case *ast.ExprItem:
		return CheckExpr(it.E, scope, reporter)
	}
	return TypeUnknown
}

// CheckExpr resolves names and computes the expression's type.
func CheckExpr(e ast.Expr, scope *Scope, reporter diag.Reporter) TypeKind {
	switch ex := e.(type) {
	case *ast.IdentExpr:
		sym, ok := scope.Lookup(ex.Name)
		if !ok {
			diag.ReportError(reporter, diag.SemUnresolvedName, ex.Sp,
				fmt.Sprintf("unresolved name '%s'", ex.Name))
			return TypeUnknown
		}
		return sym.Type

	case *ast.LitExpr:
		switch ex.Kind {
		case ast.LitInt:
			return TypeInt
		case ast.LitFloat:
			return TypeFloat
		case ast.LitString:
			return TypeString
		case ast.LitBool:
			return TypeBool
		case ast.LitNothing:
			return TypeNothing
		}
		return TypeUnknown

	case *ast.UnaryExpr:
		ty := CheckExpr(ex.X, scope, reporter)
		if ex.Op == "!" {
			if ty != TypeBool && ty != TypeAny && ty != TypeUnknown {
				diag.ReportError(reporter, diag.SemTypeMismatch, ex.X.Span(),
					fmt.Sprintf("operator '!' expects bool, got %s", ty))
			}
			return TypeBool
		}
		if ty != TypeInt && ty != TypeFloat && ty != TypeAny && ty != TypeUnknown {
			diag.ReportError(reporter, diag.SemTypeMismatch, ex.X.Span(),
				fmt.Sprintf("operator '-' expects a number, got %s", ty))
		}
		return ty

	case *ast.BinaryExpr:
		xt := CheckExpr(ex.X, scope, reporter)
		yt := CheckExpr(ex.Y, scope, reporter)
		return checkBinary(ex, xt, yt, reporter)

	case *ast.CallExpr:
		return checkCall(ex, scope, reporter)

	case *ast.ParenExpr:
		return CheckExpr(ex.X, scope, reporter)

	case *ast.BadExpr:
		return TypeUnknown
	}
	return TypeUnknown
}

func checkBinary(ex *ast.BinaryExpr, xt, yt TypeKind, reporter diag.Reporter) TypeKind {
	loose := func(t TypeKind) bool { return t == TypeAny || t == TypeUnknown }

	switch ex.Op {
	case "&&", "||":
		if (xt != TypeBool && !loose(xt)) || (yt != TypeBool && !loose(yt)) {
			diag.ReportError(reporter, diag.SemTypeMismatch, ex.Span(),
				fmt.Sprintf("operator '%s' expects bool operands, got %s and %s", ex.Op, xt, yt))
		}
		return TypeBool
	case "==", "!=", "<", "<=", ">", ">=":
		if xt != yt && !loose(xt) && !loose(yt) {
			diag.ReportError(reporter, diag.SemTypeMismatch, ex.Span(),
				fmt.Sprintf("cannot compare %s with %s", xt, yt))
		}
		return TypeBool
	case "+":
		if xt == TypeString && yt == TypeString {
			return TypeString
		}
		fallthrough
	default:
		if loose(xt) || loose(yt) {
			return TypeUnknown
		}
		if xt != yt || (xt != TypeInt && xt != TypeFloat) {
			diag.ReportError(reporter, diag.SemTypeMismatch, ex.Span(),
				fmt.Sprintf("operator '%s' cannot combine %s and %s", ex.Op, xt, yt))
			return TypeUnknown
		}
		return xt
	}
}

func checkCall(ex *ast.CallExpr, scope *Scope, reporter diag.Reporter) TypeKind {
	ident, ok := ex.Callee.(*ast.IdentExpr)
	if !ok {
		diag.ReportError(reporter, diag.SemNotCallable, ex.Callee.Span(), "expression is not callable")
		for _, arg := range ex.Args {
			CheckExpr(arg, scope, reporter)
		}
		return TypeUnknown
	}

	sym, found := scope.Lookup(ident.Name)
	if !found {
		diag.ReportError(reporter, diag.SemUnresolvedName, ident.Sp,
			fmt.Sprintf("unresolved name '%s'", ident.Name))
		for _, arg := range ex.Args {
			CheckExpr(arg, scope, reporter)
		}
		return TypeUnknown
	}
	if sym.Kind != SymFn {
		diag.ReportError(reporter, diag.SemNotCallable, ident.Sp,
			fmt.Sprintf("'%s' is not a function", ident.Name))
		for _, arg := range ex.Args {
			CheckExpr(arg, scope, reporter)
		}
		return TypeUnknown
	}

	if len(ex.Args) != len(sym.Params) {
		diag.ReportError(reporter, diag.SemWrongArgCount, ex.Span(),
			fmt.Sprintf("'%s' expects %d argument(s), got %d", ident.Name, len(sym.Params), len(ex.Args)))
	}
	for i, arg := range ex.Args {
		at := CheckExpr(arg, scope, reporter)
		if i >= len(sym.Params) {
			continue
		}
		want := sym.Params[i].Type
		if want != TypeAny && at != want && at != TypeAny && at != TypeUnknown {
			diag.ReportError(reporter, diag.SemTypeMismatch, arg.Span(),
				fmt.Sprintf("argument %d of '%s' expects %s, got %s", i+1, ident.Name, want, at))
		}
	}
	return sym.Result
}
