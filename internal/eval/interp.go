package eval

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mira/internal/ast"
	"mira/internal/diag"
	"mira/internal/parser"
	"mira/internal/program"
	"mira/internal/sema"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Interp evaluates lines against an interactive program. It owns the
// runtime environment (name -> value); the static scope lives on the
// program itself.
type Interp struct {
	prog *program.Program
	env  map[string]Value
	out  io.Writer
}

// New creates an interpreter bound to prog, writing builtin print output
// to out.
func New(prog *program.Program, out io.Writer) *Interp {
	if prog.Kind != program.KindInteractive {
		panic("eval: interpreter requires an interactive program")
	}
	return &Interp{
		prog: prog,
		env:  make(map[string]Value),
		out:  out,
	}
}

// LineResult is the outcome of evaluating one committed line.
type LineResult struct {
	// Value is the last expression's value; Echo is false for lines that
	// only declare.
	Value Value
	Echo  bool
	// HadErrors is true when parsing or checking reported errors; the line
	// was still committed up to the failing item.
	HadErrors bool
}

// EvalLine parses, checks, commits, and evaluates one line of input.
// Diagnostics flow through the program's engine to whatever consumers the
// caller attached.
func (in *Interp) EvalLine(src string) LineResult {
	id := in.prog.Files.AddVirtual("<line>", []byte(src))
	p := parser.New(in.prog.Files.Get(id), in.prog.Diags)

	var res LineResult
	for {
		item, done := p.ParseItem()
		if item != nil {
			sema.CheckItem(item, in.prog.Scope, in.prog.Diags)
			in.prog.Append(item)
			value, echo := in.evalItem(item)
			if echo {
				res.Value = value
				res.Echo = true
			}
		}
		if done {
			break
		}
	}
	res.HadErrors = in.prog.Diags.HadErrors()
	in.prog.Diags.ResetErrorFlag()
	return res
}

func (in *Interp) evalItem(item ast.Item) (Value, bool) {
	switch it := item.(type) {
	case *ast.LetItem:
		in.env[it.Name] = in.evalExpr(it.Value, nil)
		return Nothing, false
	case *ast.FnItem:
		sym, _ := in.prog.Scope.Lookup(it.Name)
		in.env[it.Name] = Value{Type: sema.TypeFn, Fn: &FnValue{
			Name:   it.Name,
			Params: sym.Params,
			Body:   it.Body,
		}}
		return Nothing, false
	case *ast.ExprItem:
		return in.evalExpr(it.E, nil), true
	}
	return Nothing, false
}

// evalExpr evaluates with an optional local frame (function parameters).
func (in *Interp) evalExpr(e ast.Expr, frame map[string]Value) Value {
	switch ex := e.(type) {
	case *ast.IdentExpr:
		if frame != nil {
			if v, ok := frame[ex.Name]; ok {
				return v
			}
		}
		if v, ok := in.env[ex.Name]; ok {
			return v
		}
		return Nothing

	case *ast.LitExpr:
		switch ex.Kind {
		case ast.LitInt:
			n, _ := strconv.ParseInt(ex.Value, 10, 64)
			return IntVal(n)
		case ast.LitFloat:
			f, _ := strconv.ParseFloat(ex.Value, 64)
			return FloatVal(f)
		case ast.LitString:
			return StrVal(ex.Value)
		case ast.LitBool:
			return BoolVal(ex.Value == "true")
		case ast.LitNothing:
			return Nothing
		}
		return Nothing

	case *ast.UnaryExpr:
		x := in.evalExpr(ex.X, frame)
		switch ex.Op {
		case "!":
			return BoolVal(!x.Bool)
		case "-":
			if x.Type == sema.TypeFloat {
				return FloatVal(-x.Flt)
			}
			return IntVal(-x.Int)
		}
		return Nothing

	case *ast.BinaryExpr:
		return in.evalBinary(ex, frame)

	case *ast.CallExpr:
		return in.evalCall(ex, frame)

	case *ast.ParenExpr:
		return in.evalExpr(ex.X, frame)
	}
	return Nothing
}

func (in *Interp) evalBinary(ex *ast.BinaryExpr, frame map[string]Value) Value {
	x := in.evalExpr(ex.X, frame)
	y := in.evalExpr(ex.Y, frame)

	switch ex.Op {
	case "&&":
		return BoolVal(x.Bool && y.Bool)
	case "||":
		return BoolVal(x.Bool || y.Bool)
	case "==":
		return BoolVal(x == y)
	case "!=":
		return BoolVal(x != y)
	case "<", "<=", ">", ">=":
		return compareValues(ex.Op, x, y)
	case "+":
		if x.Type == sema.TypeString && y.Type == sema.TypeString {
			return StrVal(x.Str + y.Str)
		}
	}

	if x.Type == sema.TypeFloat || y.Type == sema.TypeFloat {
		xf, yf := asFloat(x), asFloat(y)
		switch ex.Op {
		case "+":
			return FloatVal(xf + yf)
		case "-":
			return FloatVal(xf - yf)
		case "*":
			return FloatVal(xf * yf)
		case "/":
			return FloatVal(xf / yf)
		case "%":
			return FloatVal(math.Mod(xf, yf))
		}
		return Nothing
	}

	switch ex.Op {
	case "+":
		return IntVal(x.Int + y.Int)
	case "-":
		return IntVal(x.Int - y.Int)
	case "*":
		return IntVal(x.Int * y.Int)
	case "/":
		if y.Int == 0 {
			diag.ReportError(in.prog.Diags, diag.SemDivisionByZero, ex.Span(), "division by zero")
			return Nothing
		}
		return IntVal(x.Int / y.Int)
	case "%":
		if y.Int == 0 {
			diag.ReportError(in.prog.Diags, diag.SemDivisionByZero, ex.Span(), "division by zero")
			return Nothing
		}
		return IntVal(x.Int % y.Int)
	}
	return Nothing
}

func compareValues(op string, x, y Value) Value {
	var cmp int
	switch {
	case x.Type == sema.TypeString && y.Type == sema.TypeString:
		switch {
		case x.Str < y.Str:
			cmp = -1
		case x.Str > y.Str:
			cmp = 1
		}
	default:
		xf, yf := asFloat(x), asFloat(y)
		switch {
		case xf < yf:
			cmp = -1
		case xf > yf:
			cmp = 1
		}
	}
	switch op {
	case "<":
		return BoolVal(cmp < 0)
	case "<=":
		return BoolVal(cmp <= 0)
	case ">":
		return BoolVal(cmp > 0)
	default:
		return BoolVal(cmp >= 0)
	}
}

func asFloat(v Value) float64 {
	if v.Type == sema.TypeInt {
		return float64(v.Int)
	}
	return v.Flt
}

func (in *Interp) evalCall(ex *ast.CallExpr, frame map[string]Value) Value {
	ident, ok := ex.Callee.(*ast.IdentExpr)
	if !ok {
		return Nothing
	}
	args := make([]Value, 0, len(ex.Args))
	for _, a := range ex.Args {
		args = append(args, in.evalExpr(a, frame))
	}

	if v, found := in.builtinCall(ident.Name, args); found {
		return v
	}

	fnVal, ok := in.env[ident.Name]
	if !ok || fnVal.Fn == nil {
		return Nothing
	}
	callFrame := make(map[string]Value, len(fnVal.Fn.Params))
	for i, p := range fnVal.Fn.Params {
		if i < len(args) {
			callFrame[p.Name] = args[i]
		}
	}
	return in.evalExpr(fnVal.Fn.Body, callFrame)
}

func (in *Interp) builtinCall(name string, args []Value) (Value, bool) {
	arg := func(i int) Value {
		if i < len(args) {
			return args[i]
		}
		return Nothing
	}
	switch name {
	case "print":
		fmt.Fprint(in.out, arg(0).String())
		return Nothing, true
	case "println":
		fmt.Fprintln(in.out, arg(0).String())
		return Nothing, true
	case "len":
		return IntVal(int64(len(arg(0).Str))), true
	case "upper":
		return StrVal(upperCaser.String(arg(0).Str)), true
	case "lower":
		return StrVal(lowerCaser.String(arg(0).Str)), true
	case "abs":
		return FloatVal(math.Abs(asFloat(arg(0)))), true
	}
	return Nothing, false
}
