// Package ast defines the syntax tree for mira top-level items and
// expressions. Interactive mode appends items to a program log one at a
// time, so every node carries its source span for diagnostics.
package ast

import (
	"mira/internal/source"
)

// Item is a single top-level program item: a binding, a function, or a
// bare expression statement.
type Item interface {
	Span() source.Span
	item()
}

// LetItem is a 'let name = expr' binding.
type LetItem struct {
	LetSpan  source.Span
	Name     string
	NameSpan source.Span
	Value    Expr
}

func (l *LetItem) Span() source.Span {
	sp := l.LetSpan
	if l.Value != nil {
		sp = sp.Cover(l.Value.Span())
	}
	return sp
}
func (*LetItem) item() {}

// Param is a function parameter with an optional type annotation.
type Param struct {
	Name     string
	TypeName string
	NameSpan source.Span
}

// FnItem is a 'fn name(params) -> expr' function definition.
type FnItem struct {
	FnSpan   source.Span
	Name     string
	NameSpan source.Span
	Params   []Param
	Body     Expr
}

func (f *FnItem) Span() source.Span {
	sp := f.FnSpan
	if f.Body != nil {
		sp = sp.Cover(f.Body.Span())
	}
	return sp
}
func (*FnItem) item() {}

// ExprItem is a bare expression evaluated for its value.
type ExprItem struct {
	E Expr
}

func (e *ExprItem) Span() source.Span { return e.E.Span() }
func (*ExprItem) item()               {}

// Expr is an expression node.
type Expr interface {
	Span() source.Span
	expr()
}

// IdentExpr is a name reference.
type IdentExpr struct {
	Name string
	Sp   source.Span
}

func (e *IdentExpr) Span() source.Span { return e.Sp }
func (*IdentExpr) expr()               {}

// LitKind distinguishes literal expressions.
type LitKind uint8

const (
	// LitInt is an integer literal.
	LitInt LitKind = iota
	// LitFloat is a floating-point literal.
	LitFloat
	// LitString is a string literal; Value holds the unquoted text.
	LitString
	// LitBool is 'true' or 'false'.
	LitBool
	// LitNothing is the 'nothing' literal.
	LitNothing
)

// LitExpr is a literal of any kind.
type LitExpr struct {
	Kind  LitKind
	Value string
	Sp    source.Span
}

func (e *LitExpr) Span() source.Span { return e.Sp }
func (*LitExpr) expr()               {}

// UnaryExpr is '-x' or '!x'.
type UnaryExpr struct {
	Op     string
	OpSpan source.Span
	X      Expr
}

func (e *UnaryExpr) Span() source.Span { return e.OpSpan.Cover(e.X.Span()) }
func (*UnaryExpr) expr()               {}

// BinaryExpr is 'x op y'.
type BinaryExpr struct {
	Op   string
	X, Y Expr
}

func (e *BinaryExpr) Span() source.Span { return e.X.Span().Cover(e.Y.Span()) }
func (*BinaryExpr) expr()               {}

// CallExpr is 'callee(args...)'.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Close  source.Span // closing paren
}

func (e *CallExpr) Span() source.Span { return e.Callee.Span().Cover(e.Close) }
func (*CallExpr) expr()               {}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X  Expr
	Sp source.Span
}

func (e *ParenExpr) Span() source.Span { return e.Sp }
func (*ParenExpr) expr()               {}

// BadExpr is a placeholder produced on parse errors so checking can continue.
type BadExpr struct {
	Sp source.Span
}

func (e *BadExpr) Span() source.Span { return e.Sp }
func (*BadExpr) expr()               {}
