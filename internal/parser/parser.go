// Package parser turns a token stream into ast items, one top-level item
// per call. Interactive mode interleaves parsing and checking: each parsed
// item is checked against the program state before the next item is parsed.
package parser

import (
	"mira/internal/ast"
	"mira/internal/diag"
	"mira/internal/lexer"
	"mira/internal/source"
	"mira/internal/token"
)

// Parser parses one source file incrementally.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	tok      token.Token
}

// New creates a parser over the file, reporting problems to reporter.
func New(file *source.File, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	p := &Parser{
		lx:       lexer.New(file, reporter),
		reporter: reporter,
	}
	p.advance()
	return p
}

// ParseItem parses the next top-level item. It returns nil with done=true
// at end of input, and may return a nil item with done=false after error
// recovery.
func (p *Parser) ParseItem() (item ast.Item, done bool) {
	// Skip stray semicolons between items.
	for p.tok.Kind == token.Semicolon {
		p.advance()
	}
	if p.tok.Kind == token.EOF {
		return nil, true
	}

	switch p.tok.Kind {
	case token.KwLet:
		item = p.parseLet()
	case token.KwFn:
		item = p.parseFn()
	default:
		item = p.parseExprItem()
	}

	if p.tok.Kind == token.Semicolon {
		p.advance()
	}
	return item, p.tok.Kind == token.EOF
}

func (p *Parser) advance() {
	p.tok = p.lx.Next()
}

func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.tok.Kind != kind {
		diag.ReportError(p.reporter, code, p.tok.Span, msg)
		return p.tok, false
	}
	tok := p.tok
	p.advance()
	return tok, true
}

// recover skips tokens until a semicolon or EOF, consuming the semicolon.
func (p *Parser) recover() {
	for p.tok.Kind != token.Semicolon && p.tok.Kind != token.EOF {
		p.advance()
	}
	if p.tok.Kind == token.Semicolon {
		p.advance()
	}
}

func (p *Parser) parseLet() ast.Item {
	letTok := p.tok
	p.advance()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after 'let'")
	if !ok {
		p.recover()
		return nil
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in let binding"); !ok {
		p.recover()
		return nil
	}
	value := p.parseExpr()
	return &ast.LetItem{
		LetSpan:  letTok.Span,
		Name:     name.Text,
		NameSpan: name.Span,
		Value:    value,
	}
}

func (p *Parser) parseFn() ast.Item {
	fnTok := p.tok
	p.advance()

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name after 'fn'")
	if !ok {
		p.recover()
		return nil
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		p.recover()
		return nil
	}

	var params []ast.Param
	for p.tok.Kind != token.RParen && p.tok.Kind != token.EOF {
		pname, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			p.recover()
			return nil
		}
		param := ast.Param{Name: pname.Text, NameSpan: pname.Span}
		if p.tok.Kind == token.Colon {
			p.advance()
			if tname, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter type"); ok {
				param.TypeName = tname.Text
			}
		}
		params = append(params, param)
		if p.tok.Kind == token.Comma {
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		p.recover()
		return nil
	}
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->' before function body"); !ok {
		p.recover()
		return nil
	}
	body := p.parseExpr()
	return &ast.FnItem{
		FnSpan:   fnTok.Span,
		Name:     name.Text,
		NameSpan: name.Span,
		Params:   params,
		Body:     body,
	}
}

func (p *Parser) parseExprItem() ast.Item {
	e := p.parseExpr()
	if _, isBad := e.(*ast.BadExpr); isBad {
		p.recover()
		return nil
	}
	return &ast.ExprItem{E: e}
}
