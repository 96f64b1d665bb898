package parser

import (
	"strings"

	"mira/internal/ast"
	"mira/internal/diag"
	"mira/internal/token"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expr {
	x := p.parseAnd()
	for p.tok.Kind == token.OrOr {
		p.advance()
		x = &ast.BinaryExpr{Op: "||", X: x, Y: p.parseAnd()}
	}
	return x
}

func (p *Parser) parseAnd() ast.Expr {
	x := p.parseCompare()
	for p.tok.Kind == token.AndAnd {
		p.advance()
		x = &ast.BinaryExpr{Op: "&&", X: x, Y: p.parseCompare()}
	}
	return x
}

func (p *Parser) parseCompare() ast.Expr {
	x := p.parseAdd()
	switch p.tok.Kind {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		op := p.tok.Text
		p.advance()
		return &ast.BinaryExpr{Op: op, X: x, Y: p.parseAdd()}
	}
	return x
}

func (p *Parser) parseAdd() ast.Expr {
	x := p.parseMul()
	for p.tok.Kind == token.Plus || p.tok.Kind == token.Minus {
		op := p.tok.Text
		p.advance()
		x = &ast.BinaryExpr{Op: op, X: x, Y: p.parseMul()}
	}
	return x
}

func (p *Parser) parseMul() ast.Expr {
	x := p.parseUnary()
	for p.tok.Kind == token.Star || p.tok.Kind == token.Slash || p.tok.Kind == token.Percent {
		op := p.tok.Text
		p.advance()
		x = &ast.BinaryExpr{Op: op, X: x, Y: p.parseUnary()}
	}
	return x
}

func (p *Parser) parseUnary() ast.Expr {
	if p.tok.Kind == token.Minus || p.tok.Kind == token.Bang {
		op := p.tok
		p.advance()
		return &ast.UnaryExpr{Op: op.Text, OpSpan: op.Span, X: p.parseUnary()}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for p.tok.Kind == token.LParen {
		p.advance()
		var args []ast.Expr
		for p.tok.Kind != token.RParen && p.tok.Kind != token.EOF {
			args = append(args, p.parseExpr())
			if p.tok.Kind == token.Comma {
				p.advance()
				continue
			}
			break
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
		if !ok {
			return &ast.BadExpr{Sp: p.tok.Span}
		}
		x = &ast.CallExpr{Callee: x, Args: args, Close: closeTok.Span}
	}
	return x
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.tok
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return &ast.IdentExpr{Name: tok.Text, Sp: tok.Span}
	case token.IntLit:
		p.advance()
		return &ast.LitExpr{Kind: ast.LitInt, Value: tok.Text, Sp: tok.Span}
	case token.FloatLit:
		p.advance()
		return &ast.LitExpr{Kind: ast.LitFloat, Value: tok.Text, Sp: tok.Span}
	case token.StringLit:
		p.advance()
		return &ast.LitExpr{Kind: ast.LitString, Value: unquote(tok.Text), Sp: tok.Span}
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.LitExpr{Kind: ast.LitBool, Value: tok.Text, Sp: tok.Span}
	case token.KwNothing:
		p.advance()
		return &ast.LitExpr{Kind: ast.LitNothing, Value: tok.Text, Sp: tok.Span}
	case token.LParen:
		open := tok.Span
		p.advance()
		inner := p.parseExpr()
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return &ast.BadExpr{Sp: open}
		}
		return &ast.ParenExpr{X: inner, Sp: open.Cover(closeTok.Span)}
	default:
		diag.ReportError(p.reporter, diag.SynExpectExpr, tok.Span, "expected expression")
		return &ast.BadExpr{Sp: tok.Span}
	}
}

// unquote strips the surrounding quotes and resolves simple escapes.
// The lexer guarantees well-formed input for StringLit tokens.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' || i+1 >= len(body) {
			b.WriteByte(body[i])
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
