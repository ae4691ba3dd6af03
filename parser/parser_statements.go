/*
File    : sod/parser/parser_statements.go
Package   : parser
*/

package parser

import (
	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/token"
)

// blockStatement parses "{ Newline BlockBody }".
func (p *Parser) blockStatement() *ast.BlockStatement {
	tok := p.cur
	p.expect(token.LBRACE)
	p.expect(token.NEWLINE)

	var body []ast.Node
	for p.cur.Type != token.RBRACE && len(p.errors) == 0 {
		if p.cur.Type == token.NEWLINE {
			p.advance()
			continue
		}
		if p.cur.Type == token.EOF {
			p.addError("unexpected end of input, expected '}'")
			break
		}
		body = append(body, p.statement())
		if len(p.errors) > 0 {
			break
		}
		p.expect(token.NEWLINE)
	}
	p.expect(token.RBRACE)

	return &ast.BlockStatement{Token: tok, Body: body}
}

// ifStatement parses "if Expr Block (else (If | Block))?".
func (p *Parser) ifStatement() ast.Node {
	tok := p.cur
	p.expect(token.IF)
	cond := p.expression(0)
	consequence := p.blockStatement()

	var alt ast.Node
	if p.cur.Type == token.ELSE {
		p.advance()
		if p.cur.Type == token.IF {
			alt = p.ifStatement()
		} else {
			alt = p.blockStatement()
		}
	}

	return &ast.IfStatement{Token: tok, Condition: cond, Consequence: consequence, Alternative: alt}
}

// forStatement parses "for Ident in Iterable Block". The iterable is
// an ordinary expression unless immediately followed by '..', in which
// case it becomes the start of a RangeExpression.
func (p *Parser) forStatement() ast.Node {
	tok := p.cur
	p.expect(token.FOR)
	varTok := p.cur
	if !p.expect(token.IDENT) {
		return &ast.ForStatement{Token: tok}
	}
	p.expect(token.IN)

	iterable := p.expression(0)
	if p.cur.Type == token.DOT {
		iterable = p.rangeExpression(iterable)
	}

	body := p.blockStatement()
	return &ast.ForStatement{Token: tok, Var: varTok.Literal, Iterable: iterable, Body: body}
}

// functionStatement parses "func name(params) { ... }".
func (p *Parser) functionStatement() ast.Node {
	tok := p.cur
	p.expect(token.FUNC)
	nameTok := p.cur
	if !p.expect(token.IDENT) {
		return &ast.FunctionStatement{Token: tok}
	}
	p.expect(token.LPAREN)
	params := p.functionParams()
	p.expect(token.RPAREN)
	body := p.blockStatement()

	return &ast.FunctionStatement{Token: tok, Name: nameTok.Literal, Parameters: params, Body: body}
}

func (p *Parser) functionParams() []string {
	if p.cur.Type == token.RPAREN {
		return nil
	}
	var params []string
	for {
		tok := p.cur
		if !p.expect(token.IDENT) {
			return params
		}
		params = append(params, tok.Literal)
		if p.cur.Type == token.RPAREN {
			break
		}
		if !p.expect(token.COMMA) {
			break
		}
	}
	return params
}
