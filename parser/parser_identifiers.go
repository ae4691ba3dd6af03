/*
File    : sod/parser/parser_identifiers.go
Package   : parser
*/

package parser

import (
	"strconv"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/token"
)

func mustParseFloat(lit string) float64 {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseIdentifier implements the dispatch rules for a bare IDENT token:
// a following '(' starts a call, a following '[' or '.' starts a
// member/index/call chain, membership in the command registry starts
// command mode, and otherwise it is a plain identifier — optionally
// the left side of an assignment.
func (p *Parser) parseIdentifier() ast.Node {
	tok := p.cur
	name := tok.Literal

	switch p.lookahead(1).Type {
	case token.LPAREN:
		p.advance() // onto '('
		p.advance() // past '('
		return p.callExpression(&ast.Identifier{Token: tok, Name: name})
	case token.LBRACKET, token.DOT:
		p.advance()
		return p.memberChain(&ast.Identifier{Token: tok, Name: name})
	}

	if p.commands != nil && p.commands.Has(name) {
		return p.command(tok)
	}

	p.advance()
	node := ast.Node(&ast.Identifier{Token: tok, Name: name})
	if p.cur.Type == token.ASSIGN {
		return p.variableStatement(node.(ast.LValue), tok)
	}
	return node
}

// memberChain parses a left-recursive run of '.property', '[index]',
// and '(args)' suffixes, each wrapping the previous node. After the
// chain, an '=' rewrites the whole thing into a VariableExpression.
func (p *Parser) memberChain(base ast.Node) ast.Node {
	for {
		switch p.cur.Type {
		case token.DOT:
			tok := p.cur
			p.advance()
			propTok := p.cur
			if !p.expect(token.IDENT) {
				return base
			}
			base = &ast.MemberExpression{Token: tok, Base: base, Property: propTok.Literal}
		case token.LBRACKET:
			tok := p.cur
			p.advance()
			index := p.expression(0)
			p.expect(token.RBRACKET)
			base = &ast.IndexExpression{Token: tok, Base: base, Index: index}
		case token.LPAREN:
			p.advance()
			base = p.callExpression(base)
		default:
			if p.cur.Type == token.ASSIGN {
				lv, ok := base.(ast.LValue)
				if !ok {
					p.addError("unsupported l-value: %s is not assignable", base.String())
					return base
				}
				return p.variableStatement(lv, p.cur)
			}
			return base
		}
	}
}

func (p *Parser) variableStatement(lhs ast.LValue, tok token.Token) ast.Node {
	p.expect(token.ASSIGN)
	rhs := p.expression(0)
	return &ast.VariableExpression{Token: tok, Left: lhs, Right: rhs}
}

// callExpression parses the "(args)" suffix of a call whose opening
// paren has already been consumed. A call may itself be the base of a
// further member/index/call chain, e.g. f().g[0](x).
func (p *Parser) callExpression(base ast.Node) ast.Node {
	tok := p.cur
	args := p.callArgs()
	p.expect(token.RPAREN)
	call := ast.Node(&ast.CallExpression{Token: tok, Callee: base, Arguments: args})

	if p.cur.Type == token.DOT || p.cur.Type == token.LBRACKET {
		return p.memberChain(call)
	}
	return call
}

func (p *Parser) callArgs() []ast.Node {
	if p.cur.Type == token.RPAREN {
		return nil
	}
	var args []ast.Node
	for {
		args = append(args, p.expression(0))
		if len(p.errors) > 0 {
			return args
		}
		if p.cur.Type == token.RPAREN {
			break
		}
		if !p.expect(token.COMMA) {
			break
		}
	}
	return args
}
