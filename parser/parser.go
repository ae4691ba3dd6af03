/*
File    : sod/parser/parser.go
Package   : parser
*/

// Package parser implements sod's Pratt (top-down precedence climbing)
// expression parser. It consumes tokens from a lexer.Lexer, consulting
// a command.Registry to decide whether a bare identifier opens a call
// expression or a shell command, and produces an ast.Program.
//
// Parsing does not panic: every production returns an ast.Node and
// records any error with addError, and the caller checks Errors()
// after Parse returns. Parsing stops at the first error, matching the
// rest of this interpreter's fail-fast error model.
package parser

import (
	"fmt"

	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/command"
	"github.com/ricoveitch/sod/lexer"
	"github.com/ricoveitch/sod/token"
)

// Parser turns a token stream into an ast.Program.
type Parser struct {
	lex      *lexer.Lexer
	commands *command.Registry
	cur      token.Token
	errors   []string
}

// New constructs a Parser over src, snapshotting the host's command
// registry once at construction time.
func New(src string) *Parser {
	p := &Parser{
		lex:      lexer.New(src),
		commands: command.New(),
	}
	p.advance()
	return p
}

// NewWithRegistry lets the caller supply a pre-built registry (tests
// use this to pin a fake command set rather than depend on the host's
// PATH).
func NewWithRegistry(src string, reg *command.Registry) *Parser {
	p := &Parser{
		lex:      lexer.New(src),
		commands: reg,
	}
	p.advance()
	return p
}

// Errors returns every parse error recorded so far, in order.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("[%d:%d] parse error: %s", p.cur.Line, p.cur.Column, fmt.Sprintf(format, args...)))
}

func (p *Parser) advance() { p.cur = p.lex.Next() }

func (p *Parser) lookahead(k int) token.Token {
	if k == 0 {
		return p.cur
	}
	return p.lex.Lookahead(k)
}

// expect checks the current token's type, records an error and returns
// false if it does not match, or advances past it and returns true.
func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type == token.EOF {
		p.addError("unexpected end of input, expected %s", t)
		return false
	}
	if p.cur.Type != t {
		p.addError("unexpected token %s, expected %s", p.cur, t)
		return false
	}
	p.advance()
	return true
}

// Parse reads the whole token stream into a Program. Check Errors()
// after calling this; a non-nil Program may still be incomplete if
// parsing stopped early on an error.
func (p *Parser) Parse() *ast.Program {
	return &ast.Program{Body: p.statementList()}
}

func (p *Parser) statementList() []ast.Node {
	var body []ast.Node
	for p.cur.Type != token.EOF && len(p.errors) == 0 {
		if p.cur.Type == token.NEWLINE {
			p.advance()
			continue
		}
		stmt := p.statement()
		if len(p.errors) > 0 {
			break
		}
		body = append(body, stmt)
		if p.cur.Type != token.EOF {
			p.expect(token.NEWLINE)
		}
	}
	return body
}

func (p *Parser) statement() ast.Node {
	switch p.cur.Type {
	case token.FUNC:
		return p.functionStatement()
	case token.IF:
		return p.ifStatement()
	case token.FOR:
		return p.forStatement()
	default:
		return p.expression(0)
	}
}

func precedence(t token.Type) int {
	switch t {
	case token.CARAT:
		return 5
	case token.ASTERISK, token.SLASH:
		return 3
	case token.PLUS, token.MINUS:
		return 2
	case token.EQ, token.NOT_EQ, token.LT, token.GT, token.LE, token.GE, token.AND, token.OR:
		return 1
	default:
		return 0
	}
}

func isOperator(t token.Type) bool {
	return precedence(t) > 0
}

// expression parses a prefix production followed by zero or more infix
// productions whose precedence exceeds minPrec.
func (p *Parser) expression(minPrec int) ast.Node {
	left := p.prefix()
	if len(p.errors) > 0 {
		return left
	}
	for !p.cur.IsEndOfLine() && minPrec < precedence(p.cur.Type) && len(p.errors) == 0 {
		left = p.infix(left)
	}
	return left
}

func (p *Parser) infix(left ast.Node) ast.Node {
	opTok := p.cur
	if !isOperator(opTok.Type) {
		p.addError("unexpected token %s, expected an operator", opTok)
		return left
	}
	prec := precedence(opTok.Type)
	p.advance()

	// '^' is right-associative: re-enter one precedence level lower so
	// a second '^' at the same level binds to the right, not the left.
	rhsPrec := prec
	if opTok.Type == token.CARAT {
		rhsPrec = prec - 1
	}

	right := p.expression(rhsPrec)
	return &ast.BinaryExpression{Token: opTok, Left: left, Operator: opTok.Type, Right: right}
}

func (p *Parser) prefix() ast.Node {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parenthesized()
	case token.MINUS:
		return p.unaryExpression()
	case token.LBRACKET:
		return p.listLiteral()
	case token.IDENT:
		return p.parseIdentifier()
	case token.RETURN:
		return p.returnStatement()
	case token.TRUE:
		tok := p.cur
		p.advance()
		return &ast.Boolean{Token: tok, Value: true}
	case token.FALSE:
		tok := p.cur
		p.advance()
		return &ast.Boolean{Token: tok, Value: false}
	case token.NONE:
		tok := p.cur
		p.advance()
		return &ast.None{Token: tok}
	default:
		return p.literal()
	}
}

func (p *Parser) parenthesized() ast.Node {
	p.expect(token.LPAREN)
	expr := p.expression(0)
	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) unaryExpression() ast.Node {
	tok := p.cur
	p.expect(token.MINUS)
	return &ast.UnaryExpression{Token: tok, Right: p.expression(4)}
}

func (p *Parser) returnStatement() ast.Node {
	tok := p.cur
	p.expect(token.RETURN)
	return &ast.ReturnStatement{Token: tok, Expression: p.expression(0)}
}

func (p *Parser) listLiteral() ast.Node {
	tok := p.cur
	p.expect(token.LBRACKET)
	var elems []ast.Node
	if p.cur.Type == token.RBRACKET {
		p.advance()
		return &ast.List{Token: tok, Elements: elems}
	}
	for {
		elems = append(elems, p.expression(0))
		if len(p.errors) > 0 {
			return &ast.List{Token: tok, Elements: elems}
		}
		if p.cur.Type == token.RBRACKET {
			p.advance()
			break
		}
		if !p.expect(token.COMMA) {
			break
		}
	}
	return &ast.List{Token: tok, Elements: elems}
}

// literal parses a Number, String, or TemplateString token; an integer
// immediately followed by '.' is instead handed to rangeExpression, per
// the grammar's "integer-literal-starts-a-range" rule.
func (p *Parser) literal() ast.Node {
	tok := p.cur
	switch tok.Type {
	case token.INT:
		num := &ast.Number{Token: tok, Value: mustParseFloat(tok.Literal)}
		if p.lookahead(1).Type == token.DOT {
			p.advance()
			return p.rangeExpression(num)
		}
		p.advance()
		return num
	case token.FLOAT:
		p.advance()
		return &ast.Number{Token: tok, Value: mustParseFloat(tok.Literal)}
	case token.STRING:
		p.advance()
		return &ast.String{Token: tok, Value: tok.Literal}
	case token.TEMPLATE:
		p.advance()
		return p.readTemplateString(tok)
	default:
		p.addError("unexpected token %s", tok)
		return nil
	}
}

// rangeExpression parses "..end" or "..end..increment", given that the
// leading ".." dots (and the start expression) have already been seen
// by the caller, with p.cur sitting on the first '.'.
func (p *Parser) rangeExpression(start ast.Node) ast.Node {
	tok := p.cur
	p.expect(token.DOT)
	p.expect(token.DOT)
	end := p.expression(0)

	var increment ast.Node
	if inner, ok := end.(*ast.RangeExpression); ok {
		// A second ".." was consumed while parsing end (e.g. "4..1..-1"
		// reads as start=4, then end parses "1..-1" as its own range);
		// re-flatten so the outer range owns all three parts.
		end = inner.Start
		increment = inner.End
	}

	return &ast.RangeExpression{Token: tok, Start: start, End: end, Increment: increment}
}
