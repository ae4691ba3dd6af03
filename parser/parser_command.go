/*
File    : sod/parser/parser_command.go
Package   : parser
*/

package parser

import (
	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/token"
)

// command parses a command invocation: cmdTok is the already-read
// identifier token that matched the command registry. The parser
// switches to NextCmd so whitespace surfaces as its own token, letting
// fragment boundaries be read directly off the lexer; a fragment run
// ends at an unescaped end-of-line, but a trailing backslash defers
// that end so the command continues onto the next source line.
func (p *Parser) command(cmdTok token.Token) ast.Node {
	fragments := []ast.Node{&ast.String{Token: cmdTok, Value: cmdTok.Literal}}

	prev := p.cur
	p.cur = p.lex.NextCmd()

	for {
		if p.cur.IsEndOfLine() && prev.Type != token.BACKSLASH {
			break
		}
		if p.cur.Type == token.EOF {
			break
		}

		switch p.cur.Type {
		case token.WHITESPACE:
			fragments = append(fragments, &ast.String{Token: p.cur, Value: " "})
		case token.NEWLINE:
			// Only reachable after a line-continuing backslash; the
			// newline it swallows is not a fragment either.
		case token.ESCAPED_ID:
			fragments = append(fragments, &ast.Identifier{Token: p.cur, Name: p.cur.Literal})
		case token.TEMPLATE:
			fragments = append(fragments, p.readTemplateString(p.cur))
		case token.BACKSLASH:
			// consumed only to detect line continuation in the loop guard
		default:
			fragments = append(fragments, &ast.String{Token: p.cur, Value: p.commandTokenText(p.cur)})
		}

		prev = p.cur
		p.cur = p.lex.NextCmd()
	}

	// p.cur is left on the terminating NEWLINE or EOF, the statement
	// separator the caller expects; the caller's next advance resumes
	// ordinary (whitespace-skipping) lexing for whatever follows.
	return &ast.Command{Token: cmdTok, Fragments: fragments}
}

// commandTokenText renders a non-identifier, non-template command
// token back to the text a fragment should carry: quoted strings keep
// their literal contents, everything else uses its own literal text
// (operators, numbers, bare words the lexer happened to classify as a
// keyword in this context).
func (p *Parser) commandTokenText(t token.Token) string {
	if t.Type == token.STRING {
		return t.Literal
	}
	if t.Literal != "" {
		return t.Literal
	}
	return string(t.Type)
}
