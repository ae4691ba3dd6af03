/*
File    : sod/parser/parser_template.go
Package   : parser
*/

package parser

import (
	"github.com/ricoveitch/sod/ast"
	"github.com/ricoveitch/sod/token"
)

// readTemplateString splits a double-quoted literal's text into
// literal and '$name' interpolation segments. A '$' run ends at the
// next space character (not at the end of an identifier's alnum body —
// this deliberately lets $name.prop-shaped commands through uninspected,
// matching how command fragments rely on the same reader). A bare '$'
// with nothing before the next space becomes a literal "$".
func (p *Parser) readTemplateString(tok token.Token) ast.Node {
	value := tok.Literal
	var segments []ast.TemplateSegment

	i := 0
	for i < len(value) {
		if value[i] == '$' {
			i++
			head := i
			for i < len(value) && value[i] != ' ' {
				i++
			}
			if i == head {
				segments = append(segments, ast.TemplateSegment{Literal: "$"})
			} else {
				segments = append(segments, ast.TemplateSegment{IsExpr: true, Name: value[head:i]})
			}
		} else {
			head := i
			for i < len(value) && value[i] != '$' {
				i++
			}
			segments = append(segments, ast.TemplateSegment{Literal: value[head:i]})
		}
	}

	return &ast.TemplateString{Token: tok, Segments: segments}
}
