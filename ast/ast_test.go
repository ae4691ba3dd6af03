/*
File    : sod/ast/ast_test.go
Package   : ast
*/

package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricoveitch/sod/token"
)

func TestBinaryExpression_String(t *testing.T) {
	expr := &BinaryExpression{
		Left:     &Number{Token: token.Token{Literal: "1"}, Value: 1},
		Operator: token.PLUS,
		Right:    &Number{Token: token.Token{Literal: "2"}, Value: 2},
	}
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestTemplateString_String(t *testing.T) {
	ts := &TemplateString{
		Segments: []TemplateSegment{
			{Literal: "hello "},
			{IsExpr: true, Name: "name"},
		},
	}
	assert.Equal(t, `"hello $name"`, ts.String())
}

func TestFunctionStatement_String(t *testing.T) {
	fn := &FunctionStatement{
		Name:       "add",
		Parameters: []string{"a", "b"},
		Body:       &BlockStatement{},
	}
	assert.Equal(t, "func add(a, b) { }", fn.String())
}

func TestList_String(t *testing.T) {
	list := &List{
		Elements: []Node{
			&Number{Token: token.Token{Literal: "1"}, Value: 1},
			&Number{Token: token.Token{Literal: "2"}, Value: 2},
		},
	}
	assert.Equal(t, "[1, 2]", list.String())
}

func TestIdentifier_IsLValue(t *testing.T) {
	var lv LValue = &Identifier{Name: "x"}
	assert.Equal(t, "x", lv.String())
}

func TestRangeExpression_String(t *testing.T) {
	r := &RangeExpression{
		Start: &Number{Token: token.Token{Literal: "1"}, Value: 1},
		End:   &Number{Token: token.Token{Literal: "5"}, Value: 5},
	}
	assert.Equal(t, "1..5", r.String())

	r.Increment = &Number{Token: token.Token{Literal: "2"}, Value: 2}
	assert.Equal(t, "1..5..2", r.String())
}
