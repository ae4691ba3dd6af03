/*
File    : sod/token/token_test.go
Package   : token
*/

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent_Keywords(t *testing.T) {
	assert.Equal(t, FUNC, LookupIdent("func"))
	assert.Equal(t, RETURN, LookupIdent("return"))
	assert.Equal(t, IF, LookupIdent("if"))
	assert.Equal(t, ELSE, LookupIdent("else"))
	assert.Equal(t, FOR, LookupIdent("for"))
	assert.Equal(t, IN, LookupIdent("in"))
	assert.Equal(t, TRUE, LookupIdent("true"))
	assert.Equal(t, FALSE, LookupIdent("false"))
	assert.Equal(t, NONE, LookupIdent("none"))
}

func TestLookupIdent_PlainIdentifier(t *testing.T) {
	assert.Equal(t, IDENT, LookupIdent("foo"))
	assert.Equal(t, IDENT, LookupIdent("functional"))
}

func TestIsEndOfLine(t *testing.T) {
	assert.True(t, Token{Type: EOF}.IsEndOfLine())
	assert.True(t, Token{Type: NEWLINE}.IsEndOfLine())
	assert.False(t, Token{Type: IDENT}.IsEndOfLine())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `IDENT("foo")`, Token{Type: IDENT, Literal: "foo"}.String())
	assert.Equal(t, "EOF", Token{Type: EOF}.String())
}
