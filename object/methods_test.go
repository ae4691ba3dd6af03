/*
File    : sod/object/methods_test.go
Package   : object
*/

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallMethod_ListPushPop(t *testing.T) {
	l := NewList(nil)
	_, err := CallMethod(l, "push", []Value{Number(1)})
	assert.NoError(t, err)
	assert.Equal(t, 1, l.Len())

	v, err := CallMethod(l, "pop", nil)
	assert.NoError(t, err)
	assert.Equal(t, Number(1), v)
}

func TestCallMethod_ListLenAndContains(t *testing.T) {
	l := NewList([]Value{Number(1), Number(2)})
	v, err := CallMethod(l, "len", nil)
	assert.NoError(t, err)
	assert.Equal(t, Number(2), v)

	v, err = CallMethod(l, "contains", []Value{Number(2)})
	assert.NoError(t, err)
	assert.Equal(t, Boolean(true), v)
}

func TestCallMethod_UnknownMethodIsNameError(t *testing.T) {
	l := NewList(nil)
	_, err := CallMethod(l, "frobnicate", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name error")
}

func TestCallMethod_ArityMismatch(t *testing.T) {
	l := NewList(nil)
	_, err := CallMethod(l, "push", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "arity error")
}

func TestCallMethod_StringPushPop(t *testing.T) {
	s := NewString("ab")
	_, err := CallMethod(s, "push", []Value{NewString("c")})
	assert.NoError(t, err)
	assert.Equal(t, "abc", s.Value)

	v, err := CallMethod(s, "pop", nil)
	assert.NoError(t, err)
	assert.Equal(t, "c", v.(*String).Value)
}

func TestCallMethod_StringTrim(t *testing.T) {
	s := NewString("  hi  ")
	_, err := CallMethod(s, "trim", nil)
	assert.NoError(t, err)
	assert.Equal(t, "hi", s.Value)
}

func TestCallMethod_NumberHasNoMethods(t *testing.T) {
	_, err := CallMethod(Number(1), "len", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "type error")
}
