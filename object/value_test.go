/*
File    : sod/object/value_test.go
Package   : object
*/

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_String(t *testing.T) {
	assert.Equal(t, "3", Number(3).String())
	assert.Equal(t, "3.5", Number(3.5).String())
}

func TestNumber_Truthy(t *testing.T) {
	assert.True(t, Number(1).Truthy())
	assert.False(t, Number(0).Truthy())
}

func TestString_PushPop(t *testing.T) {
	s := NewString("ab")
	s.Push("c")
	assert.Equal(t, "abc", s.Value)

	c, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, "c", c)
	assert.Equal(t, "ab", s.Value)
}

func TestString_PopEmpty(t *testing.T) {
	s := NewString("")
	_, err := s.Pop()
	assert.Error(t, err)
}

func TestString_InsertRemove(t *testing.T) {
	s := NewString("ac")
	assert.NoError(t, s.Insert(1, "b"))
	assert.Equal(t, "abc", s.Value)

	removed, err := s.Remove(1)
	assert.NoError(t, err)
	assert.Equal(t, "b", removed)
	assert.Equal(t, "ac", s.Value)
}

func TestString_BoundsErrors(t *testing.T) {
	s := NewString("ab")
	_, err := s.ByteAt(5)
	assert.Error(t, err)

	err = s.Insert(10, "x")
	assert.Error(t, err)

	_, err = s.Remove(10)
	assert.Error(t, err)
}

func TestString_Trim(t *testing.T) {
	s := NewString("  hi  ")
	s.Trim()
	assert.Equal(t, "hi", s.Value)
}

func TestString_Chars(t *testing.T) {
	s := NewString("hé")
	chars := s.Chars()
	assert.Equal(t, []string{"h", "é"}, chars)
}

func TestString_Clone_IsIndependent(t *testing.T) {
	s := NewString("a")
	clone := s.Clone()
	clone.Push("b")
	assert.Equal(t, "a", s.Value)
	assert.Equal(t, "ab", clone.Value)
}

func TestList_PushPopInsertRemove(t *testing.T) {
	l := NewList(nil)
	l.Push(Number(1))
	l.Push(Number(2))
	assert.Equal(t, 2, l.Len())

	v, err := l.Pop()
	assert.NoError(t, err)
	assert.Equal(t, Number(2), v)

	assert.NoError(t, l.Insert(0, Number(0)))
	got, err := l.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, Number(0), got)

	removed, err := l.Remove(0)
	assert.NoError(t, err)
	assert.Equal(t, Number(0), removed)
}

func TestList_Clone_DeepCopiesElements(t *testing.T) {
	inner := NewString("a")
	l := NewList([]Value{inner})
	clone := l.Clone()

	clonedInner := clone.Elements[0].(*String)
	clonedInner.Push("b")

	assert.Equal(t, "a", inner.Value)
	assert.Equal(t, "ab", clonedInner.Value)
}

func TestList_Contains(t *testing.T) {
	l := NewList([]Value{Number(1), Number(2)})
	assert.True(t, l.Contains(Number(2)))
	assert.False(t, l.Contains(Number(3)))
}

func TestRange_PositiveIncrement(t *testing.T) {
	r, err := NewRange(1, 4, 1)
	assert.NoError(t, err)

	var got []Number
	for {
		n, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, n)
	}
	assert.Equal(t, []Number{1, 2, 3}, got)
}

func TestRange_NegativeIncrement(t *testing.T) {
	r, err := NewRange(4, 1, -1)
	assert.NoError(t, err)

	var got []Number
	for {
		n, ok := r.Next()
		if !ok {
			break
		}
		got = append(got, n)
	}
	assert.Equal(t, []Number{4, 3, 2}, got)
}

func TestRange_ZeroIncrementIsError(t *testing.T) {
	_, err := NewRange(1, 5, 0)
	assert.Error(t, err)
}

func TestObject_GetMissingPropertyIsNil(t *testing.T) {
	obj := NewObject(map[string]Value{"a": Number(1)})
	assert.Equal(t, Number(1), obj.Get("a"))
	assert.Equal(t, Nil, obj.Get("missing"))
}
