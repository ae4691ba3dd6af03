/*
File    : sod/object/scope_test.go
Package   : object
*/

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable_SetAndGet(t *testing.T) {
	st := NewSymbolTable()
	st.Set("x", Number(1))

	v, err := st.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, Number(1), v)
}

func TestSymbolTable_UndeclaredIsNameError(t *testing.T) {
	st := NewSymbolTable()
	_, err := st.Get("missing")
	assert.Error(t, err)
}

func TestSymbolTable_ConditionalBlockSeesOuterNames(t *testing.T) {
	st := NewSymbolTable()
	st.Set("x", Number(1))

	st.PushScope(ConditionalBlock)
	v, err := st.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, Number(1), v)
	st.PopScope()
}

func TestSymbolTable_ConditionalBlockLocalsDoNotLeakOut(t *testing.T) {
	st := NewSymbolTable()

	st.PushScope(ConditionalBlock)
	st.Set("y", Number(2))
	st.PopScope()

	assert.False(t, st.Has("y"))
}

func TestSymbolTable_AssignmentFromNestedBlockUpdatesOuter(t *testing.T) {
	st := NewSymbolTable()
	st.Set("x", Number(1))

	st.PushScope(ConditionalBlock)
	st.Set("x", Number(99))
	st.PopScope()

	v, err := st.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, Number(99), v)
}

func TestSymbolTable_FunctionBlockCannotSeeCallerLocals(t *testing.T) {
	st := NewSymbolTable()
	st.Set("global", Number(1))

	st.PushScope(ConditionalBlock)
	st.Set("local", Number(2))

	st.PushScope(FunctionBlock)
	assert.True(t, st.Has("global"))
	assert.False(t, st.Has("local"))
	st.PopScope()

	st.PopScope()
}

func TestSymbolTable_FunctionBlockSeesGlobal(t *testing.T) {
	st := NewSymbolTable()
	st.Set("g", Number(7))

	st.PushScope(FunctionBlock)
	v, err := st.Get("g")
	assert.NoError(t, err)
	assert.Equal(t, Number(7), v)

	st.Set("g", Number(8))
	st.PopScope()

	v, err = st.Get("g")
	assert.NoError(t, err)
	assert.Equal(t, Number(8), v, "activations share the one global frame")
}

func TestSymbolTable_ForBlockRebindsInSameFrame(t *testing.T) {
	st := NewSymbolTable()
	st.PushScope(ForBlock)
	st.Set("i", Number(0))
	st.Set("i", Number(1))
	v, err := st.Get("i")
	assert.NoError(t, err)
	assert.Equal(t, Number(1), v)
	st.PopScope()

	assert.False(t, st.Has("i"))
}

func TestSymbolTable_PushGlobalFramePanics(t *testing.T) {
	st := NewSymbolTable()
	assert.Panics(t, func() {
		st.PushScope(GlobalFrame)
	})
}
