package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxrun/lox/token"
)

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, 1)
}

func TestDefineThenGet(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)
	v, err := env.Get(ident("x"))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGetSearchesParentChain(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)
	v, err := child.Get(ident("x"))
	assert.NoError(t, err)
	assert.Equal(t, "outer", v)
}

func TestGetUndefinedIsRuntimeError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(ident("missing"))
	assert.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestAssignUpdatesAncestorFrameInPlace(t *testing.T) {
	parent := New(nil)
	parent.Define("x", 1.0)
	child := New(parent)

	assert.NoError(t, child.Assign(ident("x"), 2.0))

	v, _ := parent.Get(ident("x"))
	assert.Equal(t, 2.0, v)
}

func TestAssignToUndefinedIsRuntimeError(t *testing.T) {
	env := New(nil)
	err := env.Assign(ident("missing"), 1.0)
	assert.Error(t, err)
}

func TestDefineShadowsAncestorWithoutMutatingIt(t *testing.T) {
	parent := New(nil)
	parent.Define("x", "outer")
	child := New(parent)
	child.Define("x", "inner")

	v, _ := child.Get(ident("x"))
	assert.Equal(t, "inner", v)

	v, _ = parent.Get(ident("x"))
	assert.Equal(t, "outer", v)
}

func TestRuntimeErrorFormatting(t *testing.T) {
	env := New(nil)
	_, err := env.Get(token.New(token.IDENTIFIER, "x", nil, 7))
	assert.Equal(t, "Undefined variable 'x'.\n[line 7]", err.Error())
}
