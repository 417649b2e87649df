package callable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxrun/lox/ast"
	"github.com/loxrun/lox/environment"
	"github.com/loxrun/lox/token"
)

// fakeInterp is a minimal Interp that hands each ExecuteBlock call to a
// per-test function, enough to test Function.Call's own plumbing without
// pulling in the real interpreter package (that dependency runs the other
// direction: interpreter imports callable).
type fakeInterp struct {
	executeBlock func(stmts []ast.Stmt, env *environment.Environment) error
}

func (f *fakeInterp) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	return f.executeBlock(stmts, env)
}

func TestFunctionArityMatchesParamCount(t *testing.T) {
	decl := &ast.Function{
		Name:   token.New(token.IDENTIFIER, "f", nil, 1),
		Params: []token.Token{token.New(token.IDENTIFIER, "a", nil, 1), token.New(token.IDENTIFIER, "b", nil, 1)},
	}
	fn := NewFunction(decl, environment.New(nil))
	assert.Equal(t, 2, fn.Arity())
}

func TestFunctionCallBindsParamsInEnvironmentParentedOnClosure(t *testing.T) {
	closure := environment.New(nil)
	decl := &ast.Function{
		Name:   token.New(token.IDENTIFIER, "f", nil, 1),
		Params: []token.Token{token.New(token.IDENTIFIER, "a", nil, 1)},
	}
	fn := NewFunction(decl, closure)

	var seenEnv *environment.Environment
	interp := &fakeInterp{executeBlock: func(stmts []ast.Stmt, env *environment.Environment) error {
		seenEnv = env
		return nil
	}}

	_, err := fn.Call(interp, []any{42.0})
	assert.NoError(t, err)
	assert.Equal(t, closure, seenEnv.Enclosing)

	v, err := seenEnv.Get(token.New(token.IDENTIFIER, "a", nil, 1))
	assert.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestFunctionCallUnwrapsReturnSignal(t *testing.T) {
	decl := &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)}
	fn := NewFunction(decl, environment.New(nil))

	interp := &fakeInterp{executeBlock: func(stmts []ast.Stmt, env *environment.Environment) error {
		return &Return{Value: "done"}
	}}

	v, err := fn.Call(interp, nil)
	assert.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestFunctionCallReturnsNilWhenBodyRunsOffTheEnd(t *testing.T) {
	decl := &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)}
	fn := NewFunction(decl, environment.New(nil))

	interp := &fakeInterp{executeBlock: func(stmts []ast.Stmt, env *environment.Environment) error {
		return nil
	}}

	v, err := fn.Call(interp, nil)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestFunctionCallPropagatesGenuineErrors(t *testing.T) {
	decl := &ast.Function{Name: token.New(token.IDENTIFIER, "f", nil, 1)}
	fn := NewFunction(decl, environment.New(nil))

	want := environment.NewRuntimeError(token.New(token.IDENTIFIER, "x", nil, 1), "boom")
	interp := &fakeInterp{executeBlock: func(stmts []ast.Stmt, env *environment.Environment) error {
		return want
	}}

	_, err := fn.Call(interp, nil)
	assert.Equal(t, want, err)
}

func TestFunctionString(t *testing.T) {
	decl := &ast.Function{Name: token.New(token.IDENTIFIER, "add", nil, 1)}
	fn := NewFunction(decl, environment.New(nil))
	assert.Equal(t, "<fn add>", fn.String())
}

func TestNativeArityAndCall(t *testing.T) {
	n := NewNative(0, func(args []any) (any, error) { return 3.0, nil })
	assert.Equal(t, 0, n.Arity())
	v, err := n.Call(nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, "<native fn>", n.String())
}
