// Package callable implements the Lox callable value kind (§4.5): the
// Callable interface both user-defined functions and native functions
// satisfy, the closure-capturing Function type, and the return-value signal
// a function's body raises to unwind out of however many block frames a
// "return" sits under.
package callable

import (
	"fmt"

	"github.com/loxrun/lox/ast"
	"github.com/loxrun/lox/environment"
)

// Interp is the slice of *interpreter.Interpreter that a Callable needs to
// invoke a user function's body. Declaring it here instead of importing the
// interpreter package directly avoids a callable<->interpreter import cycle,
// since the interpreter itself holds values of type Callable.
type Interp interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is any Lox value that can appear on the left of a call
// expression: a user-defined function or a native function.
type Callable interface {
	Arity() int
	Call(interp Interp, args []any) (any, error)
	String() string
}

// Return is the internal signal a "return" statement raises. It is not an
// error in the user-facing sense — it must be caught exclusively by the
// Function.Call that is executing the body containing the return, and must
// never reach the driver. Packaging it as an error lets it propagate through
// the same statement-execution error channel as a genuine runtime error
// without being confused for one: callers distinguish by type-asserting
// *Return specifically.
type Return struct {
	Value any
}

func (r *Return) Error() string { return "return" }

// Function is a user-defined Lox function: its declaration plus the
// environment that was in effect at the point of declaration. Capturing
// that environment by reference (not copying it) is what makes the
// makeCounter-style closure scenario in the spec's testable properties work:
// mutations the closure makes to a captured variable are visible on later
// calls.
type Function struct {
	Declaration *ast.Function
	Closure     *environment.Environment
}

func NewFunction(declaration *ast.Function, closure *environment.Environment) *Function {
	return &Function{Declaration: declaration, Closure: closure}
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call binds each parameter in a fresh environment parented on the
// function's closure — not the caller's current environment — then executes
// the body. A *Return propagating out of the body supplies the call's
// result; a body that runs off the end returns nil.
func (f *Function) Call(interp Interp, args []any) (any, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err == nil {
		return nil, nil
	}
	if ret, ok := err.(*Return); ok {
		return ret.Value, nil
	}
	return nil, err
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Native wraps a Go function as a Lox callable, the adapter the spec's
// "clock" builtin (§4.5) and any future native function go through.
type Native struct {
	NativeArity int
	Fn          func(args []any) (any, error)
}

func NewNative(arity int, fn func(args []any) (any, error)) *Native {
	return &Native{NativeArity: arity, Fn: fn}
}

func (n *Native) Arity() int { return n.NativeArity }

func (n *Native) Call(_ Interp, args []any) (any, error) {
	return n.Fn(args)
}

func (n *Native) String() string { return "<native fn>" }
