// Package interpreter implements the tree-walking evaluator of §4.4: a
// type-switch dispatch over the ast.Expr/ast.Stmt sum types that mutates a
// chain of environment.Environment frames and produces side effects (print
// output, runtime errors).
//
// Three signal kinds thread through this package's functions, kept
// independently tagged per §7/§9 rather than collapsed into one channel:
// a genuine runtime error is an *environment.RuntimeError; a "return"
// unwind is a *callable.Return; a parser signal never reaches this package
// at all. Both of the former propagate as ordinary Go error return values —
// idiomatic here because every evaluate/execute call already returns one —
// and are told apart by type assertion at the one place each must be
// caught: callable.Function.Call unwraps *callable.Return, Interpret's
// caller reports any other error as a runtime failure.
package interpreter

import (
	"fmt"
	"time"

	"github.com/loxrun/lox/ast"
	"github.com/loxrun/lox/callable"
	"github.com/loxrun/lox/environment"
	"github.com/loxrun/lox/token"
	"github.com/loxrun/lox/value"
)

// Writer is the narrow interface Print statements write lines to; satisfied
// by os.Stdout, a net.Conn, or a bytes.Buffer in tests alike.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Interpreter holds the two pieces of state that persist across statements
// within one session: the globals frame (always the chain's root, holding
// native functions) and the environment currently in effect.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	out     Writer
}

// New builds an interpreter with a fresh globals environment, registering
// the native "clock" function per §4.5.
func New(out Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", callable.NewNative(0, func(_ []any) (any, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
	return &Interpreter{Globals: globals, env: globals, out: out}
}

// Interpret executes every statement in order. It stops at the first
// runtime error and returns it; the driver is responsible for reporting it
// and selecting an exit code. A nil return means the program ran to
// completion without a runtime error.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock runs statements in env, restoring the interpreter's previous
// environment on every exit path — normal completion, a runtime error, or a
// return unwind alike — per §4.4/§5's block-frame lifetime rule. It
// satisfies callable.Interp, which is how a user Function's body gets run
// without this package and the callable package importing each other.
func (i *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- statement execution ---

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expr)
		return err
	case *ast.Print:
		v, err := i.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.Stringify(v))
		return nil
	case *ast.Var:
		var v any
		if s.Initializer != nil {
			var err error
			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil
	case *ast.Block:
		return i.ExecuteBlock(s.Statements, environment.New(i.env))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return i.execute(s.Then)
		} else if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := callable.NewFunction(s, i.env)
		i.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var v any
		if s.Value != nil {
			var err error
			v, err = i.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return &callable.Return{Value: v}
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// --- expression evaluation ---

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Inner)
	case *ast.Variable:
		return i.env.Get(e.Name)
	case *ast.Assign:
		v, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(e.Name, v); err != nil {
			return nil, err
		}
		return v, nil
	case *ast.Logical:
		return i.evaluateLogical(e)
	case *ast.Unary:
		return i.evaluateUnary(e)
	case *ast.Binary:
		return i.evaluateBinary(e)
	case *ast.Call:
		return i.evaluateCall(e)
	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}

// evaluateLogical evaluates the left operand first and only evaluates the
// right operand when short-circuiting cannot already decide the result —
// mandatory per §4.4, since the right operand may have side effects.
func (i *Interpreter) evaluateLogical(e *ast.Logical) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evaluateUnary(e *ast.Unary) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, environment.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !value.Truthy(right), nil
	}
	return nil, environment.NewRuntimeError(e.Operator, "Unknown unary operator.")
}

func (i *Interpreter) evaluateBinary(e *ast.Binary) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL, token.MINUS, token.STAR, token.SLASH:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, environment.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		switch e.Operator.Type {
		case token.GREATER:
			return ln > rn, nil
		case token.GREATER_EQUAL:
			return ln >= rn, nil
		case token.LESS:
			return ln < rn, nil
		case token.LESS_EQUAL:
			return ln <= rn, nil
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		}
	case token.PLUS:
		if ln, ok := left.(float64); ok {
			if rn, ok := right.(float64); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, nil
			}
		}
		return nil, environment.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case token.BANG_EQUAL:
		return !value.Equal(left, right), nil
	case token.EQUAL_EQUAL:
		return value.Equal(left, right), nil
	}
	return nil, environment.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

func (i *Interpreter) evaluateCall(e *ast.Call) (any, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, environment.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, environment.NewRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(i, args)
}
