// Package ast defines the Expr and Stmt node families as plain struct types.
// Per the design notes grounding this interpreter, dispatch over these
// families is done with Go type-switches in the parser and interpreter
// rather than a Visitor interface: the struct family is the sum type, and
// evaluation/printing are functions over it.
package ast

import "github.com/loxrun/lox/token"

// Expr is the interface implemented by every expression node. It carries no
// methods of its own; it exists only to give the type-switch a common type
// to switch over.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value any
}

type Variable struct {
	Name token.Token
}

type Assign struct {
	Name  token.Token
	Value Expr
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is evaluated with short-circuit semantics; Operator is AND or OR.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Grouping struct {
	Inner Expr
}

// Call's Paren is the closing ')' token, kept so the interpreter can locate
// a runtime error (arity mismatch, non-callable callee) at the call site.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}
