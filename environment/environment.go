// Package environment implements the scoped name-to-value bindings the
// interpreter walks: a chain of frames, each with an optional parent,
// supporting definition, lookup, and assignment per the spec's §4.3 chain
// semantics (define always shadows; get/assign search the parent chain and
// raise a runtime error on miss).
package environment

import (
	"fmt"

	"github.com/loxrun/lox/token"
)

// RuntimeError is raised by Get/Assign on an unbound name. The interpreter
// propagates it as an ordinary error value out of its top-level Interpret
// call, where the driver reports it; it must never be confused with the
// parser's own error signal.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// NewRuntimeError builds a RuntimeError located at tok.
func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// Environment is one frame of the lexical environment chain. A nil Enclosing
// marks the globals frame, the root of every chain.
type Environment struct {
	values    map[string]any
	Enclosing *Environment
}

// New creates a frame whose parent is enclosing. Pass nil to create the
// globals frame.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]any), Enclosing: enclosing}
}

// Define binds name to value in this frame, unconditionally. A second Define
// of the same name in the same frame silently shadows the first — this is
// what makes "var x = 1; var x = 2;" legal at the top level and in REPL
// sessions, unlike Assign.
func (e *Environment) Define(name string, val any) {
	e.values[name] = val
}

// Get looks up name in this frame, then each enclosing frame in turn. A miss
// anywhere up the chain is a runtime error naming the token, not just the
// bare identifier text, so the driver can report a line number.
func (e *Environment) Get(name token.Token) (any, error) {
	if val, ok := e.values[name.Lexeme]; ok {
		return val, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign rebinds name in the frame where it was defined, searching the
// parent chain. Unlike Define, Assign never creates a new binding: assigning
// to a name no frame has defined is a runtime error.
func (e *Environment) Assign(name token.Token, val any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}
