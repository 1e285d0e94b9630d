/*
File    : golox/internal/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical scope chain the interpreter
// evaluates against. It mirrors go-mix's scope.Scope (a name->value map
// plus a parent pointer, searched outward on lookup) but adds the
// depth-addressed GetAt/AssignAt operations spec.md §3 requires: the
// resolver records how many enclosing links separate a variable use from
// its defining scope, and the interpreter must be able to jump straight
// there instead of re-searching name by name.
package environment

import (
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// Environment is one scope frame: a set of name->value bindings plus a
// link to the enclosing frame. nil Enclosing marks the global scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a scope enclosed by parent (nil for the global scope).
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define binds name to val in this scope, redefining is permitted
// (spec.md §4.4's Var statement explicitly allows redeclaration in any
// scope).
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get looks up name starting at this scope and searching outward,
// returning an "Undefined variable" runtime error if no scope in the
// chain defines it.
func (e *Environment) Get(name token.Token) (value.Value, *diagnostics.RuntimeError) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined variable %s", name.Lexeme)
}

// Assign updates name's binding in the scope where it was originally
// defined, searching outward; it errors if no scope defines the name.
func (e *Environment) Assign(name token.Token, val value.Value) *diagnostics.RuntimeError {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return diagnostics.NewRuntimeError(name, "Undefined variable %s", name.Lexeme)
}

// ancestor walks distance enclosing links outward from e.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the scope `distance` links out, per the
// resolver-recorded depth invariant (spec.md §3).
func (e *Environment) GetAt(distance int, name string) value.Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name directly into the scope `distance` links out.
func (e *Environment) AssignAt(distance int, name token.Token, val value.Value) {
	e.ancestor(distance).values[name.Lexeme] = val
}
