/*
File    : golox/internal/callable/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable implements the values the interpreter can invoke with
// `(...)`: user-defined functions and classes, plus class instances and
// native builtins. The shape follows go-mix's function.Function (a
// declaration plus a captured scope) and objects.GoMixObject (every
// runtime value answers Type/String), but the interpreter callback is
// expressed through a narrow structural interface, Interp, so this
// package never imports package interpreter and no import cycle results.
package callable

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/value"
)

// Interp is the slice of interpreter.Interpreter's behavior a Function
// or Class needs to execute a body: running a block of statements against
// a given environment. interpreter.Interpreter satisfies this interface
// structurally.
type Interp interface {
	ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (ast.Signal, *diagnostics.RuntimeError)
}

// Value is the subset of value.Value every callable implements, plus the
// invocation protocol itself (spec.md §4.4's "Callable protocol").
type Value interface {
	value.Value
	Arity() int
	Call(interp Interp, args []value.Value) (value.Value, *diagnostics.RuntimeError)
}

// Function is a user-defined (or method) closure: its declaration, the
// environment it closed over, and whether it is a class's `init` method
// (which always returns `this` instead of its own `return` value).
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func NewFunction(decl *ast.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Decl: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Type() value.Type { return value.FunctionType }
func (f *Function) String() string   { return fmt.Sprintf("<fn %s>", f.Decl.Name.Lexeme) }
func (f *Function) Arity() int       { return len(f.Decl.Params) }

// Bind returns a copy of f whose closure has `this` bound to instance, the
// way a method is rebound to its receiver on every property access
// (spec.md §4.4).
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Decl, env, f.IsInitializer)
}

// Call runs the function body in a fresh environment enclosed by its
// closure, with parameters bound to args. A `return` signal supplies the
// result; falling off the end yields Nil, except for `init`, which always
// yields the bound instance regardless of what the body returned.
func (f *Function) Call(interp Interp, args []value.Value) (value.Value, *diagnostics.RuntimeError) {
	env := environment.New(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	signal, rerr := interp.ExecuteBlock(f.Decl.Body, env)
	if rerr != nil {
		return nil, rerr
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	if signal.Kind == ast.SignalReturn {
		return signal.Value, nil
	}
	return value.None, nil
}

// Builtin wraps a native Go function as a Lox callable, the way `clock`
// is exposed (spec.md §4.4).
type Builtin struct {
	Name   string
	ArityN int
	Fn     func(args []value.Value) (value.Value, *diagnostics.RuntimeError)
}

func NewBuiltin(name string, arity int, fn func(args []value.Value) (value.Value, *diagnostics.RuntimeError)) *Builtin {
	return &Builtin{Name: name, ArityN: arity, Fn: fn}
}

func (b *Builtin) Type() value.Type { return value.BuiltinType }
func (b *Builtin) String() string   { return fmt.Sprintf("<native fn %s>", b.Name) }
func (b *Builtin) Arity() int       { return b.ArityN }
func (b *Builtin) Call(_ Interp, args []value.Value) (value.Value, *diagnostics.RuntimeError) {
	return b.Fn(args)
}
