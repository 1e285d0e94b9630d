/*
File    : golox/internal/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks a resolved Lox program. It implements
// ast.ExprVisitor and ast.StmtVisitor the same way go-mix's eval.Evaluator
// implements parser.NodeVisitor (eval/evaluator.go), carrying its output
// writer, global scope and a resolver-built depth table as struct fields
// rather than globals, so multiple independent interpreters can run in
// the same process (useful for tests).
package interpreter

import (
	"io"
	"time"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/callable"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

// Interpreter executes a parsed and resolved Lox program.
type Interpreter struct {
	globals  *environment.Environment
	env      *environment.Environment
	locals   map[int]int
	reporter *diagnostics.Reporter
	out      io.Writer
}

// New creates an Interpreter that prints through out and reports runtime
// errors through reporter. The global scope is pre-populated with the
// `clock` builtin (spec.md §4.4).
func New(reporter *diagnostics.Reporter, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{
		globals:  globals,
		env:      globals,
		locals:   make(map[int]int),
		reporter: reporter,
		out:      out,
	}
	globals.Define("clock", callable.NewBuiltin("clock", 0, func(args []value.Value) (value.Value, *diagnostics.RuntimeError) {
		return value.Number{Val: float64(time.Now().UnixNano()) / 1e9}, nil
	}))
	return interp
}

// Resolve merges the expression-id -> depth table the resolver built for
// a program into this interpreter's side table. Merging rather than
// replacing lets a REPL keep resolving and interpreting one line at a
// time against the same long-lived Interpreter, the way the reference
// implementation's module-level `interpreter` persists across calls to
// `_run` in lox.py's `_run_prompt` while each line still gets its own
// Scanner/Parser/Resolver.
func (interp *Interpreter) Resolve(locals map[int]int) {
	for id, depth := range locals {
		interp.locals[id] = depth
	}
}

// Interpret runs every top-level statement in order. A runtime error
// aborts the remaining statements (spec.md §7) and is reported through
// the diagnostics.Reporter; it never panics.
func (interp *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if s == nil {
			continue
		}
		if _, rerr := interp.execute(s); rerr != nil {
			interp.reporter.ReportRuntimeError(rerr)
			return
		}
	}
}

func (interp *Interpreter) execute(s ast.Stmt) (ast.Signal, *diagnostics.RuntimeError) {
	return s.Accept(interp)
}

func (interp *Interpreter) evaluate(e ast.Expr) (value.Value, *diagnostics.RuntimeError) {
	return e.Accept(interp)
}

// ExecuteBlock runs stmts against env, restoring the interpreter's
// previous environment on every exit path (normal completion, a `return`
// signal, or a runtime error) — the same unconditional restore go-mix's
// block evaluation relies on to keep scope nesting correct across errors.
// This satisfies callable.Interp, letting Function.Call run bodies
// without callable importing this package.
func (interp *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) (ast.Signal, *diagnostics.RuntimeError) {
	previous := interp.env
	interp.env = env
	defer func() { interp.env = previous }()

	for _, s := range stmts {
		if s == nil {
			continue
		}
		signal, rerr := interp.execute(s)
		if rerr != nil {
			return ast.None, rerr
		}
		if signal.Kind != ast.SignalNone {
			return signal, nil
		}
	}
	return ast.None, nil
}

func (interp *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, *diagnostics.RuntimeError) {
	if distance, ok := interp.locals[expr.ID()]; ok {
		return interp.env.GetAt(distance, name.Lexeme), nil
	}
	return interp.globals.Get(name)
}

// --- ExprVisitor ---

func (interp *Interpreter) VisitLiteral(e *ast.Literal) (value.Value, *diagnostics.RuntimeError) {
	return e.Value, nil
}

func (interp *Interpreter) VisitGrouping(e *ast.Grouping) (value.Value, *diagnostics.RuntimeError) {
	return interp.evaluate(e.Inner)
}

func (interp *Interpreter) VisitUnary(e *ast.Unary) (value.Value, *diagnostics.RuntimeError) {
	right, rerr := interp.evaluate(e.Right)
	if rerr != nil {
		return nil, rerr
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return value.Number{Val: -n.Val}, nil
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	}
	return nil, diagnostics.NewRuntimeError(e.Op, "Unknown unary operator %s", e.Op.Lexeme)
}

func (interp *Interpreter) VisitVariable(e *ast.Variable) (value.Value, *diagnostics.RuntimeError) {
	return interp.lookUpVariable(e.Name, e)
}

func (interp *Interpreter) VisitAssign(e *ast.Assign) (value.Value, *diagnostics.RuntimeError) {
	val, rerr := interp.evaluate(e.Value)
	if rerr != nil {
		return nil, rerr
	}
	if distance, ok := interp.locals[e.ID()]; ok {
		interp.env.AssignAt(distance, e.Name, val)
		return val, nil
	}
	if rerr := interp.globals.Assign(e.Name, val); rerr != nil {
		return nil, rerr
	}
	return val, nil
}

func (interp *Interpreter) VisitLogical(e *ast.Logical) (value.Value, *diagnostics.RuntimeError) {
	left, rerr := interp.evaluate(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return interp.evaluate(e.Right)
}

func (interp *Interpreter) VisitCall(e *ast.Call) (value.Value, *diagnostics.RuntimeError) {
	callee, rerr := interp.evaluate(e.Callee)
	if rerr != nil {
		return nil, rerr
	}
	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, rerr := interp.evaluate(a)
		if rerr != nil {
			return nil, rerr
		}
		args = append(args, v)
	}
	fn, ok := callee.(callable.Value)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(interp, args)
}

func (interp *Interpreter) VisitGet(e *ast.Get) (value.Value, *diagnostics.RuntimeError) {
	obj, rerr := interp.evaluate(e.Object)
	if rerr != nil {
		return nil, rerr
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (interp *Interpreter) VisitSet(e *ast.Set) (value.Value, *diagnostics.RuntimeError) {
	obj, rerr := interp.evaluate(e.Object)
	if rerr != nil {
		return nil, rerr
	}
	inst, ok := obj.(*callable.Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	val, rerr := interp.evaluate(e.Value)
	if rerr != nil {
		return nil, rerr
	}
	inst.Set(e.Name.Lexeme, val)
	return val, nil
}

func (interp *Interpreter) VisitThis(e *ast.This) (value.Value, *diagnostics.RuntimeError) {
	return interp.lookUpVariable(e.Keyword, e)
}

func (interp *Interpreter) VisitSuper(e *ast.Super) (value.Value, *diagnostics.RuntimeError) {
	distance := interp.locals[e.ID()]
	superVal := interp.env.GetAt(distance, "super")
	super, ok := superVal.(*callable.Class)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Keyword, "Superclass is not a class.")
	}
	instVal := interp.env.GetAt(distance-1, "this")
	inst, ok := instVal.(*callable.Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Keyword, "'this' is not bound.")
	}
	method := super.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, diagnostics.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(inst), nil
}

func (interp *Interpreter) formatOperandError(op token.Token) *diagnostics.RuntimeError {
	return diagnostics.NewRuntimeError(op, "Operands must be numbers.")
}
