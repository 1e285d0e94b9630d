/*
File    : golox/internal/interpreter/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/callable"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/environment"
	"github.com/akashmaji946/golox/internal/value"
)

func (interp *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (ast.Signal, *diagnostics.RuntimeError) {
	_, rerr := interp.evaluate(s.Expr)
	return ast.None, rerr
}

func (interp *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (ast.Signal, *diagnostics.RuntimeError) {
	v, rerr := interp.evaluate(s.Expr)
	if rerr != nil {
		return ast.None, rerr
	}
	fmt.Fprintln(interp.out, v.String())
	return ast.None, nil
}

func (interp *Interpreter) VisitVarStmt(s *ast.VarStmt) (ast.Signal, *diagnostics.RuntimeError) {
	val := value.Value(value.None)
	if s.Initializer != nil {
		v, rerr := interp.evaluate(s.Initializer)
		if rerr != nil {
			return ast.None, rerr
		}
		val = v
	}
	interp.env.Define(s.Name.Lexeme, val)
	return ast.None, nil
}

func (interp *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (ast.Signal, *diagnostics.RuntimeError) {
	return interp.ExecuteBlock(s.Stmts, environment.New(interp.env))
}

func (interp *Interpreter) VisitIfStmt(s *ast.IfStmt) (ast.Signal, *diagnostics.RuntimeError) {
	cond, rerr := interp.evaluate(s.Cond)
	if rerr != nil {
		return ast.None, rerr
	}
	if value.Truthy(cond) {
		return interp.execute(s.Then)
	}
	if s.Else != nil {
		return interp.execute(s.Else)
	}
	return ast.None, nil
}

func (interp *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (ast.Signal, *diagnostics.RuntimeError) {
	for {
		cond, rerr := interp.evaluate(s.Cond)
		if rerr != nil {
			return ast.None, rerr
		}
		if !value.Truthy(cond) {
			return ast.None, nil
		}
		signal, rerr := interp.execute(s.Body)
		if rerr != nil {
			return ast.None, rerr
		}
		if signal.Kind != ast.SignalNone {
			return signal, nil
		}
	}
}

func (interp *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (ast.Signal, *diagnostics.RuntimeError) {
	fn := callable.NewFunction(s, interp.env, false)
	interp.env.Define(s.Name.Lexeme, fn)
	return ast.None, nil
}

func (interp *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (ast.Signal, *diagnostics.RuntimeError) {
	val := value.Value(value.None)
	if s.Value != nil {
		v, rerr := interp.evaluate(s.Value)
		if rerr != nil {
			return ast.None, rerr
		}
		val = v
	}
	return ast.Return(val), nil
}

// VisitClassStmt declares the class name ahead of building its methods
// (so a method can refer to its own class), resolves an optional
// superclass, and binds each method's closure to an environment carrying
// `super` when present (spec.md §4.4, the inheritance walk grounded on
// the Open Question decision in SPEC_FULL.md §2 to pre-bind the name to
// Nil before the class value exists).
func (interp *Interpreter) VisitClassStmt(s *ast.ClassStmt) (ast.Signal, *diagnostics.RuntimeError) {
	var superclass *callable.Class
	if s.Superclass != nil {
		superVal, rerr := interp.evaluate(s.Superclass)
		if rerr != nil {
			return ast.None, rerr
		}
		sc, ok := superVal.(*callable.Class)
		if !ok {
			return ast.None, diagnostics.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	interp.env.Define(s.Name.Lexeme, value.None)

	classEnv := interp.env
	if superclass != nil {
		classEnv = environment.New(interp.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*callable.Function)
	for _, m := range s.Methods {
		fn := callable.NewFunction(m, classEnv, m.Name.Lexeme == "init")
		methods[m.Name.Lexeme] = fn
	}

	class := callable.NewClass(s.Name.Lexeme, superclass, methods)
	if err := interp.env.Assign(s.Name, class); err != nil {
		return ast.None, err
	}
	return ast.None, nil
}
