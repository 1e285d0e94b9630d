/*
File    : golox/internal/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs the static pass between parsing and
// execution: it walks the AST once, without evaluating anything, and
// records for every variable reference how many enclosing scopes separate
// it from its declaration. That depth is what lets the interpreter jump
// straight to the right Environment frame instead of re-searching by name
// on every lookup (spec.md §4.3). Scope bookkeeping mirrors go-mix's
// approach of keeping a stack of maps during a single static traversal
// (see eval/evaluator.go's handling of declared names), logic is grounded
// directly on resolver.py's scope stack and declare/define pair.
package resolver

import (
	"github.com/akashmaji946/golox/internal/ast"
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
	"github.com/akashmaji946/golox/internal/value"
)

type functionType int

const (
	ftNone functionType = iota
	ftFunction
	ftInitializer
	ftMethod
)

type classType int

const (
	ctNone classType = iota
	ctClass
	ctSubclass
)

// Resolver walks a parsed program and builds the expression-id -> depth
// side table the interpreter needs for scoped variable resolution.
type Resolver struct {
	reporter *diagnostics.Reporter
	scopes   []map[string]bool
	locals   map[int]int
	curFunc  functionType
	curClass classType
}

// New creates a Resolver reporting static errors through reporter.
func New(reporter *diagnostics.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(map[int]int)}
}

// Resolve walks every statement in the program and returns the depth
// table, keyed by ast.Expr.ID(). It never executes user code.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[int]int {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		if s != nil {
			r.resolveStmt(s)
		}
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	// ignore the RuntimeError return: the resolver never produces one,
	// Accept's signature is shared with the interpreter's execution pass.
	_, _ = s.Accept(r)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	_, _ = e.Accept(r)
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(e ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[e.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: left unresolved, meaning global.
}

func (r *Resolver) resolveFunction(decl *ast.FunctionStmt, ft functionType) {
	enclosing := r.curFunc
	r.curFunc = ft
	r.beginScope()
	for _, param := range decl.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(decl.Body)
	r.endScope()
	r.curFunc = enclosing
}

// --- StmtVisitor ---

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.beginScope()
	r.resolveStmts(s.Stmts)
	r.endScope()
	return ast.None, nil
}

func (r *Resolver) VisitVarStmt(s *ast.VarStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return ast.None, nil
}

func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s, ftFunction)
	return ast.None, nil
}

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.resolveExpr(s.Expr)
	return ast.None, nil
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	if s.Else != nil {
		r.resolveStmt(s.Else)
	}
	return ast.None, nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.resolveExpr(s.Expr)
	return ast.None, nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) (ast.Signal, *diagnostics.RuntimeError) {
	if r.curFunc == ftNone {
		r.reporter.ErrorAt(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.curFunc == ftInitializer {
			r.reporter.ErrorAt(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
	return ast.None, nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) (ast.Signal, *diagnostics.RuntimeError) {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return ast.None, nil
}

func (r *Resolver) VisitClassStmt(s *ast.ClassStmt) (ast.Signal, *diagnostics.RuntimeError) {
	enclosingClass := r.curClass
	r.curClass = ctClass
	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil && s.Superclass.Name.Lexeme == s.Name.Lexeme {
		r.reporter.ErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
	}
	if s.Superclass != nil {
		r.curClass = ctSubclass
		r.resolveExpr(s.Superclass)
	}
	if s.Superclass != nil {
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true
	for _, method := range s.Methods {
		declType := ftMethod
		if method.Name.Lexeme == "init" {
			declType = ftInitializer
		}
		r.resolveFunction(method, declType)
	}
	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}
	r.curClass = enclosingClass
	return ast.None, nil
}

// --- ExprVisitor ---
//
// None of these evaluate anything; each only walks into its
// subexpressions so every Variable/Assign/This/Super use nested inside
// gets resolved too. The returned value.Value is always nil: the
// resolver shares ast.ExprVisitor's signature with the interpreter but
// never produces a runtime value.

func (r *Resolver) VisitVariable(e *ast.Variable) (value.Value, *diagnostics.RuntimeError) {
	if len(r.scopes) > 0 {
		if ready, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !ready {
			r.reporter.ErrorAt(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitAssign(e *ast.Assign) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name)
	return nil, nil
}

func (r *Resolver) VisitBinary(e *ast.Binary) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitLogical(e *ast.Logical) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnary(e *ast.Unary) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitGrouping(e *ast.Grouping) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteral(e *ast.Literal) (value.Value, *diagnostics.RuntimeError) {
	return nil, nil
}

func (r *Resolver) VisitCall(e *ast.Call) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGet(e *ast.Get) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitSet(e *ast.Set) (value.Value, *diagnostics.RuntimeError) {
	r.resolveExpr(e.Value)
	r.resolveExpr(e.Object)
	return nil, nil
}

func (r *Resolver) VisitThis(e *ast.This) (value.Value, *diagnostics.RuntimeError) {
	if r.curClass == ctNone {
		r.reporter.ErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
		return nil, nil
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}

func (r *Resolver) VisitSuper(e *ast.Super) (value.Value, *diagnostics.RuntimeError) {
	switch r.curClass {
	case ctNone:
		r.reporter.ErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
	case ctClass:
		r.reporter.ErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
	}
	r.resolveLocal(e, e.Keyword)
	return nil, nil
}
